package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "data/dataset.yaml", cfg.Data.File)
	assert.Equal(t, "data/categories.yaml", cfg.Data.RulesFile)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.True(t, cfg.CSV.IncludeHeaders)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("FINQUERY_LOG_LEVEL", "debug")
	t.Setenv("FINQUERY_DATA_FILE", "/tmp/other.yaml")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/other.yaml", cfg.Data.File)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr string
	}{
		{
			name:      "Bad log level",
			mutate:    func(c *Config) { c.Log.Level = "verbose" },
			expectErr: "invalid log level",
		},
		{
			name:      "Bad log format",
			mutate:    func(c *Config) { c.Log.Format = "xml" },
			expectErr: "invalid log format",
		},
		{
			name:      "Multi-character delimiter",
			mutate:    func(c *Config) { c.CSV.Delimiter = ";;" },
			expectErr: "single character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Log.Level = "info"
			cfg.Log.Format = "text"
			cfg.CSV.Delimiter = ","
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestConfigureLogging(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()
	assert.Equal(t, "debug", logger.GetLevel().String())
}
