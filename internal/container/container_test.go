package container

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/finquery/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.Data.File = filepath.Join(dir, "dataset.yaml")
	cfg.Data.RulesFile = filepath.Join(dir, "categories.yaml")
	return cfg
}

func TestNewContainerNilConfig(t *testing.T) {
	_, err := NewContainer(nil)
	assert.Error(t, err)
}

func TestNewContainerWiresEverything(t *testing.T) {
	c, err := NewContainer(testConfig(t))
	require.NoError(t, err)

	assert.NotNil(t, c.Logger())
	assert.NotNil(t, c.Config())
	assert.NotNil(t, c.Store())
	assert.NotNil(t, c.Holder())
	assert.NotNil(t, c.Classifier())
	assert.NotNil(t, c.Engine())
	assert.NotNil(t, c.Exporter())

	// With no persisted data yet, the snapshot is an empty dataset.
	assert.Empty(t, c.Holder().Current().Accounts)
}

func TestNewContainerRejectsMalformedRules(t *testing.T) {
	cfg := testConfig(t)
	rulesYAML := `categories:
  - category: "Broken"
    patterns:
      - "("
`
	require.NoError(t, os.WriteFile(cfg.Data.RulesFile, []byte(rulesYAML), 0644))

	_, err := NewContainer(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile category rules")
}
