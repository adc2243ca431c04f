package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/finquery/cmd/export"
	"fjacquet/finquery/cmd/periods"
	"fjacquet/finquery/cmd/report"
	"fjacquet/finquery/cmd/root"
	"fjacquet/finquery/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment first so the log level is right before anything logs.
	loadEnvSilently()
	logLevel := configureLogLevel()
	logging.SetAllLogLevels(logLevel)

	root.Init()

	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(periods.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel sets the global log level from LOG_LEVEL and returns it.
func configureLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
