package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	defaultLogger Logger = NewLogrusAdapterFromLogger(logrus.StandardLogger())
	defaultMu     sync.RWMutex
)

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger replaces the process-wide default logger.
func SetDefaultLogger(logger Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// SetAllLogLevels sets the level on the standard logrus logger, which backs
// every adapter created from it.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
}
