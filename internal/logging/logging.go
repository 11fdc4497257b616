// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package logging holds the logger shared by the collaborators around
// the trie core. The core itself does not log.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogSubsys is the field denoting the subsystem when logging.
const LogSubsys = "subsys"

// DefaultLogger is the base logger, diagnostics go to stderr so that
// query output on stdout stays clean.
var DefaultLogger = initializeDefaultLogger()

func initializeDefaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger
}

// SetDebug toggles the debug log level on the default logger.
func SetDebug(debug bool) {
	if debug {
		DefaultLogger.SetLevel(logrus.DebugLevel)
		return
	}
	DefaultLogger.SetLevel(logrus.InfoLevel)
}
