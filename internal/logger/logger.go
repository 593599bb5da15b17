// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures Log from the environment:
//   - LOG_LEVEL: logrus level name, "info" when unset or invalid
//   - LOG_FORMAT: "json" or text
//   - LOG_FILE: append logs to this file instead of stderr
//
// The terminal UI owns stdout, so logs never go there. The returned function
// closes the log file, if one was opened.
func Init() (closeFn func() error, err error) {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	closeFn = func() error { return nil }
	var out io.Writer = os.Stderr
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return closeFn, fmt.Errorf("open log file %s: %w", path, err)
		}
		out = f
		closeFn = f.Close
	}
	Log.SetOutput(out)

	return closeFn, nil
}

// Discard silences Log. Used by the terminal front-end when no LOG_FILE is set.
func Discard() {
	Log.SetOutput(io.Discard)
}
