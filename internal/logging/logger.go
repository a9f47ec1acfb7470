// ABOUTME: Builds the application logger from configuration.
// ABOUTME: Writes to stderr or to a size-rotated file.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the verbosity and destination of the logger.
type Options struct {
	Level string
	// File, when set, receives the log instead of Output and is rotated.
	File string
	// Output defaults to stderr.
	Output io.Writer
	JSON   bool
}

// New builds a logger. The returned logger also satisfies badger.Logger.
func New(opts Options) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(GetLevel(opts.Level))

	if opts.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: opts.File == ""})
	}

	switch {
	case opts.File != "":
		if !strings.HasSuffix(opts.File, ".log") {
			opts.File += ".log"
		}
		_ = os.MkdirAll(filepath.Dir(opts.File), 0750)
		logger.SetOutput(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			Compress:   true,
		})
	case opts.Output != nil:
		logger.SetOutput(opts.Output)
	default:
		logger.SetOutput(os.Stderr)
	}

	return logger
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// GetLevel maps a level name to a logrus level. Unknown names mean warn.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.WarnLevel
	}
}
