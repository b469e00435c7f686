// Package log provides structured logging to a rotated log file.
package log

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/twitchkit/twitchkit/constant"
	"github.com/twitchkit/twitchkit/key"
	"github.com/twitchkit/twitchkit/where"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Fields is an alias so callers don't import logrus directly.
type Fields = logrus.Fields

const (
	maxSizeMB  = 5
	maxBackups = 3
)

// enabled indicates the persistent logging state for the active application instance.
var enabled bool

// Setup initializes the logging subsystem based on global configuration.
// If logging is disabled, all subsequent log emissions are silently discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logrus.SetOutput(io.Discard)
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	maxAge := viper.GetInt(key.LogsMaxAge)
	if maxAge < 0 {
		return fmt.Errorf("%s must not be negative: %d", key.LogsMaxAge, maxAge)
	}

	configure(&lumberjack.Logger{
		Filename:   filepath.Join(dir, constant.App+".log"),
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}, viper.GetBool(key.LogsJson), viper.GetString(key.LogsLevel))
	return nil
}

func configure(out io.Writer, asJson bool, level string) {
	logrus.SetOutput(out)

	if asJson {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// Entry is a log line under construction carrying structured fields.
type Entry struct {
	entry *logrus.Entry
}

// WithFields starts an entry annotated with the given fields.
func WithFields(fields Fields) *Entry {
	return &Entry{entry: logrus.WithFields(fields)}
}

func (e *Entry) Debug(args ...any) {
	if enabled {
		e.entry.Debug(args...)
	}
}

func (e *Entry) Info(args ...any) {
	if enabled {
		e.entry.Info(args...)
	}
}

func (e *Entry) Warn(args ...any) {
	if enabled {
		e.entry.Warn(args...)
	}
}

func (e *Entry) Error(args ...any) {
	if enabled {
		e.entry.Error(args...)
	}
}

// Severity-specific emissions, forwarded to the backend when logging is enabled.

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...any) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...any) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debug(args ...any) {
	if enabled {
		logrus.Debug(args...)
	}
}
func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
