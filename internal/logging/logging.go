// Package logging provides the diagnostic logger.
package logging

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the structured logger used for diagnostic tracing.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

type loggerImpl struct {
	charmLogger *charmlog.Logger
}

func (l *loggerImpl) Debug(msg string, keyvals ...any) { l.charmLogger.Debug(msg, keyvals...) }
func (l *loggerImpl) Info(msg string, keyvals ...any)  { l.charmLogger.Info(msg, keyvals...) }
func (l *loggerImpl) Warn(msg string, keyvals ...any)  { l.charmLogger.Warn(msg, keyvals...) }
func (l *loggerImpl) Error(msg string, keyvals ...any) { l.charmLogger.Error(msg, keyvals...) }

// Config controls where and how much is logged.
type Config struct {
	Verbose bool
	Output  io.Writer
}

// New builds a logger writing to stderr unless cfg.Output is set. Only
// warnings and errors are emitted unless cfg.Verbose is true.
func New(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	level := charmlog.WarnLevel
	if cfg.Verbose {
		level = charmlog.DebugLevel
	}
	charmLogger := charmlog.NewWithOptions(out, charmlog.Options{
		Level:           level,
		Prefix:          "standardize",
		ReportTimestamp: cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
	charmLogger.SetFormatter(charmlog.TextFormatter)
	return &loggerImpl{charmLogger: charmLogger}
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return New(Config{Output: io.Discard})
}
