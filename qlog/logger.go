// Package qlog is the library's structured logging layer: a thin
// Logger interface over zap with console, file and rotating-file
// sinks. The package-level logger defaults to a nop, so importing
// packages emit nothing until the host application calls SetLogger.
package qlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a field in a log message.
type Field = zap.Field

// Level is the logging level.
type Level = zapcore.Level

const (
	DebugLevel = zap.DebugLevel
	InfoLevel  = zap.InfoLevel
	WarnLevel  = zap.WarnLevel
	ErrorLevel = zap.ErrorLevel
)

func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

const (
	TypeConsole    = "console"
	TypeFile       = "file"
	TypeLumberjack = "lumberjack"
)

const (
	FormatJson = "json"
)

// Logger is the logging interface the library writes against.
type Logger interface {
	Close() error
	Sync() error
	Enabled(lv Level) bool
	Named(s string) Logger
	With(fields ...Field) Logger

	GetLevel() Level
	SetLevel(lv Level)

	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type Config struct {
	Type          string  `json:"type" yaml:"type"`
	Level         Level   `json:"level" yaml:"level"`
	File          string  `json:"file" yaml:"file"`
	Format        string  `json:"format" yaml:"format"`
	TimeFormat    string  `json:"time_format" yaml:"time_format"`
	MaxSize       int     `json:"max_size" yaml:"max_size"`
	MaxAge        int     `json:"max_age" yaml:"max_age"`
	MaxBackups    int     `json:"max_backups" yaml:"max_backups"`
	Compress      bool    `json:"compress" yaml:"compress"`
	DisableCaller bool    `json:"disable_caller" yaml:"disable_caller"`
	Fields        []Field `json:"-" yaml:"-"` // default fields attached to every message
}

func New(c *Config) Logger {
	return newZapLogger(c)
}
