package qlog

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func newZapLogger(c *Config) Logger {
	if c == nil {
		c = &Config{}
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "2006-01-02T15:04:05.000Z"
	}
	callerKey := "C"
	if c.DisableCaller {
		callerKey = zapcore.OmitKey
	}
	encConfig := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      callerKey,
		MessageKey:     "M",
		StacktraceKey:  "S",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(c.TimeFormat),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	var ws zapcore.WriteSyncer
	switch c.Type {
	case TypeFile, TypeLumberjack:
		if c.MaxSize <= 0 {
			c.MaxSize = 100
		}
		if c.MaxAge <= 0 {
			c.MaxAge = 30
		}
		if c.MaxBackups <= 0 {
			c.MaxBackups = 3
		}
		if c.File == "" {
			c.File = "quantpolars.log"
		}
		fileLogger := &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		}
		ws = zapcore.AddSync(&zapcore.BufferedWriteSyncer{
			WS:            zapcore.AddSync(fileLogger),
			FlushInterval: time.Second,
		})
	default:
		ws = zapcore.AddSync(os.Stdout)
		encConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var enc zapcore.Encoder
	if c.Format == FormatJson {
		enc = zapcore.NewJSONEncoder(encConfig)
	} else {
		enc = zapcore.NewConsoleEncoder(encConfig)
	}

	atom := zap.NewAtomicLevel()
	atom.SetLevel(c.Level)

	core := zapcore.NewCore(enc, ws, atom)

	var options []zap.Option
	if !c.DisableCaller {
		options = append(options, zap.AddCaller(), zap.AddCallerSkip(1))
	}
	if len(c.Fields) > 0 {
		options = append(options, zap.Fields(c.Fields...))
	}

	return &zapLogger{raw: zap.New(core, options...), atom: atom}
}

type zapLogger struct {
	raw  *zap.Logger
	atom zap.AtomicLevel
}

func (l *zapLogger) Close() error {
	if c, ok := l.raw.Core().(io.Closer); ok && c != nil {
		_ = c.Close()
	}
	return l.raw.Sync()
}

func (l *zapLogger) Sync() error {
	return l.raw.Sync()
}

func (l *zapLogger) Enabled(lv Level) bool {
	return l.raw.Core().Enabled(lv)
}

func (l *zapLogger) SetLevel(lv Level) {
	l.atom.SetLevel(lv)
}

func (l *zapLogger) GetLevel() Level {
	return l.atom.Level()
}

func (l *zapLogger) Named(s string) Logger {
	return &zapLogger{raw: l.raw.Named(s), atom: l.atom}
}

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{raw: l.raw.With(fields...), atom: l.atom}
}

func (l *zapLogger) Debug(msg string, fields ...Field) {
	l.log(DebugLevel, msg, fields)
}

func (l *zapLogger) Info(msg string, fields ...Field) {
	l.log(InfoLevel, msg, fields)
}

func (l *zapLogger) Warn(msg string, fields ...Field) {
	l.log(WarnLevel, msg, fields)
}

func (l *zapLogger) Error(msg string, fields ...Field) {
	l.log(ErrorLevel, msg, fields)
}

func (l *zapLogger) Debugf(format string, args ...interface{}) {
	l.logf(DebugLevel, format, args)
}

func (l *zapLogger) Infof(format string, args ...interface{}) {
	l.logf(InfoLevel, format, args)
}

func (l *zapLogger) Warnf(format string, args ...interface{}) {
	l.logf(WarnLevel, format, args)
}

func (l *zapLogger) Errorf(format string, args ...interface{}) {
	l.logf(ErrorLevel, format, args)
}

func (l *zapLogger) log(level Level, msg string, fields []Field) {
	if ce := l.raw.Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *zapLogger) logf(level Level, format string, args []interface{}) {
	if !l.Enabled(level) {
		return
	}
	if ce := l.raw.Check(level, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}
