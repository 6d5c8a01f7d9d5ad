package qlog

var global Logger = NewNop()

// SetLogger sets the global logger. Not thread safe, must set on
// startup.
func SetLogger(l Logger) {
	if l != nil {
		global = l
	}
}

// Default returns the global logger.
func Default() Logger {
	return global
}

func Sync() error {
	return global.Sync()
}

func Close() error {
	return global.Close()
}

// Enabled tests if the global logger logs at lv.
func Enabled(lv Level) bool {
	return global.Enabled(lv)
}

// Named returns the global logger with a name suffix.
func Named(s string) Logger {
	return global.Named(s)
}

// With returns the global logger with fields attached.
func With(fields ...Field) Logger {
	return global.With(fields...)
}

func GetLevel() Level {
	return global.GetLevel()
}

func SetLevel(lv Level) {
	global.SetLevel(lv)
}

// Debug logs a message at debug level on the global logger.
func Debug(msg string, fields ...Field) {
	global.Debug(msg, fields...)
}

// Info logs a message at info level on the global logger.
func Info(msg string, fields ...Field) {
	global.Info(msg, fields...)
}

// Warn logs a message at warn level on the global logger.
func Warn(msg string, fields ...Field) {
	global.Warn(msg, fields...)
}

// Error logs a message at error level on the global logger.
func Error(msg string, fields ...Field) {
	global.Error(msg, fields...)
}

// Debugf logs a formatted message at debug level on the global logger.
func Debugf(format string, args ...interface{}) {
	global.Debugf(format, args...)
}

// Infof logs a formatted message at info level on the global logger.
func Infof(format string, args ...interface{}) {
	global.Infof(format, args...)
}

// Warnf logs a formatted message at warn level on the global logger.
func Warnf(format string, args ...interface{}) {
	global.Warnf(format, args...)
}

// Errorf logs a formatted message at error level on the global logger.
func Errorf(format string, args ...interface{}) {
	global.Errorf(format, args...)
}
