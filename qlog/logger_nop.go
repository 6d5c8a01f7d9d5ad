package qlog

// NewNop returns a Logger that discards everything. It is the default
// global logger, so the library stays quiet inside host applications
// that never configure logging.
func NewNop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Close() error { return nil }

func (nopLogger) Sync() error { return nil }

func (nopLogger) Enabled(Level) bool { return false }

func (n nopLogger) Named(string) Logger { return n }

func (n nopLogger) With(...Field) Logger { return n }

func (nopLogger) GetLevel() Level { return ErrorLevel + 1 }

func (nopLogger) SetLevel(Level) {}

func (nopLogger) Debug(string, ...Field) {}

func (nopLogger) Info(string, ...Field) {}

func (nopLogger) Warn(string, ...Field) {}

func (nopLogger) Error(string, ...Field) {}

func (nopLogger) Debugf(string, ...interface{}) {}

func (nopLogger) Infof(string, ...interface{}) {}

func (nopLogger) Warnf(string, ...interface{}) {}

func (nopLogger) Errorf(string, ...interface{}) {}
