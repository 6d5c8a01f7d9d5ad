package qlog

import (
	"time"

	"go.uber.org/zap"
)

// Skip constructs a no-op field.
func Skip() Field {
	return zap.Skip()
}

// Bool constructs a field that carries a bool.
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Float64 constructs a field that carries a float64.
func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

// Int constructs a field with the given key and value.
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 constructs a field with the given key and value.
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// String constructs a field with the given key and value.
func String(key string, val string) Field {
	return zap.String(key, val)
}

// Strings constructs a field that carries a slice of strings.
func Strings(key string, ss []string) Field {
	return zap.Strings(key, ss)
}

// Duration constructs a field with the given key and value.
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Time constructs a field with the given key and value.
func Time(key string, val time.Time) Field {
	return zap.Time(key, val)
}

// Err is shorthand for the common idiom NamedError("error", err).
func Err(err error) Field {
	return zap.Error(err)
}

// NamedError constructs a field that lazily stores err.Error() under
// the provided key.
func NamedError(key string, err error) Field {
	return zap.NamedError(key, err)
}

// Any takes a key and an arbitrary value and chooses the best way to
// represent them as a field.
func Any(key string, value interface{}) Field {
	return zap.Any(key, value)
}
