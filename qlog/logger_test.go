package qlog

import (
	"testing"
)

func TestConsole(t *testing.T) {
	c := &Config{
		Type:  TypeConsole,
		Level: DebugLevel,
	}
	SetLogger(New(c))
	Info("TestConsole", String("key", "value"))
}

func TestFile(t *testing.T) {
	c := &Config{
		Type:  TypeFile,
		File:  t.TempDir() + "/test.log",
		Level: DebugLevel,
	}
	SetLogger(New(c))
	Info("TestFile", String("key", "value"))
	if err := Close(); err != nil {
		t.Log("close:", err)
	}
	SetLogger(NewNop())
}

func TestLevel(t *testing.T) {
	l := New(&Config{Type: TypeConsole, Level: ErrorLevel})
	if l.Enabled(DebugLevel) {
		t.Error("debug should be disabled at error level")
	}
	l.SetLevel(DebugLevel)
	if !l.Enabled(DebugLevel) {
		t.Error("debug should be enabled after SetLevel")
	}
	if l.GetLevel() != DebugLevel {
		t.Error("GetLevel mismatch")
	}
}

func TestNopDefault(t *testing.T) {
	nop := NewNop()
	if nop.Enabled(ErrorLevel) {
		t.Error("nop logger must never be enabled")
	}
	nop.Info("discarded", Int("n", 1))
	nop.Errorf("discarded %d", 2)
}
