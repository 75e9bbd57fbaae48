package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestStandardLogger(t *testing.T) {
	// Capture output in a buffer
	var buf bytes.Buffer
	logger := NewStandardLogger(
		WithOutput(&buf),
		WithLevel(LevelDebug),
	)

	logger.Debug("This is a debug message")
	if !strings.Contains(buf.String(), "[DEBUG]") || !strings.Contains(buf.String(), "This is a debug message") {
		t.Errorf("Debug logging failed, got: %s", buf.String())
	}
	buf.Reset()

	logger.Info("This is an info message")
	if !strings.Contains(buf.String(), "[INFO]") || !strings.Contains(buf.String(), "This is an info message") {
		t.Errorf("Info logging failed, got: %s", buf.String())
	}
	buf.Reset()

	logger.Error("This is an error message")
	if !strings.Contains(buf.String(), "[ERROR]") || !strings.Contains(buf.String(), "This is an error message") {
		t.Errorf("Error logging failed, got: %s", buf.String())
	}
	buf.Reset()

	// Formatting args
	logger.Info("count is %d", 42)
	if !strings.Contains(buf.String(), "count is 42") {
		t.Errorf("Formatted logging failed, got: %s", buf.String())
	}
	buf.Reset()
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStandardLogger(WithOutput(&buf), WithLevel(LevelDebug))

	loggerWithFields := logger.WithFields(map[string]interface{}{
		"component": "test",
		"count":     123,
	})
	loggerWithFields.Info("Message with fields")
	output := buf.String()
	if !strings.Contains(output, "[INFO]") ||
		!strings.Contains(output, "Message with fields") ||
		!strings.Contains(output, "component=test") ||
		!strings.Contains(output, "count=123") {
		t.Errorf("Logging with fields failed, got: %s", output)
	}
	buf.Reset()

	loggerWithField := logger.WithField("module", "logger")
	loggerWithField.Info("Message with a field")
	output = buf.String()
	if !strings.Contains(output, "module=logger") {
		t.Errorf("Logging with a field failed, got: %s", output)
	}

	// The derived logger does not leak fields back into the parent
	buf.Reset()
	logger.Info("Plain message")
	if strings.Contains(buf.String(), "module=logger") {
		t.Errorf("Parent logger gained a child's field, got: %s", buf.String())
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStandardLogger(WithOutput(&buf), WithLevel(LevelError))

	logger.Debug("This debug message should not appear")
	logger.Info("This info message should not appear")
	logger.Error("This error message should appear")
	output := buf.String()
	if strings.Contains(output, "should not appear") ||
		!strings.Contains(output, "This error message should appear") {
		t.Errorf("Level filtering failed, got: %s", output)
	}

	// LevelOff silences everything
	buf.Reset()
	logger.SetLevel(LevelOff)
	logger.Error("Even errors are silenced")
	if buf.Len() != 0 {
		t.Errorf("expected no output at LevelOff, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"off", LevelOff},
		{"error", LevelError},
		{"info", LevelInfo},
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"Info", LevelInfo},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if err != nil {
			t.Errorf("ParseLevel(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Errorf("expected an error for an unknown level name")
	}
}

func TestLevelString(t *testing.T) {
	if LevelDebug.String() != "DEBUG" || LevelOff.String() != "OFF" {
		t.Errorf("unexpected level names: %s, %s", LevelDebug, LevelOff)
	}
	if !strings.Contains(Level(42).String(), "42") {
		t.Errorf("unexpected name for an out-of-range level: %s", Level(42))
	}
}

func TestPackageLevelLogger(t *testing.T) {
	original := defaultLogger
	defer SetDefaultLogger(original)

	var buf bytes.Buffer
	SetDefaultLogger(NewStandardLogger(WithOutput(&buf), WithLevel(LevelInfo)))

	Debug("filtered out at info")
	Info("visible at info")
	output := buf.String()
	if strings.Contains(output, "filtered out") || !strings.Contains(output, "visible at info") {
		t.Errorf("package-level filtering failed, got: %s", output)
	}

	buf.Reset()
	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected package level LevelDebug, got %v", GetLevel())
	}
	Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("expected debug output after SetLevel, got: %s", buf.String())
	}

	// Level from string mirrors the parse rules; empty means leave as is
	if err := SetLevelFromString("error"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
	if err := SetLevelFromString(""); err != nil || GetLevel() != LevelError {
		t.Errorf("expected empty name to leave the level unchanged")
	}
	if err := SetLevelFromString("bogus"); err == nil {
		t.Errorf("expected an error for an unknown level name")
	}
}
