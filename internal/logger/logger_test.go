package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	err := Init(Config{Debug: false, Dir: logDir})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Info("task toggled", "task", "abc", "date", "2024-01-01")
	Debug("not written at info level")

	data, err := os.ReadFile(filepath.Join(logDir, "cadence.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "task toggled") {
		t.Errorf("log file missing info entry: %q", string(data))
	}
	if strings.Contains(string(data), "not written at info level") {
		t.Errorf("log file contains a debug entry at info level: %q", string(data))
	}
}

func TestInitDebugMode(t *testing.T) {
	err := Init(Config{Debug: true, Dir: filepath.Join(t.TempDir(), "logs")})
	if err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	if Logger == nil {
		t.Error("Logger is nil after initialization")
	}

	Debug("Test debug message in debug mode")
	With("owner", "alice").Info("scoped message")
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
	if With("k", "v") != nil {
		t.Error("With() should return nil before Init")
	}
}
