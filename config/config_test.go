package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("snake", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 30 || cfg.Height != 30 {
		t.Errorf("board = %dx%d, want 30x30", cfg.Width, cfg.Height)
	}
	if cfg.MovePeriod != 100*time.Millisecond {
		t.Errorf("MovePeriod = %v", cfg.MovePeriod)
	}
	if cfg.RestartDelay != time.Second {
		t.Errorf("RestartDelay = %v", cfg.RestartDelay)
	}
	if cfg.CellSize != 25 {
		t.Errorf("CellSize = %d", cfg.CellSize)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoadEnvironmentAndFlags(t *testing.T) {
	t.Setenv("SNAKE_WIDTH", "40")
	t.Setenv("SNAKE_MOVE_PERIOD", "150ms")
	t.Setenv("SNAKE_LOG_LEVEL", "DEBUG")
	t.Setenv("SNAKE_SEED", "11")

	cfg, err := Load("snake", []string{"-height", "20", "-autopilot"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 20 {
		t.Errorf("board = %dx%d, want 40x20", cfg.Width, cfg.Height)
	}
	if cfg.MovePeriod != 150*time.Millisecond {
		t.Errorf("MovePeriod = %v, want env value when -speed is absent", cfg.MovePeriod)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if !cfg.Autopilot || cfg.Seed != 11 {
		t.Errorf("Autopilot = %v, Seed = %d", cfg.Autopilot, cfg.Seed)
	}

	cfg, err = Load("snake", []string{"-speed", "40"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MovePeriod != 40*time.Millisecond {
		t.Errorf("MovePeriod = %v, want -speed to win", cfg.MovePeriod)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad env int", map[string]string{"SNAKE_WIDTH": "wide"}, nil},
		{"bad log format", map[string]string{"SNAKE_LOG_FORMAT": "xml"}, nil},
		{"bad cell size", nil, []string{"-cell", "0"}},
		{"unknown flag", nil, []string{"-fast"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load("snake", tt.args); err == nil {
				t.Fatal("Load() error = nil")
			}
		})
	}
}

func TestGameConfig(t *testing.T) {
	cfg, err := Load("snake", []string{"-width", "12", "-height", "9", "-seed", "3"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	gc := cfg.Game()
	if gc.Width != 12 || gc.Height != 9 || gc.Seed != 3 {
		t.Errorf("game config = %+v", gc)
	}
	if err := gc.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	cfg.Width, cfg.Height = 6, 5
	if gc := cfg.Game(); !gc.NoInitialFood {
		t.Error("opening food kept on a board that cannot hold it")
	}
}

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogFormat: "json", LogLevel: slog.LevelInfo}
	cfg.NewLogger(&buf).Info("hello", "k", 1)
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("json logger wrote %q", buf.String())
	}

	buf.Reset()
	cfg.LogFormat = "text"
	cfg.NewLogger(&buf).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug line written at info level: %q", buf.String())
	}
}

func TestOpenLog(t *testing.T) {
	var fallback bytes.Buffer
	cfg := &Config{}
	w, closeLog, err := cfg.OpenLog(&fallback)
	if err != nil || w != &fallback {
		t.Fatalf("OpenLog() = %v, %v, want fallback", w, err)
	}
	if err := closeLog(); err != nil {
		t.Errorf("close error = %v", err)
	}

	cfg.LogFile = filepath.Join(t.TempDir(), "snake.log")
	w, closeLog, err = cfg.OpenLog(&fallback)
	if err != nil {
		t.Fatalf("OpenLog() error = %v", err)
	}
	cfg.NewLogger(w).Info("to file")
	if err := closeLog(); err != nil {
		t.Errorf("close error = %v", err)
	}
	data, err := os.ReadFile(cfg.LogFile)
	if err != nil || !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q, %v", data, err)
	}
	if fallback.Len() != 0 {
		t.Errorf("fallback written: %q", fallback.String())
	}
}
