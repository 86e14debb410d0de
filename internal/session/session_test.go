package session

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"snake-arcade/config"
	"snake-arcade/game/types"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("snake-test", []string{"-seed", "4"})
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	return cfg
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestOpenHuman(t *testing.T) {
	s, err := Open(testConfig(t), discard())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Game() == nil || s.Game().State() != types.Running {
		t.Fatal("game not running")
	}
	if s.Pilot() != nil || s.Stepper() != nil {
		t.Error("human session has a pilot")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestOpenRejectsBadBoard(t *testing.T) {
	cfg := testConfig(t)
	cfg.Width = 2
	if _, err := Open(cfg, discard()); err == nil {
		t.Fatal("Open() accepted a 2-wide board")
	}
}

func TestAutopilotSavesTable(t *testing.T) {
	cfg := testConfig(t)
	cfg.Autopilot = true
	cfg.QTablePath = filepath.Join(t.TempDir(), "q", "table.json")

	s, err := Open(cfg, discard())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Stepper() == nil {
		t.Fatal("autopilot session has no stepper")
	}
	for i := 0; i < 200; i++ {
		s.Game().Update(cfg.MovePeriod + time.Millisecond)
		s.Stepper().Step()
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := os.Stat(cfg.QTablePath); err != nil {
		t.Errorf("q-table not written: %v", err)
	}

	reopened, err := Open(cfg, discard())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	if reopened.Pilot().Agent().Len() == 0 {
		t.Error("saved q-table not loaded")
	}
}

func TestRunReturnsHostError(t *testing.T) {
	s, err := Open(testConfig(t), discard())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	boom := errors.New("boom")
	if err := s.Run(context.Background(), func(context.Context) error { return boom }); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
}

func TestRunWithSpectator(t *testing.T) {
	cfg := testConfig(t)
	cfg.SpectateAddr = "127.0.0.1:0"
	s, err := Open(cfg, discard())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	err = s.Run(context.Background(), func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return errors.New("host context cancelled early")
		case <-time.After(20 * time.Millisecond):
			return nil
		}
	})
	if err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
