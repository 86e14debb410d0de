package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunTrainsAndSaves(t *testing.T) {
	qtable := filepath.Join(t.TempDir(), "qtable.json")
	var out bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	args := []string{"-episodes", "3", "-seed", "8", "-width", "10", "-height", "10", "-qtable", qtable}
	if err := run(ctx, args, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if _, err := os.Stat(qtable); err != nil {
		t.Fatalf("q-table not saved: %v", err)
	}
	log := out.String()
	for _, want := range []string{"training started", "training finished", "autopilot saved"} {
		if !strings.Contains(log, want) {
			t.Errorf("log missing %q:\n%s", want, log)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	args := []string{"-episodes", "0", "-qtable", filepath.Join(t.TempDir(), "q.json")}
	if err := run(ctx, args, &bytes.Buffer{}); err != nil {
		t.Errorf("run() error = %v", err)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	if err := run(context.Background(), []string{"-episodes", "-1"}, &bytes.Buffer{}); err == nil {
		t.Error("negative episodes accepted")
	}
}
