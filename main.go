package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"snake-arcade/config"
	"snake-arcade/internal/session"
	"snake-arcade/ui/window"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load("snake", args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out, closeLog, err := cfg.OpenLog(stdout)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := cfg.NewLogger(out)

	s, err := session.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Error("closing session", "error", err)
		}
	}()

	return s.Run(ctx, func(ctx context.Context) error {
		return window.Run(ctx, s.Game(), s.Stepper(), cfg.CellSize, "Snake")
	})
}
