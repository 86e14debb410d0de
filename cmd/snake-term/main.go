package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/config"
	"snake-arcade/internal/session"
	"snake-arcade/ui/terminal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load("snake-term", args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The screen owns stdout; logs go to a file or nowhere.
	out, closeLog, err := cfg.OpenLog(io.Discard)
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()

	host := terminal.NewHost(screen, s.Game(), s.Stepper(), logger)
	return s.Run(ctx, host.Run)
}
