package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"snake-arcade/config"
	"snake-arcade/internal/session"
	"snake-arcade/ui/ebitenui"
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
	cfg, err := config.Load("snake-ebiten", args)
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

	g := ebitenui.New(s.Game(), s.Stepper(), cfg.CellSize)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Snake")

	return s.Run(ctx, func(ctx context.Context) error {
		err := ebiten.RunGameWithOptions(&stopOnDone{Game: g, ctx: ctx}, nil)
		if errors.Is(err, ebiten.Termination) {
			return nil
		}
		return err
	})
}

// stopOnDone ends the ebiten loop once ctx is done.
type stopOnDone struct {
	*ebitenui.Game
	ctx context.Context
}

func (s *stopOnDone) Update() error {
	if s.ctx.Err() != nil {
		return ebiten.Termination
	}
	return s.Game.Update()
}
