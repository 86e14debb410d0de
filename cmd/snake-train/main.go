// Command snake-train plays rounds with the autopilot and no window, then
// saves the learned Q-table.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-arcade/config"
	"snake-arcade/internal/session"
)

const progressEvery = 50

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load("snake-train", args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.Autopilot = true

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

	// With spectators attached, play at normal speed so there is something to watch.
	realtime := cfg.SpectateAddr != ""
	return s.Run(ctx, func(ctx context.Context) error {
		return train(ctx, s, cfg, logger, realtime)
	})
}

// train runs until cfg.Episodes rounds have finished, or until ctx is done
// when cfg.Episodes is 0.
func train(ctx context.Context, s *session.Session, cfg *config.Config, logger *slog.Logger, realtime bool) error {
	g := s.Game()
	pilot := s.Pilot()
	frame := cfg.MovePeriod + time.Millisecond

	var tick <-chan time.Time
	if realtime {
		ticker := time.NewTicker(frame)
		defer ticker.Stop()
		tick = ticker.C
	}

	start := time.Now()
	reported := 0
	logger.Info("training started", "episodes", cfg.Episodes, "realtime", realtime)
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		g.Update(frame)
		pilot.Step()

		summary := g.Stats()
		if summary.Rounds == reported {
			continue
		}
		reported = summary.Rounds
		if reported%progressEvery == 0 {
			logger.Info("training progress",
				"rounds", reported,
				"best", summary.BestScore,
				"average", summary.AverageScore,
				"epsilon", pilot.Agent().Epsilon,
				"states", pilot.Agent().Len(),
			)
		}
		if cfg.Episodes > 0 && reported >= cfg.Episodes {
			logger.Info("training finished",
				"rounds", reported,
				"best", summary.BestScore,
				"average", summary.AverageScore,
				"elapsed", time.Since(start).Round(time.Millisecond),
			)
			return nil
		}
	}
}
