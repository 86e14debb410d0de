// Package session wires a configured game to its optional autopilot and
// spectator server. Every front end starts one.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"snake-arcade/ai"
	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/server"
)

// Stepper is advanced once per frame after the game update.
type Stepper interface {
	Step()
}

type Session struct {
	cfg    *config.Config
	logger *slog.Logger
	game   *game.Game
	pilot  *ai.Pilot
}

// Open builds the game and, when cfg.Autopilot is set, a learning pilot
// seeded from the saved Q-table.
func Open(cfg *config.Config, logger *slog.Logger) (*Session, error) {
	g, err := game.New(cfg.Game(), logger)
	if err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}
	s := &Session{cfg: cfg, logger: logger, game: g}

	if cfg.Autopilot {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		agent := ai.NewQLearning(rand.New(rand.NewSource(seed)))
		if err := agent.LoadQTable(cfg.QTablePath); err != nil {
			return nil, fmt.Errorf("loading autopilot: %w", err)
		}
		s.pilot = ai.NewPilot(g, agent, true, logger)
		logger.Info("autopilot enabled", "qtable", cfg.QTablePath, "states", agent.Len(), "epsilon", agent.Epsilon)
	}
	return s, nil
}

func (s *Session) Game() *game.Game {
	return s.game
}

// Pilot returns the autopilot, or nil when the player is human.
func (s *Session) Pilot() *ai.Pilot {
	return s.pilot
}

// Stepper returns the autopilot as a Stepper, or a nil interface.
func (s *Session) Stepper() Stepper {
	if s.pilot == nil {
		return nil
	}
	return s.pilot
}

// Run calls host on the current goroutine, which some window libraries
// require, while the spectator server runs alongside it. host should return
// when its context is done.
func (s *Session) Run(ctx context.Context, host func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if addr := s.cfg.SpectateAddr; addr != "" {
		srv := server.New(addr, s.logger, s.game)

		g.Go(func() error {
			s.logger.Info("starting spectator server", "addr", addr)
			return srv.Run(gctx)
		})

		g.Go(func() error {
			<-gctx.Done()
			s.logger.Info("shutting down spectator server")
			return srv.Shutdown(context.Background())
		})
	}

	hostErr := host(gctx)
	cancel()
	return errors.Join(hostErr, g.Wait())
}

// Close saves the autopilot's table.
func (s *Session) Close() error {
	if s.pilot == nil {
		return nil
	}
	agent := s.pilot.Agent()
	if err := agent.SaveQTable(s.cfg.QTablePath); err != nil {
		return fmt.Errorf("saving autopilot: %w", err)
	}
	s.logger.Info("autopilot saved", "qtable", s.cfg.QTablePath, "states", agent.Len(), "episode", agent.Episode)
	return nil
}
