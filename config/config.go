package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

type Config struct {
	Width           int           `env:"SNAKE_WIDTH" envDefault:"30"`
	Height          int           `env:"SNAKE_HEIGHT" envDefault:"30"`
	MovePeriod      time.Duration `env:"SNAKE_MOVE_PERIOD" envDefault:"100ms"`
	RestartDelay    time.Duration `env:"SNAKE_RESTART_DELAY" envDefault:"1s"`
	CellSize        int           `env:"SNAKE_CELL_SIZE" envDefault:"25"`
	Seed            uint64        `env:"SNAKE_SEED" envDefault:"0"`
	MaxFoodAttempts int           `env:"SNAKE_MAX_FOOD_ATTEMPTS" envDefault:"64"`

	LogLevel  slog.Level `env:"SNAKE_LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"SNAKE_LOG_FORMAT" envDefault:"text"`
	LogFile   string     `env:"SNAKE_LOG_FILE"`

	SpectateAddr string `env:"SNAKE_SPECTATE_ADDR"`
	Autopilot    bool   `env:"SNAKE_AUTOPILOT" envDefault:"false"`
	QTablePath   string `env:"SNAKE_QTABLE" envDefault:"data/qtable.json"`
	Episodes     int    `env:"SNAKE_EPISODES" envDefault:"500"`
}

// Load reads the environment, then lets command line flags override it.
func Load(name string, args []string) (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	speed := fs.Int("speed", int(cfg.MovePeriod/time.Millisecond), "Game speed in milliseconds (lower = faster)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Board width in cells, border included")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Board height in cells, border included")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food placement seed (0 = time based)")
	fs.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "Let the Q-learning agent play")
	fs.StringVar(&cfg.SpectateAddr, "spectate", cfg.SpectateAddr, "Serve the spectator API on this address")
	fs.StringVar(&cfg.QTablePath, "qtable", cfg.QTablePath, "Q-table file for the autopilot")
	fs.IntVar(&cfg.Episodes, "episodes", cfg.Episodes, "Rounds to play when training")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to this file instead of the default output")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "speed" {
			cfg.MovePeriod = time.Duration(*speed) * time.Millisecond
		}
	})

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.CellSize < 1 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	}
	if c.Episodes < 0 {
		errs = append(errs, fmt.Errorf("episodes must not be negative, got %d", c.Episodes))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Game returns the rules for a new game. Rule validation happens in game.New.
func (c *Config) Game() game.Config {
	gc := game.DefaultConfig()
	gc.Width = c.Width
	gc.Height = c.Height
	gc.MovingPeriod = c.MovePeriod
	gc.RestartTime = c.RestartDelay
	gc.MaxFoodAttempts = c.MaxFoodAttempts
	gc.Seed = c.Seed
	// The fixed opening food only makes sense on boards that contain it.
	grid := types.Grid{Width: c.Width, Height: c.Height}
	if !grid.IsInterior(gc.InitialFood) {
		gc.NoInitialFood = true
	}
	return gc
}

// OpenLog returns the log destination: LogFile when set, fallback otherwise.
// The returned close function is never nil.
func (c *Config) OpenLog(fallback io.Writer) (io.Writer, func() error, error) {
	if c.LogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, f.Close, nil
}

// NewLogger builds the process logger writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
