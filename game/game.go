package game

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/stats"
	"snake-arcade/game/types"
)

// Game is a single snake on a bordered board. All methods are safe for
// concurrent use; mutating calls are serialized against each other and against
// readers.
type Game struct {
	mu sync.RWMutex

	cfg  Config
	grid types.Grid

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	stats        *stats.Session
	logger       *slog.Logger

	roundID string
	score   int
	ticks   int
	// played is simulated time spent in the current round outside GameOver.
	played time.Duration
	// starved is set while food could not be placed, so the warning is logged once.
	starved bool
}

// New builds a game in the Running state. A nil logger discards output.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := cfg.grid()
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		cfg:          cfg,
		grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, rand.New(rand.NewSource(seed)), cfg.MaxFoodAttempts),
		stateMgr:     manager.NewStateManager(cfg.MovingPeriod, cfg.RestartTime),
		stats:        stats.NewSession(),
		logger:       logger,
	}
	g.startRound()
	if !cfg.NoInitialFood {
		g.foodMgr.Place(cfg.InitialFood)
	}
	return g, nil
}

func (g *Game) startRound() {
	g.snake = entity.Spawn(g.cfg.Start, g.cfg.StartLength, g.cfg.StartDirection)
	g.foodMgr.Clear()
	g.stateMgr.Reset()
	g.roundID = uuid.New().String()
	g.score = 0
	g.ticks = 0
	g.played = 0
	g.starved = false
	g.logger.Info("round started", "round", g.roundID, "head", g.snake.Head(), "direction", g.snake.Direction())
}

// OnKey applies one key press. Reversals are discarded; any other direction
// runs a tick immediately with that heading.
func (g *Game) OnKey(key types.Key) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stateMgr.State() == types.GameOver {
		return
	}

	if key == types.KeyPause {
		g.stateMgr.TogglePause()
		g.logger.Debug("pause toggled", "round", g.roundID, "state", g.stateMgr.State())
		return
	}

	dir := key.Direction()
	if dir == types.None {
		return
	}
	if dir == g.snake.Direction().Opposite() {
		return
	}
	g.tick(dir)
}

// Update advances the clock by dt and runs at most one tick.
func (g *Game) Update(dt time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stateMgr.Advance(dt)

	if g.stateMgr.State() == types.GameOver {
		if g.stateMgr.RestartDue() {
			g.startRound()
		}
		return
	}
	g.played += dt

	if !g.stateMgr.CanTick() {
		return
	}

	if !g.foodMgr.Exists() {
		g.spawnFood()
	}

	if g.stateMgr.TickDue() {
		g.tick(types.None)
	}
}

func (g *Game) spawnFood() {
	food, err := g.foodMgr.Spawn(g.snake)
	if err != nil {
		if errors.Is(err, manager.ErrNoFreeCell) && !g.starved {
			g.starved = true
			g.logger.Warn("food placement skipped", "round", g.roundID, "length", g.snake.Len(), "error", err)
		}
		return
	}
	g.starved = false
	g.logger.Debug("food placed", "round", g.roundID, "food", food)
}

// tick moves the snake one cell along requested, or along its heading when
// requested is None. Callers hold the write lock.
func (g *Game) tick(requested types.Direction) {
	if !g.stateMgr.CanTick() {
		return
	}

	next := g.snake.NextHead(requested)
	if collision := g.collisionMgr.CheckCollision(next, g.snake); collision != types.NoCollision {
		g.gameOver(collision, next)
	} else {
		g.snake.MoveForward(requested)
		g.ticks++
		if g.foodMgr.Consume(g.snake.Head()) {
			g.snake.RestoreTail()
			g.score++
			g.logger.Debug("food eaten", "round", g.roundID, "score", g.score)
		}
	}

	g.stateMgr.ResetClock()
}

func (g *Game) gameOver(cause types.CollisionType, at types.Point) {
	g.stateMgr.EnterGameOver()
	g.stats.Add(stats.Round{
		ID:       g.roundID,
		Score:    g.score,
		Ticks:    g.ticks,
		Duration: g.played,
		Cause:    cause.String(),
	})
	g.logger.Info("round over",
		"round", g.roundID,
		"cause", cause.String(),
		"at", fmt.Sprintf("(%d,%d)", at.X, at.Y),
		"score", g.score,
		"ticks", g.ticks,
	)
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

// Body returns the snake cells, head first.
func (g *Game) Body() []types.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snake.Body()
}

func (g *Game) Head() types.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snake.Head()
}

func (g *Game) Direction() types.Direction {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snake.Direction()
}

// Food returns the food cell and whether food is on the board.
func (g *Game) Food() (types.Point, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.foodMgr.Position()
}

func (g *Game) Score() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.score
}

func (g *Game) State() types.State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.stateMgr.State()
}

// RestartIn is the countdown shown while in GameOver.
func (g *Game) RestartIn() time.Duration {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.stateMgr.RestartIn()
}

func (g *Game) RoundID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.roundID
}

// Ticks is the number of moves made in the current round.
func (g *Game) Ticks() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ticks
}

func (g *Game) Stats() stats.Summary {
	return g.stats.Summary()
}

// IsDanger reports whether a head on pos would die, using the same rules as a tick.
func (g *Game) IsDanger(pos types.Point) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.collisionMgr.IsDanger(pos, g.snake)
}
