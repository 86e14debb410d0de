package ai

import (
	"log/slog"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Rewards for one transition.
const (
	RewardFood   = 1.0
	RewardDeath  = -1.0
	RewardCloser = 0.1
	RewardAway   = -0.15
)

// Game is the part of the engine the pilot drives.
type Game interface {
	Snapshot() game.Snapshot
	IsDanger(pos types.Point) bool
	OnKey(key types.Key)
}

type transition struct {
	round    string
	ticks    int
	score    int
	distance int
	state    State
	action   Action
}

// Pilot plays a game with a QLearning agent through the same key interface a
// human uses. Call Step once per frame after Game.Update.
type Pilot struct {
	game   Game
	agent  *QLearning
	learn  bool
	logger *slog.Logger

	pending *transition
}

// NewPilot returns a pilot that updates the agent's table when learn is set.
func NewPilot(g Game, agent *QLearning, learn bool, logger *slog.Logger) *Pilot {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pilot{game: g, agent: agent, learn: learn, logger: logger}
}

func (p *Pilot) Agent() *QLearning {
	return p.agent
}

// Step learns from the last move once the game has ticked, then chooses and
// sends the next one.
func (p *Pilot) Step() {
	snap := p.game.Snapshot()

	switch snap.State {
	case types.Paused:
		return
	case types.GameOver:
		if p.pending != nil && p.pending.round == snap.RoundID {
			p.finish(RewardDeath, true)
		}
		return
	}

	if p.pending != nil {
		if p.pending.round != snap.RoundID {
			// The round ended between frames and the game over was never seen.
			p.finish(RewardDeath, true)
		} else if snap.Ticks == p.pending.ticks {
			return
		} else {
			p.learnFrom(snap)
		}
	}

	p.act(snap)
}

func (p *Pilot) learnFrom(snap game.Snapshot) {
	next := Observe(snap, p.game.IsDanger)
	reward := 0.0
	switch distance := foodDistance(snap); {
	case snap.Score > p.pending.score:
		reward = RewardFood
	case distance < 0 || p.pending.distance < 0:
	case distance < p.pending.distance:
		reward = RewardCloser
	case distance > p.pending.distance:
		reward = RewardAway
	}
	if p.learn {
		p.agent.Update(p.pending.state, p.pending.action, reward, next, false)
	}
	p.pending = nil
}

func (p *Pilot) finish(reward float64, terminal bool) {
	if p.learn {
		p.agent.Update(p.pending.state, p.pending.action, reward, State{}, terminal)
	}
	p.agent.EndEpisode()
	p.logger.Debug("autopilot episode finished",
		"round", p.pending.round,
		"episode", p.agent.Episode,
		"epsilon", p.agent.Epsilon,
		"states", p.agent.Len(),
	)
	p.pending = nil
}

func (p *Pilot) act(snap game.Snapshot) {
	state := Observe(snap, p.game.IsDanger)
	var action Action
	if p.learn {
		action = p.agent.Action(state)
	} else {
		action = p.agent.BestAction(state)
	}

	p.pending = &transition{
		round:    snap.RoundID,
		ticks:    snap.Ticks,
		score:    snap.Score,
		distance: foodDistance(snap),
		state:    state,
		action:   action,
	}

	// Going straight waits for the timer; a turn ticks right away.
	if action != Straight {
		p.game.OnKey(types.KeyFor(action.Apply(snap.Direction)))
	}
}
