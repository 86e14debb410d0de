package manager

import (
	"time"

	"snake-arcade/game/types"
)

// StateManager tracks the game phase and the time accumulated since the last
// tick, or since death while in GameOver.
type StateManager struct {
	state        types.State
	waiting      time.Duration
	movingPeriod time.Duration
	restartTime  time.Duration
}

func NewStateManager(movingPeriod, restartTime time.Duration) *StateManager {
	return &StateManager{
		state:        types.Running,
		movingPeriod: movingPeriod,
		restartTime:  restartTime,
	}
}

func (sm *StateManager) State() types.State {
	return sm.state
}

func (sm *StateManager) Waiting() time.Duration {
	return sm.waiting
}

// Advance accumulates elapsed time. It runs in every state, Paused included.
func (sm *StateManager) Advance(dt time.Duration) {
	sm.waiting += dt
}

// TogglePause flips Running and Paused. It is ignored in GameOver and reports
// whether the state changed.
func (sm *StateManager) TogglePause() bool {
	switch sm.state {
	case types.Running:
		sm.state = types.Paused
	case types.Paused:
		sm.state = types.Running
	default:
		return false
	}
	return true
}

// CanTick reports whether the simulation may advance.
func (sm *StateManager) CanTick() bool {
	return sm.state == types.Running
}

// TickDue reports whether the move period has strictly elapsed.
func (sm *StateManager) TickDue() bool {
	return sm.waiting > sm.movingPeriod
}

// RestartDue reports whether the restart delay has strictly elapsed in GameOver.
func (sm *StateManager) RestartDue() bool {
	return sm.state == types.GameOver && sm.waiting > sm.restartTime
}

// EnterGameOver starts the restart countdown from zero.
func (sm *StateManager) EnterGameOver() {
	sm.state = types.GameOver
	sm.waiting = 0
}

func (sm *StateManager) ResetClock() {
	sm.waiting = 0
}

// Reset returns to a fresh Running state.
func (sm *StateManager) Reset() {
	sm.state = types.Running
	sm.waiting = 0
}

// RestartIn returns the time left before an automatic restart, never negative.
func (sm *StateManager) RestartIn() time.Duration {
	if sm.state != types.GameOver {
		return 0
	}
	if left := sm.restartTime - sm.waiting; left > 0 {
		return left
	}
	return 0
}
