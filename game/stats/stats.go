// Package stats keeps an in-memory record of the rounds played in a session.
// Nothing is written to disk.
package stats

import (
	"sync"
	"time"
)

// MaxRounds bounds the history kept for charts; aggregates cover every round.
const MaxRounds = 200

// Round is one life from start to game over.
type Round struct {
	ID       string        `json:"id"`
	Score    int           `json:"score"`
	Ticks    int           `json:"ticks"`
	Duration time.Duration `json:"duration"`
	Cause    string        `json:"cause"`
}

// Summary is an aggregate view of the session.
type Summary struct {
	Rounds       int     `json:"rounds"`
	BestScore    int     `json:"best_score"`
	LastScore    int     `json:"last_score"`
	AverageScore float64 `json:"average_score"`
	// AverageDuration is in simulated seconds.
	AverageDuration float64 `json:"average_duration"`
	Recent          []int   `json:"recent"`
}

// Session collects finished rounds. It is safe for concurrent use.
type Session struct {
	mutex         sync.RWMutex
	history       []Round
	count         int
	best          int
	totalScore    int
	totalDuration time.Duration
}

func NewSession() *Session {
	return &Session{
		history: make([]Round, 0, MaxRounds),
	}
}

// Add records a finished round.
func (s *Session) Add(r Round) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.history) >= MaxRounds {
		s.history = s.history[1:]
	}
	s.history = append(s.history, r)

	s.count++
	s.totalScore += r.Score
	s.totalDuration += r.Duration
	if r.Score > s.best {
		s.best = r.Score
	}
}

// Rounds returns a copy of the retained history, oldest first.
func (s *Session) Rounds() []Round {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]Round, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) Summary() Summary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	sum := Summary{
		Rounds:    s.count,
		BestScore: s.best,
		Recent:    make([]int, len(s.history)),
	}
	for i, r := range s.history {
		sum.Recent[i] = r.Score
	}
	if s.count > 0 {
		sum.LastScore = s.history[len(s.history)-1].Score
		sum.AverageScore = float64(s.totalScore) / float64(s.count)
		sum.AverageDuration = s.totalDuration.Seconds() / float64(s.count)
	}
	return sum
}
