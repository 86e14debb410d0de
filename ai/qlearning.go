package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/exp/rand"
)

// QTable maps State.Key to one value per Action.
type QTable map[string][]float64

// QLearning is a tabular agent with an epsilon-greedy policy. It is not safe
// for concurrent use.
type QLearning struct {
	QTable         QTable
	LearningRate   float64
	Discount       float64
	Epsilon        float64
	InitialEpsilon float64
	MinEpsilon     float64
	EpsilonDecay   float64
	Episode        int

	rng *rand.Rand
}

func NewQLearning(rng *rand.Rand) *QLearning {
	return &QLearning{
		QTable:         make(QTable),
		LearningRate:   0.1,
		Discount:       0.9,
		Epsilon:        0.9,
		InitialEpsilon: 0.9,
		MinEpsilon:     0.01,
		EpsilonDecay:   0.99,
		rng:            rng,
	}
}

func (q *QLearning) values(key string) []float64 {
	v, ok := q.QTable[key]
	if !ok {
		v = make([]float64, numActions)
		q.QTable[key] = v
	}
	return v
}

// Action picks a random action with probability Epsilon, the best known one
// otherwise.
func (q *QLearning) Action(s State) Action {
	if q.rng.Float64() < q.Epsilon {
		return Action(q.rng.Intn(int(numActions)))
	}
	return q.BestAction(s)
}

// BestAction returns the greedy action. Ties go to the lowest action, so an
// unseen state goes straight.
func (q *QLearning) BestAction(s State) Action {
	best := Straight
	bestValue := math.Inf(-1)
	for a, v := range q.values(s.Key()) {
		if v > bestValue {
			bestValue = v
			best = Action(a)
		}
	}
	return best
}

// Update applies Q(s,a) += α(r + γ·max Q(s',·) − Q(s,a)). A terminal
// transition has no future value.
func (q *QLearning) Update(s State, a Action, reward float64, next State, terminal bool) {
	future := 0.0
	if !terminal {
		future = math.Inf(-1)
		for _, v := range q.values(next.Key()) {
			future = math.Max(future, v)
		}
	}
	v := q.values(s.Key())
	v[a] += q.LearningRate * (reward + q.Discount*future - v[a])
}

// EndEpisode decays Epsilon after a finished round.
func (q *QLearning) EndEpisode() {
	q.Episode++
	q.Epsilon = math.Max(q.MinEpsilon, q.InitialEpsilon*math.Pow(q.EpsilonDecay, float64(q.Episode)))
}

// Len is the number of states seen.
func (q *QLearning) Len() int {
	return len(q.QTable)
}

type agentState struct {
	QTable  QTable  `json:"qtable"`
	Epsilon float64 `json:"epsilon"`
	Episode int     `json:"episode"`
}

// SaveQTable writes the table and exploration state to filename.
func (q *QLearning) SaveQTable(filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating q-table directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(agentState{
		QTable:  q.QTable,
		Epsilon: q.Epsilon,
		Episode: q.Episode,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling q-table: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("writing q-table: %w", err)
	}
	return nil
}

// LoadQTable replaces the table with the one in filename. A missing file
// leaves the agent untouched and is not an error.
func (q *QLearning) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading q-table: %w", err)
	}

	var state agentState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("unmarshaling q-table: %w", err)
	}
	for key, v := range state.QTable {
		if len(v) != int(numActions) {
			return fmt.Errorf("q-table entry %q has %d values, want %d", key, len(v), numActions)
		}
	}

	if state.QTable != nil {
		q.QTable = state.QTable
		q.Epsilon = state.Epsilon
		q.Episode = state.Episode
	}
	return nil
}
