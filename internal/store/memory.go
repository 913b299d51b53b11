// apps/go-sim/internal/store/memory.go
//
// In-memory sink for simulated game outcomes.
// Workers of a batch run save into it concurrently; the reporter reads it
// once the batch is done.
//
// Characteristics:
//   - Outcomes are keyed by their position in the answer list, so a
//     repeated answer keeps one entry per game.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned by Get for an index that was never saved.
var ErrNotFound = errors.New("store: not found")

// Outcome is the result of one simulated game.
type Outcome struct {
	Index  int    // position in the answer list
	Answer string // the word being guessed
	Rounds int    // round the answer was found in; 0 when unsolved
	Solved bool   // false when the attempt budget ran out
}

// Store defines where simulated outcomes are collected.
type Store interface {
	// Save records or replaces the outcome at o.Index.
	Save(ctx context.Context, o Outcome) error

	// Get retrieves the outcome at index.
	Get(ctx context.Context, index int) (Outcome, error)

	// All returns every outcome ordered by Index.
	All(ctx context.Context) ([]Outcome, error)
}

type memory struct {
	mu       sync.RWMutex
	outcomes map[int]Outcome
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{outcomes: make(map[int]Outcome)}
}

func (m *memory) Save(ctx context.Context, o Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[o.Index] = o
	return nil
}

func (m *memory) Get(ctx context.Context, index int) (Outcome, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if o, ok := m.outcomes[index]; ok {
		return o, nil
	}
	return Outcome{}, ErrNotFound
}

func (m *memory) All(ctx context.Context) ([]Outcome, error) {
	m.mu.RLock()
	out := make([]Outcome, 0, len(m.outcomes))
	for _, o := range m.outcomes {
		out = append(out, o)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}
