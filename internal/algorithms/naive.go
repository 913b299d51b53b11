package algorithms

import (
	"errors"

	"github.com/robalobadob/wordle/apps/go-sim/internal/wordle"
)

// ErrNotImplemented is returned by strategies that cannot pick a word yet.
var ErrNotImplemented = errors.New("algorithms: not implemented")

// Naive is a placeholder strategy. Every call fails with ErrNotImplemented,
// so any game played with it ends in an error on round one.
type Naive struct{}

// NewNaive returns a fresh Naive guesser.
func NewNaive() *Naive { return &Naive{} }

func (*Naive) Guess([]wordle.Guess) (string, error) {
	return "", ErrNotImplemented
}
