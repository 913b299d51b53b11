package algorithms

import (
	"errors"

	"github.com/robalobadob/wordle/apps/go-sim/internal/wordle"
)

// ErrNoWords is returned by a Frequency guesser built from an empty list.
var ErrNoWords = errors.New("algorithms: no words to guess")

// Frequency sweeps the dictionary most-frequent-first, ignoring feedback.
// It wraps around when the list is shorter than the attempt budget, so it
// never stops early; it is a baseline, not a solver.
type Frequency struct {
	words []string
	next  int
}

// NewFrequency returns a guesser over words, which must already be sorted by
// frequency. The slice is shared, not copied, and must not be modified.
func NewFrequency(words []string) *Frequency {
	return &Frequency{words: words}
}

func (f *Frequency) Guess([]wordle.Guess) (string, error) {
	if len(f.words) == 0 {
		return "", ErrNoWords
	}
	w := f.words[f.next%len(f.words)]
	f.next++
	return w, nil
}
