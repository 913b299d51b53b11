package algorithms

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/go-sim/internal/wordle"
)

// ErrScriptExhausted is returned when a Scripted guesser runs out of words.
var ErrScriptExhausted = errors.New("algorithms: script exhausted")

// Scripted replays a fixed list of words, one per round, ignoring feedback.
type Scripted struct {
	words []string
	next  int
}

// NewScripted returns a guesser that plays words in order.
func NewScripted(words ...string) *Scripted {
	return &Scripted{words: append([]string(nil), words...)}
}

func (s *Scripted) Guess([]wordle.Guess) (string, error) {
	if s.next >= len(s.words) {
		return "", fmt.Errorf("%w after %d words", ErrScriptExhausted, len(s.words))
	}
	w := s.words[s.next]
	s.next++
	return w, nil
}

// Repeat guesses the same word every round.
type Repeat string

func (r Repeat) Guess([]wordle.Guess) (string, error) { return string(r), nil }
