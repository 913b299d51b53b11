// apps/go-sim/internal/wordle/engine.go
//
// Game engine that drives a Guesser until it finds the answer.
// Responsibilities:
//   - Ask the guesser for a word each round, passing the history so far.
//   - Reject words missing from the dictionary.
//   - Score guesses and append them to the history.
//   - Track state transitions: playing → won/exhausted.
//
// Notes:
//   - The dictionary is shared and read-only; each Play call owns its history.
//   - Exhausting the attempt budget is a normal outcome, not an error.

package wordle

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrNotInDictionary is returned when a guesser proposes a word the
	// dictionary does not contain. It means the strategy is broken.
	ErrNotInDictionary = errors.New("wordle: guess not in dictionary")

	// ErrGuesser wraps any error a guesser returns.
	ErrGuesser = errors.New("wordle: guesser failed")
)

// Guesser proposes the next word given the guesses made so far.
// history is empty on the first round and must not be modified.
type Guesser interface {
	Guess(history []Guess) (string, error)
}

// GuesserFunc adapts a plain function to the Guesser interface.
type GuesserFunc func(history []Guess) (string, error)

// Guess calls f(history).
func (f GuesserFunc) Guess(history []Guess) (string, error) { return f(history) }

// Dictionary is the set of words a guesser may submit.
type Dictionary interface {
	Contains(word string) bool
}

// Wordle plays games against a fixed dictionary.
type Wordle struct {
	dict        Dictionary
	maxAttempts int
	log         zerolog.Logger
}

// Option configures a Wordle.
type Option func(*Wordle)

// WithMaxAttempts overrides the MaxAttempts round budget. Values below one
// are ignored.
func WithMaxAttempts(n int) Option {
	return func(w *Wordle) {
		if n > 0 {
			w.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used for per-round debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(w *Wordle) { w.log = l }
}

// New constructs an engine over dict.
func New(dict Dictionary, opts ...Option) *Wordle {
	w := &Wordle{
		dict:        dict,
		maxAttempts: MaxAttempts,
		log:         zerolog.Nop(),
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// MaxAttempts reports the round budget of a game.
func (w *Wordle) MaxAttempts() int { return w.maxAttempts }

// Play runs one game of g against answer.
// Returns: the round the answer was guessed in and true, or (0, false) when
// the attempt budget ran out.
//
// A non-nil error means the guesser broke its contract (it failed or
// proposed a word outside the dictionary); such games have no outcome and
// should not be retried. An answer of the wrong length panics.
func (w *Wordle) Play(answer string, g Guesser) (int, bool, error) {
	if len(answer) != WordLength {
		panic(fmt.Sprintf("wordle: answer %q has %d letters, want %d", answer, len(answer), WordLength))
	}

	history := make([]Guess, 0, w.maxAttempts)
	for round := 1; round <= w.maxAttempts; round++ {
		word, err := g.Guess(history[:len(history):len(history)])
		if err != nil {
			return 0, false, fmt.Errorf("round %d: %w: %w", round, ErrGuesser, err)
		}
		if word == answer {
			w.log.Debug().Str("answer", answer).Int("round", round).Msg("solved")
			return round, true, nil
		}
		if !w.dict.Contains(word) {
			return 0, false, fmt.Errorf("round %d: %q: %w", round, word, ErrNotInDictionary)
		}

		scored := Guess{Word: word, Mask: Compute(answer, word)}
		history = append(history, scored)
		w.log.Debug().
			Str("answer", answer).
			Int("round", round).
			Stringer("guess", scored).
			Str("tiles", scored.Mask.Emoji()).
			Msg("guess scored")
	}

	w.log.Debug().Str("answer", answer).Int("rounds", w.maxAttempts).Msg("exhausted")
	return 0, false, nil
}
