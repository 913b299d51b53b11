// apps/go-sim/internal/wordle/types.go
//
// Core type definitions for the simulated game.
// Defines:
//   - Correctness: per-letter result of a guess (correct/misplaced/wrong).
//   - Mask: the five Correctness values for one guess.
//   - Guess: a submitted word paired with its mask.

package wordle

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// WordLength is the number of letters in every answer and guess.
	WordLength = 5

	// MaxAttempts is the default number of rounds before a game is exhausted.
	MaxAttempts = 32
)

// Correctness represents the evaluation result for a single letter in a guess.
// Possible values:
//   - Wrong:     no unconsumed occurrence of the letter remains in the answer.
//   - Misplaced: the letter is in the answer at a different position.
//   - Correct:   the letter is in the correct position.
type Correctness uint8

const (
	Wrong Correctness = iota
	Misplaced
	Correct
)

func (c Correctness) String() string {
	switch c {
	case Wrong:
		return "wrong"
	case Misplaced:
		return "misplaced"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("Correctness(%d)", uint8(c))
}

// Mask is the per-position feedback for one guess.
type Mask [WordLength]Correctness

// String renders the mask in shorthand, one of C/M/W per letter.
func (m Mask) String() string {
	var b strings.Builder
	for _, c := range m {
		switch c {
		case Correct:
			b.WriteByte('C')
		case Misplaced:
			b.WriteByte('M')
		default:
			b.WriteByte('W')
		}
	}
	return b.String()
}

// Emoji renders the mask as the familiar share-grid row.
func (m Mask) Emoji() string {
	var b strings.Builder
	for _, c := range m {
		switch c {
		case Correct:
			b.WriteString("🟩")
		case Misplaced:
			b.WriteString("🟨")
		default:
			b.WriteString("⬜")
		}
	}
	return b.String()
}

// ErrBadMask is returned by ParseMask for malformed input.
var ErrBadMask = errors.New("wordle: bad mask")

// ParseMask is the inverse of Mask.String. Letters are case-insensitive.
func ParseMask(s string) (Mask, error) {
	var m Mask
	if len(s) != WordLength {
		return m, fmt.Errorf("%w: %q has %d letters", ErrBadMask, s, len(s))
	}
	for i := 0; i < WordLength; i++ {
		switch s[i] {
		case 'C', 'c':
			m[i] = Correct
		case 'M', 'm':
			m[i] = Misplaced
		case 'W', 'w':
			m[i] = Wrong
		default:
			return m, fmt.Errorf("%w: unexpected %q at position %d", ErrBadMask, s[i], i)
		}
	}
	return m, nil
}

// Guess is one round of history: the submitted word and its feedback.
type Guess struct {
	Word string
	Mask Mask
}

func (g Guess) String() string { return g.Word + " " + g.Mask.String() }
