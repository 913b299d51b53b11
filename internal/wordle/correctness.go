// apps/go-sim/internal/wordle/correctness.go
//
// Feedback computation for a guess against an answer.

package wordle

import "fmt"

// Compute scores guess against answer using the two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct and consume those answer positions.
//
// Pass 2:
//   - For each remaining guess letter, in guess order, claim the leftmost
//     unconsumed answer position holding the same letter and mark it
//     Misplaced; otherwise mark it Wrong.
//
// Each answer letter is credited at most once, so repeated letters in the
// guess only score as many times as they occur in the answer.
//
// Both words must be exactly WordLength bytes; anything else is a caller bug
// and panics.
func Compute(answer, guess string) Mask {
	if len(answer) != WordLength {
		panic(fmt.Sprintf("wordle: answer %q has %d letters, want %d", answer, len(answer), WordLength))
	}
	if len(guess) != WordLength {
		panic(fmt.Sprintf("wordle: guess %q has %d letters, want %d", guess, len(guess), WordLength))
	}

	var (
		mask Mask
		used [WordLength]bool
	)

	// First pass: exact positions.
	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			mask[i] = Correct
			used[i] = true
		}
	}

	// Second pass: misplaced letters, leftmost unconsumed answer position wins.
	for i := 0; i < WordLength; i++ {
		if mask[i] == Correct {
			continue
		}
		mask[i] = Wrong
		for j := 0; j < WordLength; j++ {
			if !used[j] && answer[j] == guess[i] {
				used[j] = true
				mask[i] = Misplaced
				break
			}
		}
	}
	return mask
}
