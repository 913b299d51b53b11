// Package algorithms holds the guessing strategies the simulator can run.
package algorithms

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/robalobadob/wordle/apps/go-sim/internal/wordle"
)

// ErrUnknownStrategy is returned by Lookup for names it does not know.
var ErrUnknownStrategy = errors.New("algorithms: unknown strategy")

// Factory builds a fresh guesser for one game.
type Factory func() wordle.Guesser

// WordSource lists the dictionary most frequent first.
type WordSource interface {
	Words() []string
}

var registry = map[string]func(args []string, src WordSource) (Factory, error){
	"naive": func([]string, WordSource) (Factory, error) {
		return func() wordle.Guesser { return NewNaive() }, nil
	},
	"frequency": func(_ []string, src WordSource) (Factory, error) {
		if src == nil {
			return nil, errors.New("algorithms: frequency needs a dictionary")
		}
		ranked := src.Words()
		return func() wordle.Guesser { return NewFrequency(ranked) }, nil
	},
	"script": func(args []string, _ WordSource) (Factory, error) {
		if len(args) == 0 {
			return nil, errors.New("algorithms: script needs at least one word")
		}
		return func() wordle.Guesser { return NewScripted(args...) }, nil
	},
	"repeat": func(args []string, _ WordSource) (Factory, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("algorithms: repeat needs exactly one word, got %d", len(args))
		}
		return func() wordle.Guesser { return Repeat(args[0]) }, nil
	},
}

// Lookup resolves a strategy by name. args are strategy-specific words, e.g.
// the list a "script" strategy replays; src feeds strategies that rank the
// dictionary and may be nil for the others.
func Lookup(name string, args []string, src WordSource) (Factory, error) {
	mk, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}
	return mk(args, src)
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
