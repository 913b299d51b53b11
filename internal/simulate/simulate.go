// apps/go-sim/internal/simulate/simulate.go
//
// Batch evaluation of a guessing strategy over a list of answers.
// Responsibilities:
//   - Play one game per answer, each with a fresh guesser.
//   - Run games on a bounded number of goroutines.
//   - Collect outcomes into a store.Store and summarize them.
//
// Notes:
//   - Games share only the engine's read-only dictionary.
//   - The first game that ends in an error cancels the rest of the batch.

package simulate

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-sim/internal/store"
	"github.com/robalobadob/wordle/apps/go-sim/internal/wordle"
)

// Runner plays batches of games on one engine.
type Runner struct {
	engine  *wordle.Wordle
	workers int
	store   store.Store
	log     zerolog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of games played at once. Values below one
// select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithStore collects outcomes into s instead of a private memory store.
func WithStore(s store.Store) Option {
	return func(r *Runner) { r.store = s }
}

// WithLogger sets the logger for per-game events.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// NewRunner constructs a Runner around engine.
func NewRunner(engine *wordle.Wordle, opts ...Option) *Runner {
	r := &Runner{
		engine:  engine,
		workers: runtime.GOMAXPROCS(0),
		log:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(r)
	}
	if r.store == nil {
		r.store = store.NewMemoryStore()
	}
	return r
}

// Run plays every answer with a guesser from newGuesser and returns the
// summary of this batch only, even when the store holds earlier outcomes.
// A guesser error or a context cancellation aborts the batch and is
// returned; outcomes already saved stay in the store.
func (r *Runner) Run(ctx context.Context, answers []string, newGuesser func() wordle.Guesser) (*Report, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	// Each game writes only its own slot.
	outcomes := make([]store.Outcome, len(answers))

	for i, answer := range answers {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rounds, solved, err := r.engine.Play(answer, newGuesser())
			if err != nil {
				return fmt.Errorf("game %d (%s): %w", i+1, answer, err)
			}
			r.log.Debug().
				Int("game", i+1).
				Str("answer", answer).
				Bool("solved", solved).
				Int("rounds", rounds).
				Msg("game finished")
			outcomes[i] = store.Outcome{Index: i, Answer: answer, Rounds: rounds, Solved: solved}
			return r.store.Save(gctx, outcomes[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Summarize(outcomes, r.engine.MaxAttempts()), nil
}
