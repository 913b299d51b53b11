package simulate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/wordle/apps/go-sim/internal/algorithms"
	"github.com/robalobadob/wordle/apps/go-sim/internal/store"
	"github.com/robalobadob/wordle/apps/go-sim/internal/wordle"
	"github.com/robalobadob/wordle/apps/go-sim/internal/words"
)

func engine(t *testing.T, opts ...wordle.Option) *wordle.Wordle {
	t.Helper()
	d, err := words.ParseDictionary(strings.NewReader("crane 5\nslate 4\nmoved 3\npiano 2\n"))
	if err != nil {
		t.Fatalf("ParseDictionary: %v", err)
	}
	return wordle.New(d, opts...)
}

func TestRun(t *testing.T) {
	st := store.NewMemoryStore()
	r := NewRunner(engine(t, wordle.WithMaxAttempts(3)), WithWorkers(2), WithStore(st))

	// Guesses crane, slate, moved in that order whatever the answer.
	factory, err := algorithms.Lookup("script", []string{"crane", "slate", "moved"}, nil)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	answers := []string{"slate", "crane", "piano", "moved", "crane"}
	rep, err := r.Run(context.Background(), answers, factory)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := &Report{
		Played:    5,
		Solved:    4,
		Exhausted: 1,
		Histogram: []int{0, 2, 1, 1},
		Unsolved:  []string{"piano"},
	}
	if diff := cmp.Diff(want, rep); diff != "" {
		t.Fatalf("unexpected report (-want +got)\n%s", diff)
	}
	if got := rep.MeanRounds(); got != 7.0/4.0 {
		t.Errorf("MeanRounds() = %v, want 1.75", got)
	}

	o, err := st.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(store.Outcome{Index: 3, Answer: "moved", Rounds: 3, Solved: true}, o); diff != "" {
		t.Errorf("unexpected outcome (-want +got)\n%s", diff)
	}
}

func TestRunReusedRunnerReportsOnlyItsBatch(t *testing.T) {
	st := store.NewMemoryStore()
	r := NewRunner(engine(t), WithWorkers(2), WithStore(st))
	ctx := context.Background()
	repeat := func() wordle.Guesser { return algorithms.Repeat("crane") }

	if _, err := r.Run(ctx, []string{"slate", "moved", "piano"}, repeat); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	rep, err := r.Run(ctx, []string{"crane"}, repeat)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}

	want := &Report{
		Played:    1,
		Solved:    1,
		Histogram: make([]int, wordle.MaxAttempts+1),
	}
	want.Histogram[1] = 1
	if diff := cmp.Diff(want, rep); diff != "" {
		t.Fatalf("second batch report includes earlier games (-want +got)\n%s", diff)
	}

	// The store still holds both batches; the report does not.
	all, err := st.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("store holds %d outcomes, want 3", len(all))
	}
}

func TestRunStopsOnGuesserError(t *testing.T) {
	r := NewRunner(engine(t), WithWorkers(1))
	_, err := r.Run(context.Background(), []string{"crane", "slate"}, func() wordle.Guesser {
		return algorithms.NewNaive()
	})
	if !errors.Is(err, algorithms.ErrNotImplemented) {
		t.Fatalf("Run error = %v, want ErrNotImplemented", err)
	}
	if !strings.Contains(err.Error(), "game 1 (crane)") {
		t.Errorf("error %q does not name the failing game", err)
	}
}

func TestRunRejectsUnknownWord(t *testing.T) {
	r := NewRunner(engine(t))
	_, err := r.Run(context.Background(), []string{"crane"}, func() wordle.Guesser {
		return algorithms.Repeat("zzzzz")
	})
	if !errors.Is(err, wordle.ErrNotInDictionary) {
		t.Fatalf("Run error = %v, want ErrNotInDictionary", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(engine(t))
	_, err := r.Run(ctx, []string{"crane"}, func() wordle.Guesser { return algorithms.Repeat("crane") })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}

func TestReportString(t *testing.T) {
	rep := Summarize([]store.Outcome{
		{Index: 0, Answer: "crane", Rounds: 1, Solved: true},
		{Index: 1, Answer: "piano"},
	}, 2)
	got := rep.String()
	for _, want := range []string{"played 2, solved 1, exhausted 1, mean rounds 1.00", "  1 | ", "unsolved: piano"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
	if empty := Summarize(nil, wordle.MaxAttempts); empty.MeanRounds() != 0 {
		t.Errorf("MeanRounds() on empty report = %v", empty.MeanRounds())
	}
}
