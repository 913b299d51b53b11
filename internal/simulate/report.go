package simulate

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-sim/internal/store"
)

// Report summarizes a batch of games.
type Report struct {
	Played    int
	Solved    int
	Exhausted int

	// Histogram[n] counts games solved on round n; index 0 is unused.
	Histogram []int

	// Unsolved lists the answers that exhausted the budget, in list order.
	Unsolved []string
}

// Summarize builds a Report from outcomes. maxAttempts sizes the histogram.
func Summarize(outcomes []store.Outcome, maxAttempts int) *Report {
	rep := &Report{Histogram: make([]int, maxAttempts+1)}
	for _, o := range outcomes {
		rep.Played++
		if !o.Solved {
			rep.Exhausted++
			rep.Unsolved = append(rep.Unsolved, o.Answer)
			continue
		}
		rep.Solved++
		if o.Rounds >= len(rep.Histogram) {
			grown := make([]int, o.Rounds+1)
			copy(grown, rep.Histogram)
			rep.Histogram = grown
		}
		rep.Histogram[o.Rounds]++
	}
	return rep
}

// MeanRounds is the average round count over solved games, or 0 with none.
func (r *Report) MeanRounds() float64 {
	if r.Solved == 0 {
		return 0
	}
	total := 0
	for n, c := range r.Histogram {
		total += n * c
	}
	return float64(total) / float64(r.Solved)
}

// MarshalZerologObject lets a Report be logged with Event.Object.
func (r *Report) MarshalZerologObject(e *zerolog.Event) {
	e.Int("played", r.Played).
		Int("solved", r.Solved).
		Int("exhausted", r.Exhausted).
		Float64("meanRounds", r.MeanRounds())
}

// String renders the report as a small text table with one histogram bar per
// round that had at least one solve.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "played %d, solved %d, exhausted %d, mean rounds %.2f\n",
		r.Played, r.Solved, r.Exhausted, r.MeanRounds())
	for n, c := range r.Histogram {
		if c == 0 {
			continue
		}
		fmt.Fprintf(&b, "%3d | %-20s %d\n", n, strings.Repeat("#", scaleBar(c, r.Solved, 20)), c)
	}
	if len(r.Unsolved) > 0 {
		fmt.Fprintf(&b, "unsolved: %s\n", strings.Join(r.Unsolved, " "))
	}
	return b.String()
}

func scaleBar(c, total, width int) int {
	if total == 0 {
		return 0
	}
	n := c * width / total
	if n == 0 && c > 0 {
		n = 1
	}
	return n
}
