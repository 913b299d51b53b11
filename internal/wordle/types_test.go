package wordle

import (
	"errors"
	"testing"
)

func TestParseMask(t *testing.T) {
	m, err := ParseMask("cMwCm")
	if err != nil {
		t.Fatalf("ParseMask: %v", err)
	}
	want := Mask{Correct, Misplaced, Wrong, Correct, Misplaced}
	if m != want {
		t.Fatalf("ParseMask = %v, want %v", m, want)
	}
	if got := m.String(); got != "CMWCM" {
		t.Fatalf("String() = %q, want %q", got, "CMWCM")
	}

	for _, bad := range []string{"", "CCCC", "CCCCCC", "CCXCC"} {
		if _, err := ParseMask(bad); !errors.Is(err, ErrBadMask) {
			t.Errorf("ParseMask(%q) error = %v, want ErrBadMask", bad, err)
		}
	}
}

func TestGuessString(t *testing.T) {
	g := Guess{Word: "crane", Mask: Mask{Wrong, Misplaced, Correct, Wrong, Wrong}}
	if got, want := g.String(), "crane WMCWW"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestMaskEmoji(t *testing.T) {
	got := Mask{Correct, Misplaced, Wrong, Wrong, Correct}.Emoji()
	if want := "🟩🟨⬜⬜🟩"; got != want {
		t.Fatalf("Emoji() = %q, want %q", got, want)
	}
}

func TestCorrectnessString(t *testing.T) {
	for c, want := range map[Correctness]string{
		Wrong:          "wrong",
		Misplaced:      "misplaced",
		Correct:        "correct",
		Correctness(9): "Correctness(9)",
	} {
		if got := c.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", uint8(c), got, want)
		}
	}
}
