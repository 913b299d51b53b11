package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDictionary(t *testing.T) {
	in := `# comment
crane 300
Slate 500

crane 900
moved 500
`
	d, err := ParseDictionary(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseDictionary: %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
	for _, w := range []string{"crane", "slate", "moved"} {
		if !d.Contains(w) {
			t.Errorf("Contains(%q) = false", w)
		}
	}
	if d.Contains("Slate") || d.Contains("zzzzz") {
		t.Error("Contains matched a word outside the dictionary")
	}
	// crane keeps its higher duplicate frequency, 900, so it sorts first.
	if diff := cmp.Diff([]string{"crane", "moved", "slate"}, d.Words()); diff != "" {
		t.Errorf("unexpected Words() (-want +got)\n%s", diff)
	}
}

func TestParseDictionaryErrors(t *testing.T) {
	tests := []struct {
		desc string
		in   string
		want string
	}{
		{desc: "missing separator", in: "crane 1\nslate\n", want: "line 2"},
		{desc: "short word", in: "cran 1\n", want: "line 1"},
		{desc: "non-letter", in: "cr4ne 1\n", want: "line 1"},
		{desc: "bad frequency", in: "crane lots\n", want: "line 1"},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, err := ParseDictionary(strings.NewReader(test.in))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("error = %v, want ErrMalformed", err)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Fatalf("error %q does not mention %q", err, test.want)
			}
		})
	}
}

func TestParseAnswers(t *testing.T) {
	got, err := ParseAnswers(strings.NewReader("crane SLATE\n\tmoved  crane\n"))
	if err != nil {
		t.Fatalf("ParseAnswers: %v", err)
	}
	if diff := cmp.Diff([]string{"crane", "slate", "moved", "crane"}, got); diff != "" {
		t.Fatalf("unexpected answers (-want +got)\n%s", diff)
	}

	if _, err := ParseAnswers(strings.NewReader("crane toolong")); !errors.Is(err, ErrMalformed) {
		t.Fatalf("error = %v, want ErrMalformed", err)
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "dict.txt")
	ansPath := filepath.Join(dir, "answers.txt")
	if err := os.WriteFile(dictPath, []byte("crane 1\nslate 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ansPath, []byte("slate\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadDictionary(dictPath)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
	a, err := LoadAnswers(ansPath)
	if err != nil {
		t.Fatalf("LoadAnswers: %v", err)
	}
	if diff := cmp.Diff([]string{"slate"}, a); diff != "" {
		t.Errorf("unexpected answers (-want +got)\n%s", diff)
	}

	if _, err := LoadDictionary(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadDictionary(missing) error = %v, want ErrNotExist", err)
	}
}

func TestDefaults(t *testing.T) {
	d, err := DefaultDictionary()
	if err != nil {
		t.Fatalf("DefaultDictionary: %v", err)
	}
	answers, err := DefaultAnswers()
	if err != nil {
		t.Fatalf("DefaultAnswers: %v", err)
	}
	if len(answers) == 0 {
		t.Fatal("bundled answer list is empty")
	}
	for _, a := range answers {
		if !d.Contains(a) {
			t.Errorf("answer %q missing from the bundled dictionary", a)
		}
	}
	if again, _ := DefaultDictionary(); again != d {
		t.Error("DefaultDictionary parsed the asset twice")
	}
}
