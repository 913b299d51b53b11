// apps/go-sim/internal/words/dictionary.go
//
// Dictionary of valid guesses built from a word-frequency list.
//
// Format:
//   - One entry per line: "word<space>frequency", e.g. "crane 48210".
//   - Blank lines and lines starting with '#' are ignored.
//   - Words are lowercased; each must be exactly five letters a–z.
//   - A repeated word keeps its highest frequency.
//
// A malformed line fails the whole load; the caller decides whether that is
// fatal (the CLI treats it so).

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/go-sim/assets"
)

// ErrMalformed is wrapped by every parse failure in this package.
var ErrMalformed = errors.New("words: malformed list")

// Dictionary is an immutable set of valid guesses with their frequencies.
// It is safe for concurrent use.
type Dictionary struct {
	freq map[string]int64
}

// ParseDictionary reads a word-frequency list from r.
func ParseDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{freq: make(map[string]int64)}
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, rest, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q: missing frequency", ErrMalformed, n, line)
		}
		word = strings.ToLower(word)
		if !IsWord(word) {
			return nil, fmt.Errorf("%w: line %d: %q is not a five letter word", ErrMalformed, n, word)
		}
		f, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: frequency: %w", ErrMalformed, n, err)
		}
		if old, seen := d.freq[word]; !seen || f > old {
			d.freq[word] = f
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return d, nil
}

// LoadDictionary reads a word-frequency list from a file.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := ParseDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

var (
	defaultDictOnce sync.Once
	defaultDict     *Dictionary
	defaultDictErr  error
)

// DefaultDictionary returns the bundled dictionary, parsed once.
func DefaultDictionary() (*Dictionary, error) {
	defaultDictOnce.Do(func() {
		f, err := assets.Open(assets.DictionaryFile)
		if err != nil {
			defaultDictErr = err
			return
		}
		defer f.Close()
		defaultDict, defaultDictErr = ParseDictionary(f)
	})
	return defaultDict, defaultDictErr
}

// Contains reports whether word is a valid guess. Lookups are exact; the
// stored words are lowercase.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.freq[word]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.freq) }

// Words returns every word, most frequent first; ties sort alphabetically.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.freq))
	for w := range d.freq {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := d.freq[out[i]], d.freq[out[j]]
		if fi != fj {
			return fi > fj
		}
		return out[i] < out[j]
	})
	return out
}

// IsWord reports whether s is exactly five lowercase letters a–z.
func IsWord(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
