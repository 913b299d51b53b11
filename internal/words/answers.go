// apps/go-sim/internal/words/answers.go
//
// Answer lists: the words a simulation plays games against.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/go-sim/assets"
)

// ParseAnswers reads whitespace-separated answers from r, lowercased and in
// file order. Duplicates are kept: each occurrence is its own game.
func ParseAnswers(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		w := strings.ToLower(sc.Text())
		if !IsWord(w) {
			return nil, fmt.Errorf("%w: answer %q is not a five letter word", ErrMalformed, w)
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	return out, nil
}

// LoadAnswers reads an answer list from a file.
func LoadAnswers(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := ParseAnswers(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

var (
	defaultAnswersOnce sync.Once
	defaultAnswers     []string
	defaultAnswersErr  error
)

// DefaultAnswers returns the bundled answer list, parsed once. Callers must
// not modify the returned slice.
func DefaultAnswers() ([]string, error) {
	defaultAnswersOnce.Do(func() {
		f, err := assets.Open(assets.AnswersFile)
		if err != nil {
			defaultAnswersErr = err
			return
		}
		defer f.Close()
		defaultAnswers, defaultAnswersErr = ParseAnswers(f)
	})
	return defaultAnswers, defaultAnswersErr
}
