// Package assets bundles the default word lists into the binary.
//
//   - dictionary.txt: "word frequency" per line, every word a valid guess.
//   - answers.txt:    whitespace-separated answers to simulate.
package assets

import (
	"embed"
	"io/fs"
)

const (
	DictionaryFile = "dictionary.txt"
	AnswersFile    = "answers.txt"
)

//go:embed dictionary.txt answers.txt
var FS embed.FS

// Open opens one of the bundled files.
func Open(name string) (fs.File, error) {
	return FS.Open(name)
}
