// apps/go-sim/config.go
//
// Command-line configuration for the simulator.
//
// Every flag can also be set through the environment with a WORDLE_ prefix,
// e.g. -max_attempts=6 or WORDLE_MAX_ATTEMPTS=6, or from a key/value file
// passed with -config. A .env file in the working directory is loaded first.
// LOG_LEVEL is honoured as the default log level.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-sim/internal/wordle"
)

const envPrefix = "WORDLE"

type config struct {
	DictionaryFile string   // override for the bundled dictionary
	AnswersFile    string   // override for the bundled answer list
	Strategy       string   // registered strategy name
	Script         []string // words for the script/repeat strategies
	Workers        int      // parallel games; 0 = GOMAXPROCS
	MaxAttempts    int      // rounds per game
	Limit          int      // play only the first N answers; 0 = all
	Daily          bool     // play only today's answer
	DailySalt      string   // key for the daily pick

	LogLevel zerolog.Level
	Pretty   bool // console log output instead of JSON
}

func loadConfig(args []string) (*config, error) {
	fs := flag.NewFlagSetWithEnvPrefix("wordle-sim", envPrefix, flag.ContinueOnError)
	var (
		_           = fs.String(flag.DefaultConfigFlagname, "", "Path to a key/value config file")
		dictFile    = fs.String("dictionary_file", "", "Word-frequency list of valid guesses. Defaults to the bundled list.")
		answersFile = fs.String("answers_file", "", "Whitespace-separated answers to simulate. Defaults to the bundled list.")
		strategy    = fs.String("strategy", "naive", "Guessing strategy to evaluate")
		script      = fs.String("script", "", "Comma-separated words for the script and repeat strategies")
		workers     = fs.Int("workers", 0, "Games to play in parallel; 0 uses every CPU")
		maxAttempts = fs.Int("max_attempts", wordle.MaxAttempts, "Rounds before a game counts as unsolved")
		limit       = fs.Int("limit", 0, "Only play the first N answers; 0 plays them all")
		daily       = fs.Bool("daily", false, "Only play today's answer")
		dailySalt   = fs.String("daily_salt", "local_dev_salt", "Key for picking today's answer")
		logLevel    = fs.String("log_level", getEnv("LOG_LEVEL", "info"), "zerolog level: trace, debug, info, warn, error")
		pretty      = fs.Bool("pretty", false, "Human-readable console logs")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	if *maxAttempts < 1 {
		return nil, fmt.Errorf("max_attempts must be positive, got %d", *maxAttempts)
	}
	if *limit < 0 || *workers < 0 {
		return nil, errors.New("limit and workers must not be negative")
	}

	return &config{
		DictionaryFile: *dictFile,
		AnswersFile:    *answersFile,
		Strategy:       *strategy,
		Script:         splitList(*script),
		Workers:        *workers,
		MaxAttempts:    *maxAttempts,
		Limit:          *limit,
		Daily:          *daily,
		DailySalt:      *dailySalt,
		LogLevel:       lvl,
		Pretty:         *pretty,
	}, nil
}

// splitList splits a comma or space separated list, dropping empty items.
func splitList(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ',' || r == ' '
	})
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
