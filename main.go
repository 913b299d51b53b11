// apps/go-sim/main.go
//
// Entry point for the strategy simulator.
// Loads the dictionary and answers, plays one game per answer with a fresh
// guesser, and prints a summary. Any broken contract (malformed list,
// failing guesser, guess outside the dictionary) ends the process.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-sim/internal/algorithms"
	"github.com/robalobadob/wordle/apps/go-sim/internal/daily"
	"github.com/robalobadob/wordle/apps/go-sim/internal/simulate"
	"github.com/robalobadob/wordle/apps/go-sim/internal/wordle"
	"github.com/robalobadob/wordle/apps/go-sim/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, time.Now()); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
}

func run(ctx context.Context, cfg *config, out io.Writer, now time.Time) error {
	dict, err := loadDictionary(cfg.DictionaryFile)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	answers, err := loadAnswers(cfg.AnswersFile)
	if err != nil {
		return fmt.Errorf("load answers: %w", err)
	}
	if len(answers) == 0 {
		return errors.New("answer list is empty")
	}

	switch {
	case cfg.Daily:
		answers = []string{daily.Pick(now, cfg.DailySalt, answers)}
		log.Info().Str("date", daily.DateKey(now)).Msg("playing the daily answer")
	case cfg.Limit > 0 && cfg.Limit < len(answers):
		answers = answers[:cfg.Limit]
	}

	factory, err := algorithms.Lookup(cfg.Strategy, cfg.Script, dict)
	if err != nil {
		return err
	}

	engine := wordle.New(dict,
		wordle.WithMaxAttempts(cfg.MaxAttempts),
		wordle.WithLogger(log.Logger.With().Str("component", "engine").Logger()),
	)
	runner := simulate.NewRunner(engine,
		simulate.WithWorkers(cfg.Workers),
		simulate.WithLogger(log.Logger.With().Str("component", "simulate").Logger()),
	)

	log.Info().
		Int("dictionary", dict.Len()).
		Int("answers", len(answers)).
		Str("strategy", cfg.Strategy).
		Int("maxAttempts", cfg.MaxAttempts).
		Msg("starting simulation")

	start := time.Now()
	rep, err := runner.Run(ctx, answers, factory)
	if err != nil {
		return err
	}
	log.Info().Object("report", rep).Dur("elapsed", time.Since(start)).Msg("simulation finished")

	_, err = io.WriteString(out, rep.String())
	return err
}

func loadDictionary(path string) (*words.Dictionary, error) {
	if path == "" {
		return words.DefaultDictionary()
	}
	return words.LoadDictionary(path)
}

func loadAnswers(path string) ([]string, error) {
	if path == "" {
		return words.DefaultAnswers()
	}
	return words.LoadAnswers(path)
}
