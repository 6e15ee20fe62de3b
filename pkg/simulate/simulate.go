// Package simulate plays every dictionary word against a solver to measure how often it wins.
package simulate

import (
	"context"
	"runtime"
	"time"

	"github.com/bastiangx/hangsolve/pkg/dictionary"
	"github.com/bastiangx/hangsolve/pkg/suggest"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Options controls a run.
type Options struct {
	// MaxMisses is the Hangman limit: a solved game only counts as won with
	// at most this many misses. 0 counts every solved game as won.
	MaxMisses int
	// MaxTurns caps the turns per game. 0 means one turn per letter of the alphabet.
	MaxTurns int
	// Workers bounds how many games run at once. 0 means runtime.NumCPU().
	Workers int
	// Length restricts the run to words of that length. 0 plays every word.
	Length int
}

// Game is the record of one simulated word.
type Game struct {
	Word   string
	Final  suggest.Kind
	Solved bool
	Won    bool
	Turns  int
	Misses int
	// Guesses are the suggested letters in the order they were played.
	Guesses string
}

// Report summarises a run.
type Report struct {
	Games    int
	Solved   int
	Won      int
	Turns    int
	Misses   int
	Elapsed  time.Duration
	Failures []Game
}

// AverageTurns returns the mean number of turns per game.
func (r Report) AverageTurns() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Turns) / float64(r.Games)
}

// AverageMisses returns the mean number of misses per game.
func (r Report) AverageMisses() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Misses) / float64(r.Games)
}

// Simulator replays games with a shared solver.
type Simulator struct {
	solver suggest.ISolver
	dict   *dictionary.Dictionary
	opts   Options
}

// New creates a Simulator. The solver should be built over dict.
func New(solver suggest.ISolver, dict *dictionary.Dictionary, opts Options) *Simulator {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = len(suggest.Alphabet)
	}
	return &Simulator{solver: solver, dict: dict, opts: opts}
}

// Run plays every selected word concurrently and reports in dictionary order.
func (sim *Simulator) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	targets := sim.targets()
	games := make([]Game, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sim.opts.Workers)
	for i, word := range targets {
		g.Go(func() error {
			game, err := sim.Play(gctx, word)
			if err != nil {
				return err
			}
			games[i] = game
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Games: len(games), Elapsed: time.Since(start)}
	for _, game := range games {
		report.Turns += game.Turns
		report.Misses += game.Misses
		if game.Solved {
			report.Solved++
		}
		if game.Won {
			report.Won++
		} else {
			report.Failures = append(report.Failures, game)
		}
	}
	log.Debugf("Simulated %d games in %v", report.Games, report.Elapsed)
	return report, nil
}

// Play runs one game for word, starting from an all-blank pattern and
// feeding every suggested letter back into the pattern.
func (sim *Simulator) Play(ctx context.Context, word string) (Game, error) {
	game := Game{Word: word, Final: suggest.KindSuggestion}
	var guessed suggest.Letters
	letters := suggest.LettersOf(word)
	guesses := make([]byte, 0, len(suggest.Alphabet))

	for game.Turns < sim.opts.MaxTurns {
		pattern := suggest.Mask(word, guessed)
		if pattern.Complete() {
			game.Solved, game.Final = true, suggest.KindSolved
			break
		}

		game.Turns++
		out, err := sim.solver.Suggest(ctx, pattern, guessed)
		if err != nil {
			return Game{}, err
		}
		game.Final = out.Kind()

		switch o := out.(type) {
		case suggest.Suggestion:
			guessed = guessed.Add(o.Letter)
			guesses = append(guesses, o.Letter)
			if !letters.Has(o.Letter) {
				game.Misses++
			}
			continue
		case suggest.Solved:
			game.Solved = o.Word == word
		}
		break
	}

	game.Guesses = string(guesses)
	game.Won = game.Solved && (sim.opts.MaxMisses == 0 || game.Misses <= sim.opts.MaxMisses)
	return game, nil
}

func (sim *Simulator) targets() []string {
	if sim.opts.Length > 0 {
		positions := sim.dict.OfLength(sim.opts.Length)
		out := make([]string, len(positions))
		for i, pos := range positions {
			out[i] = sim.dict.At(pos)
		}
		return out
	}
	return sim.dict.Words()
}
