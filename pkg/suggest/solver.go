package suggest

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/bastiangx/hangsolve/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Options controls scoring policy and how the dictionary scan is spread over goroutines.
type Options struct {
	// ExcludeFullCoverage skips letters that every remaining candidate contains.
	ExcludeFullCoverage bool
	// ShortListThreshold attaches the candidate list to a Suggestion when
	// fewer than this many candidates remain.
	ShortListThreshold int
	// Workers bounds the goroutines used per scan. 0 means runtime.NumCPU().
	Workers int
	// ParallelThreshold is the smallest scan that is split across workers.
	ParallelThreshold int
}

// DefaultOptions returns the scoring policy hangsolve ships with.
func DefaultOptions() Options {
	return Options{
		ExcludeFullCoverage: true,
		ShortListThreshold:  5,
		Workers:             0,
		ParallelThreshold:   4096,
	}
}

// Solver picks the next letter for a pattern out of a fixed dictionary.
// It holds no per-game state and is safe for concurrent use.
type Solver struct {
	dict  *dictionary.Dictionary
	opts  Options
	calls atomic.Int64
}

// NewSolver creates a Solver over dict.
func NewSolver(dict *dictionary.Dictionary, opts Options) *Solver {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.ParallelThreshold <= 0 {
		opts.ParallelThreshold = DefaultOptions().ParallelThreshold
	}
	if opts.ShortListThreshold < 0 {
		opts.ShortListThreshold = 0
	}
	return &Solver{dict: dict, opts: opts}
}

// Suggest runs a sequential Solver with the default policy once.
func Suggest(dict *dictionary.Dictionary, pattern Pattern, guessed Letters) (Outcome, error) {
	opts := DefaultOptions()
	opts.Workers = 1
	return NewSolver(dict, opts).Suggest(context.Background(), pattern, guessed)
}

// Options returns the effective options.
func (s *Solver) Options() Options {
	return s.opts
}

// Suggest filters the dictionary down to the candidates consistent with
// pattern and guessed, then returns one of:
//
//   - Solved when one candidate is left
//   - Exhausted when none is left
//   - Suggestion with the unguessed letter found in the most candidates,
//     lowest letter first on ties
//   - Stuck when no unguessed letter splits the candidates
//
// An error is only returned for an invalid pattern or a cancelled ctx.
func (s *Solver) Suggest(ctx context.Context, pattern Pattern, guessed Letters) (Outcome, error) {
	s.calls.Add(1)
	start := time.Now()

	candidates, err := s.Filter(ctx, pattern, guessed)
	if err != nil {
		return nil, err
	}

	switch len(candidates) {
	case 1:
		return Solved{Word: candidates[0]}, nil
	case 0:
		return Exhausted{LikelyNotAWord: guessed.Empty()}, nil
	}

	cov, err := s.coverage(ctx, candidates, guessed)
	if err != nil {
		return nil, err
	}

	letter, n, ok := pickLetter(cov, len(candidates), guessed, s.opts.ExcludeFullCoverage)
	if !ok {
		return Stuck{Count: len(candidates)}, nil
	}

	out := Suggestion{Letter: letter, Coverage: n, Count: len(candidates)}
	if len(candidates) < s.opts.ShortListThreshold {
		out.Candidates = candidates
	}
	log.Debugf("Took [ %v ] for pattern '%s': %d candidates, best '%c' (%d)",
		time.Since(start), pattern, len(candidates), letter, n)
	return out, nil
}

// pickLetter returns the unguessed letter with the highest coverage.
// Letters no candidate contains never split the set, and neither do letters
// every candidate contains when excludeFull is set.
func pickLetter(cov [26]int, total int, guessed Letters, excludeFull bool) (byte, int, bool) {
	best, bestCov := -1, 0
	for i := 0; i < len(Alphabet); i++ {
		if guessed.Has(Alphabet[i]) {
			continue
		}
		n := cov[i]
		if n == 0 || (excludeFull && n == total) {
			continue
		}
		// strictly greater keeps the earliest letter on ties
		if n > bestCov {
			best, bestCov = i, n
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return Alphabet[best], bestCov, true
}

// Stats returns statistics about the solver and its dictionary.
func (s *Solver) Stats() map[string]int {
	stats := map[string]int{
		"calls":             int(s.calls.Load()),
		"workers":           s.opts.Workers,
		"parallelThreshold": s.opts.ParallelThreshold,
	}
	for k, v := range s.dict.Stats() {
		stats[k] = v
	}
	return stats
}
