package suggest

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// span is a half-open range [lo, hi) of a scan source.
type span struct{ lo, hi int }

// Filter returns the dictionary words consistent with pattern and guessed,
// in dictionary order. Large scans are split into contiguous chunks that
// run concurrently, each writing its own slot.
func (s *Solver) Filter(ctx context.Context, pattern Pattern, guessed Letters) ([]string, error) {
	if _, err := ParsePattern(string(pattern)); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := s.source(pattern)
	if len(source) < s.opts.ParallelThreshold || s.opts.Workers < 2 {
		return s.scan(source, pattern, guessed), nil
	}

	spans := split(len(source), s.opts.Workers)
	results := make([][]string, len(spans))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, sp := range spans {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.scan(source[sp.lo:sp.hi], pattern, guessed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	if total == 0 {
		return nil, nil
	}
	out := make([]string, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// source picks the smaller of the length index and the known-prefix index.
func (s *Solver) source(pattern Pattern) []int {
	byLen := s.dict.OfLength(pattern.Len())
	prefix := pattern.Prefix()
	if prefix == "" {
		return byLen
	}
	byPrefix := s.dict.WithPrefix(prefix)
	if len(byPrefix) < len(byLen) {
		return byPrefix
	}
	return byLen
}

func (s *Solver) scan(positions []int, pattern Pattern, guessed Letters) []string {
	var out []string
	for _, pos := range positions {
		w := s.dict.At(pos)
		if pattern.Matches(w, guessed) {
			out = append(out, w)
		}
	}
	return out
}

// coverage counts, per letter, how many candidates contain it at least once.
// Guessed letters are left at zero.
func (s *Solver) coverage(ctx context.Context, candidates []string, guessed Letters) ([26]int, error) {
	if len(candidates) < s.opts.ParallelThreshold || s.opts.Workers < 2 {
		return count(candidates, guessed), ctx.Err()
	}

	spans := split(len(candidates), s.opts.Workers)
	partial := make([][26]int, len(spans))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, sp := range spans {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partial[i] = count(candidates[sp.lo:sp.hi], guessed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return [26]int{}, err
	}

	var total [26]int
	for _, p := range partial {
		for i, n := range p {
			total[i] += n
		}
	}
	return total, nil
}

func count(words []string, guessed Letters) [26]int {
	var cov [26]int
	for _, w := range words {
		present := LettersOf(w).Minus(guessed)
		for i := 0; i < len(Alphabet); i++ {
			if present.Has(Alphabet[i]) {
				cov[i]++
			}
		}
	}
	return cov
}

// split divides n items into at most parts contiguous spans of near equal size.
func split(n, parts int) []span {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		return nil
	}
	size := (n + parts - 1) / parts
	spans := make([]span, 0, parts)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		spans = append(spans, span{lo, hi})
	}
	return spans
}
