/*
Package session tracks one game between a player and the solver.

A Session owns the mutable state that the solver itself never keeps: the
word length fixed by the first accepted pattern, the letters guessed so far,
and how many suggested letters turned out to be misses. Each call to Submit
takes the player's current pattern, validates it against that state, and
either ends the game or asks the solver for the next letter.

Rejected input (wrong length, unknown letters, bad symbols) leaves the
state untouched so the caller can prompt again.
*/
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/bastiangx/hangsolve/pkg/suggest"
)

var (
	// ErrLengthMismatch is returned when a pattern's length differs from the established one.
	ErrLengthMismatch = errors.New("pattern length does not match")
	// ErrUnknownLetters is returned when a pattern reveals a letter that was never guessed.
	ErrUnknownLetters = errors.New("pattern reveals letters that were not guessed")
	// ErrSessionOver is returned by Submit once the game has ended.
	ErrSessionOver = errors.New("session is over")
)

// Result is what one accepted pattern produced.
type Result struct {
	// Pattern is the accepted pattern.
	Pattern suggest.Pattern
	// Outcome is the solver result; nil when the game ended before asking it.
	Outcome suggest.Outcome
	// Revealed is set when the pattern had no blanks left.
	Revealed bool
	// Hanged is set when misses went past the configured limit.
	Hanged bool
	// Missed is set when the previous suggestion did not show up in Pattern.
	Missed bool
	// Over reports that the session accepts no more input.
	Over bool
}

// Options holds the per-game rules.
type Options struct {
	// MaxMisses ends the game once more letters than this were missed. 0 disables it.
	MaxMisses int
}

// Session is a single game. It is not safe for concurrent use.
type Session struct {
	solver  suggest.ISolver
	opts    Options
	length  int
	guessed suggest.Letters
	last    byte
	turns   int
	misses  int
	over    bool
}

// New starts a session backed by solver.
func New(solver suggest.ISolver, opts Options) *Session {
	return &Session{solver: solver, opts: opts}
}

// Submit validates line as the current pattern and advances the game.
func (s *Session) Submit(ctx context.Context, line string) (Result, error) {
	if s.over {
		return Result{}, ErrSessionOver
	}

	pattern, err := suggest.ParsePattern(line)
	if err != nil {
		return Result{}, err
	}
	if err := s.check(pattern); err != nil {
		return Result{}, err
	}

	if s.length == 0 {
		// Letters visible in the opening pattern count as already guessed.
		s.length = pattern.Len()
		s.guessed = s.guessed.Union(pattern.Revealed())
	}

	res := Result{Pattern: pattern}
	if s.last != 0 && !pattern.Revealed().Has(s.last) {
		s.misses++
		res.Missed = true
	}
	s.last = 0
	s.turns++

	if pattern.Complete() {
		res.Revealed, res.Over = true, true
		s.over = true
		return res, nil
	}
	if s.opts.MaxMisses > 0 && s.misses > s.opts.MaxMisses {
		res.Hanged, res.Over = true, true
		s.over = true
		return res, nil
	}

	out, err := s.solver.Suggest(ctx, pattern, s.guessed)
	if err != nil {
		return Result{}, fmt.Errorf("suggest: %w", err)
	}
	res.Outcome = out

	if sug, ok := out.(suggest.Suggestion); ok {
		s.guessed = s.guessed.Add(sug.Letter)
		s.last = sug.Letter
	} else {
		res.Over = true
		s.over = true
	}
	return res, nil
}

// check enforces the sticky length and that nothing unguessed is revealed.
func (s *Session) check(pattern suggest.Pattern) error {
	if s.length == 0 {
		return nil
	}
	if pattern.Len() != s.length {
		return fmt.Errorf("%w: got %d letters, want %d", ErrLengthMismatch, pattern.Len(), s.length)
	}
	if unknown := pattern.Revealed().Minus(s.guessed); !unknown.Empty() {
		return fmt.Errorf("%w: %s", ErrUnknownLetters, unknown.Format())
	}
	return nil
}

// Reset clears the game so a new word can be played.
func (s *Session) Reset() {
	*s = Session{solver: s.solver, opts: s.opts}
}

// Guessed returns a snapshot of the guessed letters.
func (s *Session) Guessed() suggest.Letters { return s.guessed }

// Length returns the established word length, 0 before the first pattern.
func (s *Session) Length() int { return s.length }

// Turns returns the number of accepted patterns.
func (s *Session) Turns() int { return s.turns }

// Misses returns how many suggested letters were not in the word.
func (s *Session) Misses() int { return s.misses }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.over }

// Pending returns the last suggested letter still awaiting an answer, or 0.
func (s *Session) Pending() byte { return s.last }
