package session

import (
	"context"
	"testing"

	"github.com/bastiangx/hangsolve/pkg/dictionary"
	"github.com/bastiangx/hangsolve/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	dict := dictionary.Parse("cat\ncar\ncan\ndog", 0)
	solverOpts := suggest.DefaultOptions()
	solverOpts.Workers = 1
	return New(suggest.NewSolver(dict, solverOpts), opts)
}

func letterOf(t *testing.T, res Result) byte {
	t.Helper()
	sug, ok := res.Outcome.(suggest.Suggestion)
	require.True(t, ok, "expected a suggestion, got %#v", res.Outcome)
	return sug.Letter
}

func TestSessionPlaysToSolved(t *testing.T) {
	s := newSession(t, Options{})
	ctx := context.Background()

	res, err := s.Submit(ctx, "___")
	require.NoError(t, err)
	assert.Equal(t, byte('a'), letterOf(t, res))
	assert.Equal(t, 3, s.Length())
	assert.Equal(t, byte('a'), s.Pending())

	res, err = s.Submit(ctx, "_a_")
	require.NoError(t, err)
	assert.False(t, res.Missed)
	assert.Equal(t, byte('n'), letterOf(t, res))

	res, err = s.Submit(ctx, "_a_")
	require.NoError(t, err)
	assert.True(t, res.Missed)
	assert.Equal(t, byte('r'), letterOf(t, res))
	assert.Equal(t, []string{"cat", "car"}, res.Outcome.(suggest.Suggestion).Candidates)

	res, err = s.Submit(ctx, "_a_")
	require.NoError(t, err)
	assert.True(t, res.Over)
	assert.Equal(t, suggest.Solved{Word: "cat"}, res.Outcome)

	assert.Equal(t, 4, s.Turns())
	assert.Equal(t, 2, s.Misses())
	assert.Equal(t, "anr", s.Guessed().String())
	assert.True(t, s.Over())

	_, err = s.Submit(ctx, "_a_")
	assert.ErrorIs(t, err, ErrSessionOver)
}

func TestSessionRejectsBadInput(t *testing.T) {
	s := newSession(t, Options{})
	ctx := context.Background()

	_, err := s.Submit(ctx, "C__")
	assert.ErrorIs(t, err, suggest.ErrInvalidPattern)
	assert.Zero(t, s.Length(), "rejected input must not fix the length")

	_, err = s.Submit(ctx, "___")
	require.NoError(t, err)

	testCases := []struct {
		input string
		want  error
	}{
		{"____", ErrLengthMismatch},
		{"__", ErrLengthMismatch},
		{"c__", ErrUnknownLetters},
		{"_a?", suggest.ErrInvalidPattern},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := s.Submit(ctx, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Equal(t, 1, s.Turns())
	assert.Zero(t, s.Misses())
	assert.Equal(t, byte('a'), s.Pending())
	assert.Equal(t, "a", s.Guessed().String())
}

func TestSessionOpeningRevealsCountAsGuessed(t *testing.T) {
	s := newSession(t, Options{})

	res, err := s.Submit(context.Background(), "c__")
	require.NoError(t, err)
	assert.Equal(t, byte('n'), letterOf(t, res))
	assert.Equal(t, "cn", s.Guessed().String())
}

func TestSessionRevealed(t *testing.T) {
	s := newSession(t, Options{})
	ctx := context.Background()

	_, err := s.Submit(ctx, "ca_")
	require.NoError(t, err)

	res, err := s.Submit(ctx, "can")
	require.NoError(t, err)
	assert.True(t, res.Revealed)
	assert.True(t, res.Over)
	assert.False(t, res.Missed)
	assert.Nil(t, res.Outcome)
}

func TestSessionHanged(t *testing.T) {
	s := newSession(t, Options{MaxMisses: 1})
	ctx := context.Background()

	for _, p := range []string{"___", "_a_", "_a_"} {
		res, err := s.Submit(ctx, p)
		require.NoError(t, err)
		require.False(t, res.Over)
	}

	res, err := s.Submit(ctx, "_a_")
	require.NoError(t, err)
	assert.True(t, res.Hanged)
	assert.True(t, res.Over)
	assert.Nil(t, res.Outcome)
	assert.Equal(t, 2, s.Misses())
}

func TestSessionExhaustedEnds(t *testing.T) {
	s := newSession(t, Options{})

	res, err := s.Submit(context.Background(), "_______")
	require.NoError(t, err)
	assert.Equal(t, suggest.Exhausted{LikelyNotAWord: true}, res.Outcome)
	assert.True(t, s.Over())
}

func TestSessionReset(t *testing.T) {
	s := newSession(t, Options{})
	ctx := context.Background()

	_, err := s.Submit(ctx, "_______")
	require.NoError(t, err)
	require.True(t, s.Over())

	s.Reset()
	assert.False(t, s.Over())
	assert.Zero(t, s.Length())
	assert.Zero(t, s.Turns())
	assert.True(t, s.Guessed().Empty())

	res, err := s.Submit(ctx, "___")
	require.NoError(t, err)
	assert.Equal(t, suggest.KindSuggestion, res.Outcome.Kind())
}
