package server

import (
	"bytes"
	"context"
	"testing"

	"github.com/bastiangx/hangsolve/pkg/dictionary"
	"github.com/bastiangx/hangsolve/pkg/session"
	"github.com/bastiangx/hangsolve/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func newTestServer(t *testing.T, in *bytes.Buffer, out *bytes.Buffer) *Server {
	t.Helper()
	dict := dictionary.Parse("cat\ncar\ncan\ndog", 0)
	opts := suggest.DefaultOptions()
	opts.Workers = 1
	solver := suggest.NewSolver(dict, opts)
	return NewServer(solver, session.New(solver, session.Options{}), in, out)
}

func encodeRequests(t *testing.T, reqs ...Request) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for _, r := range reqs {
		require.NoError(t, enc.Encode(r))
	}
	return &buf
}

func TestServerSession(t *testing.T) {
	in := encodeRequests(t,
		Request{ID: "1", Action: ActionGuess, Pattern: "___"},
		Request{ID: "2", Action: ActionGuess, Pattern: "____"},
		Request{ID: "3", Action: ActionInfo},
		Request{ID: "4", Pattern: "_a_"},
		Request{ID: "5", Pattern: "_a_"},
		Request{ID: "6", Pattern: "_a_"},
		Request{ID: "7", Pattern: "_a_"},
		Request{ID: "8", Action: ActionReset},
		Request{ID: "9", Action: "bogus"},
		Request{ID: "10", Action: ActionGuess},
	)
	var out bytes.Buffer
	require.NoError(t, newTestServer(t, in, &out).Start(context.Background()))

	dec := msgpack.NewDecoder(&out)

	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)

	var first GuessResponse
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "suggestion", first.Kind)
	assert.Equal(t, "a", first.Letter)
	assert.Equal(t, 4, first.Count)
	assert.Equal(t, []string{"cat", "car", "can", "dog"}, first.Candidates)
	assert.Equal(t, "a", first.Guessed)
	assert.False(t, first.Over)

	var mismatch ErrorResponse
	require.NoError(t, dec.Decode(&mismatch))
	assert.Equal(t, "2", mismatch.ID)
	assert.Equal(t, CodeBadRequest, mismatch.Code)
	assert.Contains(t, mismatch.Error, "length")

	var info InfoResponse
	require.NoError(t, dec.Decode(&info))
	assert.Equal(t, "ok", info.Status)
	assert.Equal(t, 4, info.Words)
	assert.Equal(t, 3, info.Length)
	assert.Equal(t, "a", info.Guessed)
	assert.Equal(t, 1, info.Turns)

	var second GuessResponse
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, "n", second.Letter)
	assert.False(t, second.Missed)

	var third GuessResponse
	require.NoError(t, dec.Decode(&third))
	assert.Equal(t, "r", third.Letter)
	assert.True(t, third.Missed)
	assert.Equal(t, 1, third.Misses)

	var solved GuessResponse
	require.NoError(t, dec.Decode(&solved))
	assert.Equal(t, "solved", solved.Kind)
	assert.Equal(t, "cat", solved.Word)
	assert.True(t, solved.Over)

	var over ErrorResponse
	require.NoError(t, dec.Decode(&over))
	assert.Equal(t, "7", over.ID)
	assert.Equal(t, CodeConflict, over.Code)

	var reset StatusResponse
	require.NoError(t, dec.Decode(&reset))
	assert.Equal(t, "8", reset.ID)
	assert.Equal(t, "ok", reset.Status)

	var unknown ErrorResponse
	require.NoError(t, dec.Decode(&unknown))
	assert.Equal(t, CodeBadRequest, unknown.Code)
	assert.Contains(t, unknown.Error, "bogus")

	var missing ErrorResponse
	require.NoError(t, dec.Decode(&missing))
	assert.Equal(t, "10", missing.ID)
	assert.Equal(t, CodeBadRequest, missing.Code)
}

func TestServerTerminalKinds(t *testing.T) {
	in := encodeRequests(t,
		Request{ID: "1", Pattern: "ca_"},
		Request{ID: "2", Pattern: "can"},
		Request{ID: "3", Action: ActionReset},
		Request{ID: "4", Pattern: "_______"},
	)
	var out bytes.Buffer
	require.NoError(t, newTestServer(t, in, &out).Start(context.Background()))

	dec := msgpack.NewDecoder(&out)
	var status StatusResponse
	require.NoError(t, dec.Decode(&status))

	var resp GuessResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "n", resp.Letter)

	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, KindRevealed, resp.Kind)
	assert.Equal(t, "can", resp.Word)
	assert.True(t, resp.Over)

	require.NoError(t, dec.Decode(&status))
	assert.Equal(t, "ok", status.Status)

	var exhausted GuessResponse
	require.NoError(t, dec.Decode(&exhausted))
	assert.Equal(t, "exhausted", exhausted.Kind)
	assert.True(t, exhausted.LikelyNotAWord)
}

func TestServerRejectsGarbage(t *testing.T) {
	in := bytes.NewBuffer([]byte{0xc1})
	var out bytes.Buffer

	err := newTestServer(t, in, &out).Start(context.Background())
	assert.Error(t, err)

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, CodeBadRequest, resp.Code)
}
