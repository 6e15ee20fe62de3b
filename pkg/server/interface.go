/*
Package server implements msgpack IPC for driving a hangsolve session from another process.

The protocol uses binary msgpack encoding over stdin/stdout. Messages are
processed synchronously, one game at a time, with timing info included in
responses.

# IPC

Clients send a stream of msgpack maps. Each carries an ID and an action;
"guess" is assumed when only a pattern is present:

	{"id": "t1", "action": "guess", "p": "____"}

The server answers with the outcome kind and its payload:

	{"id": "t1", "k": "suggestion", "l": "e", "c": 653, "g": "e", "m": 0, "o": false, "t": 412}

When fewer candidates remain than the short list threshold they are sent as "cs".
Terminal kinds are "solved" (with "w"), "exhausted" (with "nw" when the word is
probably missing from the dictionary), "stuck", "revealed" and "hanged".

Session management:

	{"id": "r1", "action": "reset"}
	{"id": "i1", "action": "info"}

Validation failures (bad symbols, wrong length, letters that were never guessed)
come back as error messages and leave the session untouched, so the client can
send a corrected pattern.
*/
package server

// Actions understood by the server.
const (
	ActionGuess = "guess"
	ActionReset = "reset"
	ActionInfo  = "info"
)

// Kinds reported for games that end without a solver outcome.
const (
	KindRevealed = "revealed"
	KindHanged   = "hanged"
)

// Request is any client message.
type Request struct {
	ID      string `msgpack:"id"`
	Action  string `msgpack:"action,omitempty"`
	Pattern string `msgpack:"p,omitempty"`
}

// GuessResponse reports one session turn.
type GuessResponse struct {
	ID             string   `msgpack:"id"`
	Kind           string   `msgpack:"k"`
	Letter         string   `msgpack:"l,omitempty"`
	Word           string   `msgpack:"w,omitempty"`
	Count          int      `msgpack:"c"`
	Candidates     []string `msgpack:"cs,omitempty"`
	LikelyNotAWord bool     `msgpack:"nw,omitempty"`
	Guessed        string   `msgpack:"g"`
	Misses         int      `msgpack:"m"`
	Missed         bool     `msgpack:"x,omitempty"`
	Over           bool     `msgpack:"o"`
	TimeTaken      int64    `msgpack:"t"`
}

// InfoResponse describes the dictionary and the current session.
type InfoResponse struct {
	ID      string `msgpack:"id"`
	Status  string `msgpack:"status"`
	Words   int    `msgpack:"words"`
	Lengths int    `msgpack:"lengths"`
	Length  int    `msgpack:"length"`
	Guessed string `msgpack:"guessed"`
	Turns   int    `msgpack:"turns"`
	Misses  int    `msgpack:"misses"`
	Over    bool   `msgpack:"over"`
}

// StatusResponse acknowledges a request with no payload.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
