package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/hangsolve/internal/logger"
	"github.com/bastiangx/hangsolve/pkg/session"
	"github.com/bastiangx/hangsolve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Error codes sent in ErrorResponse.
const (
	CodeBadRequest = 400
	CodeConflict   = 409
	CodeInternal   = 500
)

// Server handles the IPC for one solver session.
type Server struct {
	solver       suggest.ISolver
	session      *session.Session
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server reading requests from r and writing responses to w.
func NewServer(solver suggest.ISolver, sess *session.Session, r io.Reader, w io.Writer) *Server {
	bw := bufio.NewWriter(w)
	return &Server{
		solver:  solver,
		session: sess,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  bw,
		encoder: msgpack.NewEncoder(bw),
		logger:  logger.New("ipc"),
	}
}

// Start sends a ready message, then serves requests until EOF or ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Debug("Starting Server.")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client closed input", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			_ = s.sendError("", "invalid msgpack request", CodeBadRequest)
			return fmt.Errorf("decode request: %w", err)
		}

		if err := s.handleRequest(ctx, req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on the action. Only write failures are returned.
func (s *Server) handleRequest(ctx context.Context, req Request) error {
	s.requestCount++

	action := req.Action
	if action == "" && req.Pattern != "" {
		action = ActionGuess
	}

	switch action {
	case ActionGuess:
		return s.handleGuess(ctx, req)
	case ActionReset:
		s.session.Reset()
		s.logger.Debug("Session reset", "id", req.ID)
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	case ActionInfo:
		return s.send(s.info(req.ID))
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %q", req.Action), CodeBadRequest)
	}
}

func (s *Server) handleGuess(ctx context.Context, req Request) error {
	if req.Pattern == "" {
		s.logger.Debug("Pattern is empty in request", "id", req.ID)
		return s.sendError(req.ID, "missing 'p' parameter", CodeBadRequest)
	}

	start := time.Now()
	res, err := s.session.Submit(ctx, req.Pattern)
	elapsed := time.Since(start)
	if err != nil {
		s.logger.Debug("Rejected pattern", "id", req.ID, "pattern", req.Pattern, "err", err)
		return s.sendError(req.ID, err.Error(), errorCode(err))
	}

	resp := GuessResponse{
		ID:        req.ID,
		Guessed:   s.session.Guessed().String(),
		Misses:    s.session.Misses(),
		Missed:    res.Missed,
		Over:      res.Over,
		TimeTaken: elapsed.Microseconds(),
	}
	switch {
	case res.Revealed:
		resp.Kind = KindRevealed
		resp.Word = string(res.Pattern)
	case res.Hanged:
		resp.Kind = KindHanged
	default:
		fillOutcome(&resp, res.Outcome)
	}
	s.logger.Debugf("Took [ %v ] for pattern '%s' -> %s", elapsed, req.Pattern, resp.Kind)
	return s.send(resp)
}

// fillOutcome copies the solver outcome payload into resp.
func fillOutcome(resp *GuessResponse, out suggest.Outcome) {
	resp.Kind = out.Kind().String()
	switch o := out.(type) {
	case suggest.Suggestion:
		resp.Letter = string(o.Letter)
		resp.Count = o.Count
		resp.Candidates = o.Candidates
	case suggest.Solved:
		resp.Word = o.Word
		resp.Count = 1
	case suggest.Exhausted:
		resp.LikelyNotAWord = o.LikelyNotAWord
	case suggest.Stuck:
		resp.Count = o.Count
	}
}

func (s *Server) info(id string) InfoResponse {
	stats := s.solver.Stats()
	return InfoResponse{
		ID:      id,
		Status:  "ok",
		Words:   stats["totalWords"],
		Lengths: stats["lengths"],
		Length:  s.session.Length(),
		Guessed: s.session.Guessed().String(),
		Turns:   s.session.Turns(),
		Misses:  s.session.Misses(),
		Over:    s.session.Over(),
	}
}

// errorCode maps session and pattern errors to response codes.
func errorCode(err error) int {
	switch {
	case errors.Is(err, suggest.ErrInvalidPattern),
		errors.Is(err, session.ErrLengthMismatch),
		errors.Is(err, session.ErrUnknownLetters):
		return CodeBadRequest
	case errors.Is(err, session.ErrSessionOver):
		return CodeConflict
	default:
		return CodeInternal
	}
}

// send encodes one response and flushes it so the client sees it immediately.
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	return s.writer.Flush()
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
