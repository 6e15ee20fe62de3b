// Package cli handles cmd line input for playing a session against the solver
package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/bastiangx/hangsolve/internal/logger"
	"github.com/bastiangx/hangsolve/internal/utils"
	"github.com/bastiangx/hangsolve/pkg/session"
	"github.com/charmbracelet/log"
)

// InputHandler reads patterns line by line, feeds them to the session and
// prints the solver's answers. Rejected patterns are reported and the
// prompt repeats.
type InputHandler struct {
	session  *session.Session
	reader   *bufio.Reader
	out      *log.Logger
	renderer *Renderer
	lines    int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(sess *session.Session, in io.Reader, out io.Writer, renderer *Renderer) *InputHandler {
	l := logger.NewWithWriter(out, "")
	l.SetReportTimestamp(false)
	if log.GetLevel() > log.InfoLevel {
		l.SetLevel(log.InfoLevel)
	}
	return &InputHandler{
		session:  sess,
		reader:   bufio.NewReader(in),
		out:      l,
		renderer: renderer,
	}
}

// Start runs the game loop until the session ends or input runs out.
func (h *InputHandler) Start(ctx context.Context) error {
	h.out.Print("hangsolve CLI")
	h.out.Print("type the word with _ for unknown letters, e.g. ____ or c_t (Ctrl+C to exit)")

	for !h.session.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}
		h.out.Print("Type your word: ")
		line, err := h.reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				log.Debug("Input closed", "lines", h.lines)
				return nil
			}
			return err
		}
		line = utils.NormalizeLine(line)
		if line == "" {
			continue
		}
		h.handleInput(ctx, line)
	}
	return nil
}

// handleInput submits one pattern and prints the result.
func (h *InputHandler) handleInput(ctx context.Context, line string) {
	h.lines++
	start := time.Now()
	res, err := h.session.Submit(ctx, line)
	log.Debugf("Took [ %v ] for pattern '%s'", time.Since(start), line)

	if err != nil {
		var msg string
		switch {
		case errors.Is(err, session.ErrLengthMismatch):
			msg = "This word isn't the same length..."
		case errors.Is(err, session.ErrUnknownLetters):
			msg = "This word contains characters we haven't guessed yet, try putting it in again."
		default:
			msg = "Couldn't read that pattern"
		}
		h.out.Error(msg, "err", err)
		return
	}

	for _, text := range h.renderer.Lines(res, h.session.Misses()) {
		h.out.Print(text)
	}
	if !res.Over {
		h.out.Print("", "guessed", h.session.Guessed().Format())
	}
}
