package cli

import (
	"fmt"
	"strings"

	"github.com/bastiangx/hangsolve/internal/utils"
	"github.com/bastiangx/hangsolve/pkg/session"
	"github.com/bastiangx/hangsolve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
)

// Renderer turns session results into the lines shown to the player.
type Renderer struct {
	color          bool
	showCandidates bool
	letter         lipgloss.Style
	word           lipgloss.Style
	muted          lipgloss.Style
	loss           lipgloss.Style
}

// NewRenderer creates a Renderer. With color off the output is plain text.
func NewRenderer(color, showCandidates bool) *Renderer {
	return &Renderer{
		color:          color,
		showCandidates: showCandidates,
		letter: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		word: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#56949f", Dark: "#31748f"}),
		muted: lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"}),
		loss: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Lines renders one accepted turn.
func (r *Renderer) Lines(res session.Result, misses int) []string {
	var lines []string
	if res.Missed {
		lines = append(lines, r.style(r.muted, fmt.Sprintf("Noted, that was a miss (%d so far).", misses)))
	}

	switch {
	case res.Revealed:
		return append(lines, "I win!")
	case res.Hanged:
		return append(lines, r.style(r.loss, fmt.Sprintf("Out of guesses after %d misses. You win this one.", misses)))
	}

	switch o := res.Outcome.(type) {
	case suggest.Suggestion:
		if r.showCandidates && len(o.Candidates) > 0 {
			words := make([]string, len(o.Candidates))
			for i, w := range o.Candidates {
				words[i] = r.style(r.word, w)
			}
			lines = append(lines, fmt.Sprintf("I think your word might be one of [%s]", strings.Join(words, ", ")))
		} else {
			lines = append(lines, r.style(r.muted, fmt.Sprintf("%s words are under consideration...", utils.FormatWithCommas(o.Count))))
		}
		lines = append(lines, fmt.Sprintf("I think %s is the best letter.", r.style(r.letter, "'"+string(o.Letter)+"'")))
	case suggest.Solved:
		lines = append(lines, fmt.Sprintf("Your word is %s!", r.style(r.word, o.Word)))
	case suggest.Exhausted:
		lines = append(lines, r.style(r.loss, "I admit defeat! I don't know any more words to ask you about."))
		if o.LikelyNotAWord {
			lines = append(lines, r.style(r.muted, "Is that even a word? It's pretty long..."))
		}
	case suggest.Stuck:
		lines = append(lines, r.style(r.loss, fmt.Sprintf("I admit defeat! %s words are left and no letter can tell them apart.", utils.FormatWithCommas(o.Count))))
	}
	return lines
}
