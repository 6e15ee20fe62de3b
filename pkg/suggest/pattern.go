package suggest

import (
	"errors"
	"fmt"
	"strings"
)

// Blank marks an unrevealed position in a Pattern.
const Blank = '_'

// ErrInvalidPattern is returned for empty patterns or symbols outside a-z and Blank.
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern is the revealed state of the word being guessed, e.g. "c_t".
type Pattern string

// ParsePattern validates s as a Pattern.
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPattern)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != Blank && (c < 'a' || c > 'z') {
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidPattern, c, i+1)
		}
	}
	return Pattern(s), nil
}

// BlankPattern returns a fully hidden pattern of length n.
func BlankPattern(n int) Pattern {
	return Pattern(strings.Repeat(string(Blank), n))
}

// Mask reveals the letters of word that are in guessed and blanks the rest.
func Mask(word string, guessed Letters) Pattern {
	b := []byte(word)
	for i := range b {
		if !guessed.Has(b[i]) {
			b[i] = Blank
		}
	}
	return Pattern(b)
}

// Len returns the number of positions.
func (p Pattern) Len() int {
	return len(p)
}

// Blanks returns the number of unrevealed positions.
func (p Pattern) Blanks() int {
	return strings.Count(string(p), string(Blank))
}

// Complete reports whether every position is revealed.
func (p Pattern) Complete() bool {
	return p.Blanks() == 0
}

// Revealed returns the set of letters visible in the pattern.
func (p Pattern) Revealed() Letters {
	return LettersOf(string(p))
}

// Prefix returns the revealed letters before the first blank.
func (p Pattern) Prefix() string {
	if i := strings.IndexByte(string(p), Blank); i >= 0 {
		return string(p[:i])
	}
	return string(p)
}

// Matches reports whether word is consistent with p given the guessed letters:
// revealed positions must be equal, and a blank can only hide a letter that
// has not been guessed yet.
func (p Pattern) Matches(word string, guessed Letters) bool {
	if len(word) != len(p) {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] == Blank {
			if guessed.Has(word[i]) {
				return false
			}
			continue
		}
		if p[i] != word[i] {
			return false
		}
	}
	return true
}

// Display renders the pattern spaced out for terminals, e.g. "c _ t".
func (p Pattern) Display() string {
	parts := make([]string, len(p))
	for i := 0; i < len(p); i++ {
		parts[i] = string(p[i])
	}
	return strings.Join(parts, " ")
}
