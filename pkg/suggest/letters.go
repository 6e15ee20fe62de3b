package suggest

import "strings"

// Alphabet is every letter a pattern or word may contain, in scoring order.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Letters is a set of lowercase ASCII letters, one bit per letter.
// The zero value is the empty set.
type Letters uint32

// LettersOf returns the set of letters in s. Bytes outside a-z are ignored.
func LettersOf(s string) Letters {
	var l Letters
	for i := 0; i < len(s); i++ {
		l = l.Add(s[i])
	}
	return l
}

// Has reports whether c is in the set.
func (l Letters) Has(c byte) bool {
	if c < 'a' || c > 'z' {
		return false
	}
	return l&(1<<(c-'a')) != 0
}

// Add returns the set with c added.
func (l Letters) Add(c byte) Letters {
	if c < 'a' || c > 'z' {
		return l
	}
	return l | 1<<(c-'a')
}

// Union returns every letter in either set.
func (l Letters) Union(o Letters) Letters {
	return l | o
}

// Minus returns the letters of l that are not in o.
func (l Letters) Minus(o Letters) Letters {
	return l &^ o
}

// Empty reports whether no letter is set.
func (l Letters) Empty() bool {
	return l == 0
}

// Len returns the number of letters in the set.
func (l Letters) Len() int {
	n := 0
	for v := l; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Bytes returns the letters in alphabetical order.
func (l Letters) Bytes() []byte {
	out := make([]byte, 0, l.Len())
	for i := 0; i < len(Alphabet); i++ {
		if l.Has(Alphabet[i]) {
			out = append(out, Alphabet[i])
		}
	}
	return out
}

// String returns the letters in alphabetical order, e.g. "aet".
func (l Letters) String() string {
	return string(l.Bytes())
}

// Format renders the set for humans as "a, e, t".
func (l Letters) Format() string {
	parts := make([]string, 0, l.Len())
	for _, c := range l.Bytes() {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ", ")
}
