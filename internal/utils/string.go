package utils

import (
	"fmt"
	"strings"
)

// NormalizeLine trims surrounding whitespace and lowercases ASCII letters,
// leaving every other byte untouched for the pattern parser to judge.
func NormalizeLine(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsLowerASCII reports whether s is non-empty and made only of a-z.
func IsLowerASCII(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}
	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}

// FormatPercent renders part/total as a percentage with one decimal.
func FormatPercent(part, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)*100/float64(total))
}
