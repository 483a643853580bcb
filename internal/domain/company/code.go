package company

import (
	"strconv"
	"strings"
	"unicode"
)

const baseCodeLength = 6

// BaseCode derives the short company code from the name: alphanumerics only,
// uppercased, truncated. "COMP" when the name has no usable characters.
func BaseCode(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
		if b.Len() >= baseCodeLength {
			break
		}
	}
	if b.Len() == 0 {
		return "COMP"
	}
	return b.String()
}

// CodeCandidate returns the nth candidate for a base code. Candidate 0 is the
// base itself; collisions get a numeric suffix.
func CodeCandidate(base string, n int) string {
	if n == 0 {
		return base
	}
	return base + strconv.Itoa(n)
}
