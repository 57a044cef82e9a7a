// core/oligo/validate.go
package oligo

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidSequence reports input outside the A/C/G/T alphabet.
// Callers distinguish it from other failures with errors.Is.
var ErrInvalidSequence = errors.New("invalid nucleotide sequence")

// Normalize strips whitespace and quotes and uppercases bases.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate returns a normalized sequence or ErrInvalidSequence if any
// character is not A, C, G, or T. Empty input is rejected.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	for i, r := range s {
		if !strings.ContainsRune("ACGT", r) {
			return "", fmt.Errorf("%w: base %q at %d (allowed: A C G T)", ErrInvalidSequence, r, i+1)
		}
	}
	return s, nil
}
