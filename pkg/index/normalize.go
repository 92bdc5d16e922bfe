package index

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the lookup key of a name: surrounding spaces are
// trimmed, the string is composed to NFC and case-folded. Lookups by
// name are case-insensitive because both sides pass through Normalize.
func Normalize(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	// Casers keep state, a new one is created per call.
	return cases.Fold().String(s)
}
