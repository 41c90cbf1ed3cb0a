package model

import "strings"

// Ternary is a three-valued judgment: expressible, inexpressible or uncertain.
// The zero value is Uncertain so that an unresolved verdict never reads as a yes or no.
type Ternary int

const (
	Uncertain     Ternary = iota // "?" - conflicting or questionable evidence
	Inexpressible                // "0" - the form cannot express the context
	Expressible                  // "1" - the form can express the context
)

// String returns the canonical table token for the value
func (t Ternary) String() string {
	switch t {
	case Expressible:
		return "1"
	case Inexpressible:
		return "0"
	default:
		return "?"
	}
}

// ParseTernary parses a canonical token ("1", "0", "?").
// The second return value is false for anything else.
func ParseTernary(s string) (Ternary, bool) {
	switch strings.TrimSpace(s) {
	case "1":
		return Expressible, true
	case "0":
		return Inexpressible, true
	case "?":
		return Uncertain, true
	default:
		return Uncertain, false
	}
}
