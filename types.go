package classic

import "errors"

const (
	// Size is the side length of the Playfair key square.
	Size = 5

	// Cells is the number of letters held by the key square.
	Cells = Size * Size

	// Alphabet is the key square alphabet: A-Z with J merged into I.
	Alphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

	// Filler breaks doubled letters and pads odd-length text.
	Filler byte = 'X'

	// AltFiller replaces Filler when the letter being padded is itself Filler.
	AltFiller byte = 'Q'

	// MergedLetter is folded into MergedInto before any lookup.
	MergedLetter byte = 'J'

	// MergedInto is the letter that stands for both I and J.
	MergedInto byte = 'I'
)

// ErrInvalidInput is wrapped by every input validation failure in this module.
// Callers can test for it with errors.Is regardless of which cipher failed.
var ErrInvalidInput = errors.New("invalid input")

// =============================================================================
// Playfair Types
// =============================================================================

// Position is the (row, column) coordinate of a letter in the key square.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Digraph is an ordered pair of letters transformed together by Playfair.
type Digraph struct {
	A, B byte
}

// String returns the two letters of the digraph.
func (d Digraph) String() string {
	return string([]byte{d.A, d.B})
}

// Rule identifies which geometric case of the key square transformed a digraph.
type Rule string

const (
	// RuleRow applies when both letters share a row: shift along the row.
	RuleRow Rule = "row"
	// RuleColumn applies when both letters share a column: shift along the column.
	RuleColumn Rule = "column"
	// RuleRectangle applies otherwise: each letter takes the other's column.
	RuleRectangle Rule = "rectangle"
)

// Step records one digraph transformation.
type Step struct {
	In   string   `json:"in" yaml:"in"`
	Out  string   `json:"out" yaml:"out"`
	Rule Rule     `json:"rule" yaml:"rule"`
	PosA Position `json:"pos_a" yaml:"pos_a"`
	PosB Position `json:"pos_b" yaml:"pos_b"`
}
