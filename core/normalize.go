package core

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	classic "github.com/BackendStack21/classic-cipher-go"
)

// FoldLetter maps r onto the 25-letter key square alphabet.
// Lowercase letters are uppercased and J becomes I. Any rune outside A-Z/a-z
// reports false.
func FoldLetter(r rune) (byte, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		r -= 'a' - 'A'
	case r >= 'A' && r <= 'Z':
	default:
		return 0, false
	}
	if byte(r) == classic.MergedLetter {
		return classic.MergedInto, true
	}
	return byte(r), true
}

// Normalize reduces s to the letters the key square can hold.
// Accents are stripped first ("Élan" becomes "ELAN"); letters are then uppercased
// with J folded into I, and everything else is dropped.
func Normalize(s string) string {
	// The chain carries decoder state, so it is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if c, ok := FoldLetter(r); ok {
			b.WriteByte(c)
		}
	}
	return b.String()
}
