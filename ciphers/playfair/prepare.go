package playfair

import (
	"strings"

	classic "github.com/BackendStack21/classic-cipher-go"
	"github.com/BackendStack21/classic-cipher-go/core"
)

// Prepare turns raw text into Playfair digraph form.
//
// The text is normalized (uppercase, J folded into I, non-letters dropped) and read
// two letters at a time. A doubled letter, or a letter left without a partner at
// the end, is paired with the filler X instead and the scan advances by one. X
// itself is paired with Q so that no digraph ever repeats a letter.
//
//	Prepare("instruments") == "INSTRUMENTSX"
//	Prepare("balloon")     == "BALXLOON"
//	Prepare("AAAA")        == "AXAXAXAX"
//
// The result always has even length; an input without letters yields "".
func Prepare(text string) string {
	letters := core.Normalize(text)

	var b strings.Builder
	b.Grow(len(letters) + len(letters)/2 + 1)
	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 == len(letters) || letters[i+1] == a {
			b.WriteByte(a)
			b.WriteByte(fillerFor(a))
			i++
			continue
		}
		b.WriteByte(a)
		b.WriteByte(letters[i+1])
		i += 2
	}
	// Pairs are always emitted whole; this only guards the even-length invariant.
	if b.Len()%2 != 0 {
		b.WriteByte(classic.Filler)
	}
	return b.String()
}

// Digraphs splits prepared text into letter pairs.
// A trailing unpaired letter is completed with a filler, as Prepare would.
func Digraphs(prepared string) []classic.Digraph {
	out := make([]classic.Digraph, 0, (len(prepared)+1)/2)
	for i := 0; i < len(prepared); i += 2 {
		d := classic.Digraph{A: prepared[i]}
		if i+1 < len(prepared) {
			d.B = prepared[i+1]
		} else {
			d.B = fillerFor(d.A)
		}
		out = append(out, d)
	}
	return out
}

func fillerFor(letter byte) byte {
	if letter == classic.Filler {
		return classic.AltFiller
	}
	return classic.Filler
}
