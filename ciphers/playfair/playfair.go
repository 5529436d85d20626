package playfair

import (
	"fmt"
	"strings"

	classic "github.com/BackendStack21/classic-cipher-go"
)

var (
	// ErrOddLength is returned when a ciphertext cannot be split into digraphs.
	ErrOddLength = fmt.Errorf("%w: playfair ciphertext length must be even", classic.ErrInvalidInput)

	// ErrInvalidLetter is returned when a ciphertext holds a character the key square
	// does not contain: J, lowercase letters, digits, spaces or punctuation.
	ErrInvalidLetter = fmt.Errorf("%w: playfair ciphertext letter outside the key square", classic.ErrInvalidInput)
)

const (
	encryptShift = 1
	decryptShift = classic.Size - 1 // one step back, kept non-negative for modulo
)

// EncryptDigraph substitutes one digraph.
//   - same row: each letter is replaced by its right neighbour, wrapping around
//   - same column: each letter is replaced by the letter below, wrapping around
//   - otherwise: each letter keeps its row and takes the other letter's column
func EncryptDigraph(m *Matrix, d classic.Digraph) (classic.Digraph, classic.Rule) {
	step := m.substitute(d, encryptShift)
	return step.out, step.rule
}

// DecryptDigraph inverts EncryptDigraph: left and up shifts, and the rectangle
// swap, which is its own inverse.
func DecryptDigraph(m *Matrix, d classic.Digraph) (classic.Digraph, classic.Rule) {
	step := m.substitute(d, decryptShift)
	return step.out, step.rule
}

// Encrypt prepares message into digraphs and encrypts them with the square derived
// from key. A message without letters encrypts to "".
func Encrypt(message, key string) string {
	out, _ := transform(BuildMatrix(key), Prepare(message), encryptShift, false)
	return out
}

// Decrypt decrypts a Playfair ciphertext with the square derived from key.
// The ciphertext is not prepared: it must consist of an even number of key square
// letters (uppercase A-Z without J). Anything else fails with ErrInvalidLetter or
// ErrOddLength before any letter is transformed.
func Decrypt(ciphertext, key string) (string, error) {
	if err := ValidateCiphertext(ciphertext); err != nil {
		return "", err
	}
	out, _ := transform(BuildMatrix(key), ciphertext, decryptShift, false)
	return out, nil
}

// ValidateCiphertext checks that text can be decrypted.
func ValidateCiphertext(text string) error {
	for i, r := range text {
		if r > 'Z' || r < 'A' || byte(r) == classic.MergedLetter {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidLetter, r, i)
		}
	}
	if len(text)%2 != 0 {
		return fmt.Errorf("%w: got %d letters", ErrOddLength, len(text))
	}
	return nil
}

// Trace encrypts message like Encrypt and returns every digraph step.
func Trace(message, key string) []classic.Step {
	_, steps := transform(BuildMatrix(key), Prepare(message), encryptShift, true)
	return steps
}

// TraceDecrypt decrypts ciphertext like Decrypt and returns every digraph step.
func TraceDecrypt(ciphertext, key string) ([]classic.Step, error) {
	if err := ValidateCiphertext(ciphertext); err != nil {
		return nil, err
	}
	_, steps := transform(BuildMatrix(key), ciphertext, decryptShift, true)
	return steps, nil
}

// transform applies the digraph substitution to every pair of text.
// text must have even length and hold only square letters.
func transform(m *Matrix, text string, shift int, trace bool) (string, []classic.Step) {
	var b strings.Builder
	b.Grow(len(text))
	var steps []classic.Step
	if trace {
		steps = make([]classic.Step, 0, len(text)/2)
	}

	for i := 0; i+1 < len(text); i += 2 {
		in := classic.Digraph{A: text[i], B: text[i+1]}
		s := m.substitute(in, shift)
		b.WriteByte(s.out.A)
		b.WriteByte(s.out.B)
		if trace {
			steps = append(steps, classic.Step{
				In:   in.String(),
				Out:  s.out.String(),
				Rule: s.rule,
				PosA: s.posA,
				PosB: s.posB,
			})
		}
	}
	return b.String(), steps
}

type substitution struct {
	out        classic.Digraph
	rule       classic.Rule
	posA, posB classic.Position
}

func (m *Matrix) substitute(d classic.Digraph, shift int) substitution {
	pa, pb := m.Position(d.A), m.Position(d.B)
	s := substitution{posA: pa, posB: pb}

	switch {
	case pa.Row == pb.Row:
		s.rule = classic.RuleRow
		s.out = classic.Digraph{
			A: m.At(pa.Row, wrap(pa.Col+shift)),
			B: m.At(pb.Row, wrap(pb.Col+shift)),
		}
	case pa.Col == pb.Col:
		s.rule = classic.RuleColumn
		s.out = classic.Digraph{
			A: m.At(wrap(pa.Row+shift), pa.Col),
			B: m.At(wrap(pb.Row+shift), pb.Col),
		}
	default:
		s.rule = classic.RuleRectangle
		s.out = classic.Digraph{
			A: m.At(pa.Row, pb.Col),
			B: m.At(pb.Row, pa.Col),
		}
	}
	return s
}

func wrap(i int) int {
	return i % classic.Size
}
