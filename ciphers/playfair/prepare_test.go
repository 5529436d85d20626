package playfair

import (
	"testing"

	"github.com/stretchr/testify/assert"

	classic "github.com/BackendStack21/classic-cipher-go"
)

func TestPrepare(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"!!! 123", ""},
		{"INSTRUMENTS", "INSTRUMENTSX"},
		{"instruments", "INSTRUMENTSX"},
		{"Hide the gold in the tree stump", "HIDETHEGOLDINTHETREXESTUMP"},
		{"balloon", "BALXLOON"},
		{"AA", "AXAX"},
		{"AAAA", "AXAXAXAX"},
		{"A", "AX"},
		{"jam", "IAMX"},
		{"XX", "XQXQ"},
		{"X", "XQ"},
		{"AX", "AX"},
		{"EXXXE", "EXXQXE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Prepare(tt.in), "Prepare(%q)", tt.in)
	}
}

func TestPrepareInvariants(t *testing.T) {
	inputs := []string{
		"", "A", "AAAA", "XXXXX", "BOOKKEEPER", "Mississippi", "jjjj iiii",
		"The quick brown fox jumps over the lazy dog",
		"ZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ",
	}
	for _, in := range inputs {
		out := Prepare(in)
		assert.Zero(t, len(out)%2, "Prepare(%q) has odd length", in)
		for _, d := range Digraphs(out) {
			assert.NotEqual(t, d.A, d.B, "Prepare(%q) produced doubled digraph %s", in, d)
		}
		assert.NotContains(t, out, "J")
	}
}

func TestDigraphs(t *testing.T) {
	assert.Empty(t, Digraphs(""))
	assert.Equal(t, []classic.Digraph{{A: 'I', B: 'N'}, {A: 'S', B: 'T'}}, Digraphs("INST"))
	assert.Equal(t, []classic.Digraph{{A: 'A', B: 'B'}, {A: 'C', B: 'X'}}, Digraphs("ABC"))
	assert.Equal(t, []classic.Digraph{{A: 'X', B: 'Q'}}, Digraphs("X"))
}
