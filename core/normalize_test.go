package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"hello world", "HELLOWORLD"},
		{"Jump, JOLLY jester!", "IUMPIOLLYIESTER"},
		{"Playfair Example 1854", "PLAYFAIREXAMPLE"},
		{"Café crème brûlée", "CAFECREMEBRULEE"},
		{"Ångström", "ANGSTROM"},
		{"123 !@# ---", ""},
		{"日本語 abc", "ABC"},
		{"\tTab\nNewline", "TABNEWLINE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeNeverEmitsJ(t *testing.T) {
	assert.NotContains(t, Normalize("jJjJ ĵ Ĵ"), "J")
	assert.Equal(t, "IIIIII", Normalize("jJjJ ĵ Ĵ"))
}

func TestFoldLetter(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		c, ok := FoldLetter(r)
		assert.True(t, ok)
		if r == 'j' {
			assert.Equal(t, byte('I'), c)
			continue
		}
		assert.Equal(t, byte(r-'a'+'A'), c)
	}

	c, ok := FoldLetter('J')
	assert.True(t, ok)
	assert.Equal(t, byte('I'), c)

	for _, r := range []rune{' ', '0', '@', '[', '`', '{', 'é', 'ß', 'Ω'} {
		_, ok := FoldLetter(r)
		assert.False(t, ok, "FoldLetter(%q)", r)
	}
}
