package railfence

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classic "github.com/BackendStack21/classic-cipher-go"
)

func TestEncryptTextbook(t *testing.T) {
	got, err := Encrypt("WEAREDISCOVEREDFLEEATONCE", 3)
	require.NoError(t, err)
	assert.Equal(t, "WECRLTEERDSOEEFEAOCAIVDEN", got)

	plain, err := Decrypt(got, 3)
	require.NoError(t, err)
	assert.Equal(t, "WEAREDISCOVEREDFLEEATONCE", plain)
}

func TestEncryptKnownDepths(t *testing.T) {
	tests := []struct {
		message string
		depth   int
		want    string
	}{
		{"HELLOWORLD", 2, "HLOOLELWRD"},
		{"HELLOWORLD", 4, "HOEWRLOLLD"},
		{"ABCDEFGH", 3, "AEBDFHCG"},
		{"ABC", 2, "ACB"},
	}
	for _, tt := range tests {
		got, err := Encrypt(tt.message, tt.depth)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Encrypt(%q, %d)", tt.message, tt.depth)

		back, err := Decrypt(got, tt.depth)
		require.NoError(t, err)
		assert.Equal(t, tt.message, back)
	}
}

func TestDepthOneIsIdentity(t *testing.T) {
	for _, m := range []string{"", "A", "HELLO WORLD", "ünïcödé ✓"} {
		enc, err := Encrypt(m, 1)
		require.NoError(t, err)
		assert.Equal(t, m, enc)

		dec, err := Decrypt(m, 1)
		require.NoError(t, err)
		assert.Equal(t, m, dec)
	}
}

func TestEmptyMessage(t *testing.T) {
	enc, err := Encrypt("", 5)
	require.NoError(t, err)
	assert.Equal(t, "", enc)

	dec, err := Decrypt("", 5)
	require.NoError(t, err)
	assert.Equal(t, "", dec)
}

func TestDepthAtLeastLength(t *testing.T) {
	for _, depth := range []int{5, 6, 1 << 30} {
		enc, err := Encrypt("HELLO", depth)
		require.NoError(t, err)
		assert.Equal(t, "HELLO", enc)

		dec, err := Decrypt(enc, depth)
		require.NoError(t, err)
		assert.Equal(t, "HELLO", dec)
	}
}

func TestInvalidDepth(t *testing.T) {
	for _, depth := range []int{0, -1, -100} {
		_, err := Encrypt("HELLO", depth)
		require.ErrorIs(t, err, ErrInvalidDepth)
		assert.ErrorIs(t, err, classic.ErrInvalidInput)

		_, err = Decrypt("HELLO", depth)
		require.ErrorIs(t, err, ErrInvalidDepth)

		_, err = Fence("HELLO", depth)
		require.ErrorIs(t, err, ErrInvalidDepth)
	}
}

func TestRoundTripAllDepths(t *testing.T) {
	message := "The quick brown fox jumps over the lazy dog, 1234567890!"
	for depth := 1; depth <= len(message)+2; depth++ {
		enc, err := Encrypt(message, depth)
		require.NoError(t, err)
		assert.Len(t, enc, len(message))

		dec, err := Decrypt(enc, depth)
		require.NoError(t, err)
		require.Equal(t, message, dec, "depth %d", depth)
	}
}

func TestUnicodeIsTransposedByRune(t *testing.T) {
	message := "日本語のテキスト"
	enc, err := Encrypt(message, 3)
	require.NoError(t, err)
	assert.Equal(t, len([]rune(message)), len([]rune(enc)))

	dec, err := Decrypt(enc, 3)
	require.NoError(t, err)
	assert.Equal(t, message, dec)
}

func TestInvalidUTF8IsRejected(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		depth int
	}{
		{"transposed", "AB\xffCD", 2},
		{"identity depth", "AB\xffCD", 1},
		{"depth beyond length", "AB\xffCD", 40},
		{"truncated rune", "caf\xc3", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := Encrypt(tt.text, tt.depth)
			require.ErrorIs(t, err, ErrInvalidUTF8)
			assert.ErrorIs(t, err, classic.ErrInvalidInput)
			assert.Empty(t, enc)

			dec, err := Decrypt(tt.text, tt.depth)
			require.ErrorIs(t, err, ErrInvalidUTF8)
			assert.Empty(t, dec)

			_, err = Fence(tt.text, tt.depth)
			require.ErrorIs(t, err, ErrInvalidUTF8)
		})
	}

	_, err := Encrypt("AB\xffCD", 2)
	assert.Contains(t, err.Error(), "offset 2")

	// A literal replacement character is valid text and survives the round trip.
	enc, err := Encrypt("AB\uFFFDCD", 2)
	require.NoError(t, err)
	dec, err := Decrypt(enc, 2)
	require.NoError(t, err)
	assert.Equal(t, "AB\uFFFDCD", dec)
}

func TestRail(t *testing.T) {
	// depth 3: 0 1 2 1 0 1 2 1 ...
	want := []int{0, 1, 2, 1, 0, 1, 2, 1, 0}
	for i, w := range want {
		assert.Equal(t, w, Rail(i, 3), "Rail(%d, 3)", i)
	}
	// depth 4: 0 1 2 3 2 1 0
	want = []int{0, 1, 2, 3, 2, 1, 0, 1}
	for i, w := range want {
		assert.Equal(t, w, Rail(i, 4), "Rail(%d, 4)", i)
	}
	assert.Equal(t, 0, Rail(7, 1))
}

func TestRailHugeDepth(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, Rail(i, math.MaxInt), "Rail(%d, MaxInt)", i)
		assert.Equal(t, i, Rail(i, math.MaxInt/2+1), "Rail(%d, MaxInt/2+1)", i)
	}

	lines, err := Fence("HELLOWORLD", math.MaxInt)
	require.NoError(t, err)
	require.Len(t, lines, 10)
	assert.Equal(t, "H.........", lines[0])
	assert.Equal(t, ".........D", lines[9])

	enc, err := Encrypt("HELLOWORLD", math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, "HELLOWORLD", enc)
}

func TestRailMatchesBouncingCursor(t *testing.T) {
	for depth := 2; depth <= 9; depth++ {
		row, dir := 0, 1
		for i := 0; i < 100; i++ {
			require.Equal(t, row, Rail(i, depth), "index %d depth %d", i, depth)
			row += dir
			if row == 0 || row == depth-1 {
				dir = -dir
			}
		}
	}
}

func TestRailCounts(t *testing.T) {
	for depth := 2; depth <= 7; depth++ {
		for n := depth + 1; n < 60; n++ {
			counts := railCounts(n, depth)
			want := make([]int, depth)
			for i := 0; i < n; i++ {
				want[Rail(i, depth)]++
			}
			require.Equal(t, want, counts, "n=%d depth=%d", n, depth)
		}
	}
}

func TestFence(t *testing.T) {
	lines, err := Fence("WEAREDISCOVERED", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"W...E...C...R..",
		".E.R.D.S.O.E.E.",
		"..A...I...V...D",
	}, lines)

	// reading the rails without gaps yields the ciphertext
	enc, err := Encrypt("WEAREDISCOVERED", 3)
	require.NoError(t, err)
	var joined strings.Builder
	for _, line := range lines {
		joined.WriteString(strings.ReplaceAll(line, string(Gap), ""))
	}
	assert.Equal(t, enc, joined.String())
}

func TestFenceEdgeCases(t *testing.T) {
	lines, err := Fence("", 3)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = Fence("ABC", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC"}, lines)

	lines, err = Fence("ABC", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"A..", ".B.", "..C"}, lines)
}
