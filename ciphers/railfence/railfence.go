// Package railfence implements the Rail Fence transposition cipher.
//
// The plaintext is written along a zigzag that bounces between rail 0 and rail
// depth-1, then read off rail by rail. The rail of every character depends only on
// its index and the depth, so decryption recomputes the same assignment without any
// stored metadata.
package railfence

import (
	"fmt"
	"unicode/utf8"

	classic "github.com/BackendStack21/classic-cipher-go"
)

// ErrInvalidDepth is returned for a rail depth below 1.
var ErrInvalidDepth = fmt.Errorf("%w: rail depth must be at least 1", classic.ErrInvalidInput)

// ErrInvalidUTF8 is returned for text that is not valid UTF-8. The cipher moves
// whole runes, so a malformed byte sequence has no position on the fence.
var ErrInvalidUTF8 = fmt.Errorf("%w: rail fence text must be valid UTF-8", classic.ErrInvalidInput)

// ValidateDepth reports whether depth can drive the cipher.
// Depth 1 is valid and means no transposition; depth 0 and negative depths are not.
func ValidateDepth(depth int) error {
	if depth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	return nil
}

// Rail returns the rail that character index i lands on.
// The assignment is a triangle wave with period 2*(depth-1).
func Rail(i, depth int) int {
	if depth <= 1 {
		return 0
	}
	// The first descent covers indices below depth; this also keeps the period
	// from overflowing for very large depths.
	if i < depth {
		return i
	}
	period := 2 * (depth - 1)
	r := i % period
	if r < depth {
		return r
	}
	return period - r
}

// Encrypt writes message along the zigzag and reads it back rail by rail.
// The message is transposed rune by rune; it must be valid UTF-8.
func Encrypt(message string, depth int) (string, error) {
	if err := validate(message, depth); err != nil {
		return "", err
	}
	text := []rune(message)
	if isIdentity(len(text), depth) {
		return message, nil
	}

	next := railStarts(len(text), depth)
	out := make([]rune, len(text))
	for i, r := range text {
		rail := Rail(i, depth)
		out[next[rail]] = r
		next[rail]++
	}
	return string(out), nil
}

// Decrypt restores the original order of a Rail Fence ciphertext.
// The ciphertext splits into contiguous runs, one per rail, sized by rail occupancy.
// A single pass over the original indices then takes the next character from the
// run of the rail each index belongs to.
func Decrypt(ciphertext string, depth int) (string, error) {
	if err := validate(ciphertext, depth); err != nil {
		return "", err
	}
	text := []rune(ciphertext)
	if isIdentity(len(text), depth) {
		return ciphertext, nil
	}

	next := railStarts(len(text), depth)
	out := make([]rune, len(text))
	for i := range out {
		rail := Rail(i, depth)
		out[i] = text[next[rail]]
		next[rail]++
	}
	return string(out), nil
}

func validate(text string, depth int) error {
	if err := ValidateDepth(depth); err != nil {
		return err
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: invalid byte at offset %d", ErrInvalidUTF8, invalidOffset(text))
	}
	return nil
}

// invalidOffset returns the byte offset of the first malformed sequence in text.
func invalidOffset(text string) int {
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
				return i
			}
		}
	}
	return len(text)
}

// isIdentity reports whether the transposition leaves the text unchanged.
// With depth >= n every character sits alone on its own rail, in order.
func isIdentity(n, depth int) bool {
	return depth == 1 || depth >= n
}

// railCounts returns how many of n characters land on each rail.
// Rails 0 and depth-1 are visited once per period, the inner rails twice.
// Callers guarantee 2 <= depth < n.
func railCounts(n, depth int) []int {
	period := 2 * (depth - 1)
	cycles, rem := n/period, n%period

	counts := make([]int, depth)
	for rail := range counts {
		if rail == 0 || rail == depth-1 {
			counts[rail] = cycles
		} else {
			counts[rail] = 2 * cycles
		}
	}
	for i := 0; i < rem; i++ {
		counts[Rail(i, depth)]++
	}
	return counts
}

// railStarts returns the ciphertext offset at which each rail's run begins.
func railStarts(n, depth int) []int {
	starts := railCounts(n, depth)
	offset := 0
	for rail, count := range starts {
		starts[rail] = offset
		offset += count
	}
	return starts
}
