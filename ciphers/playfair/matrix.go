// Package playfair implements the Playfair digraph substitution cipher.
package playfair

import (
	"encoding/hex"
	"fmt"
	"strings"

	classic "github.com/BackendStack21/classic-cipher-go"
	"github.com/BackendStack21/classic-cipher-go/core"
	"github.com/BackendStack21/classic-cipher-go/utils"
)

const (
	// DomainFingerprint separates key check hashes from any other use of the hash.
	DomainFingerprint = "classic-playfair-square-v1"

	// FingerprintSize is the number of hash bytes shown as the key check value.
	FingerprintSize = 4
)

// Matrix is the 5x5 Playfair key square.
// It is immutable once built and safe to share between goroutines.
type Matrix struct {
	grid [classic.Size][classic.Size]byte
	// cell holds 1 + the row-major cell index of each letter, 0 when absent (J).
	cell [26]uint8
}

// BuildMatrix derives the key square for key.
// The normalized key is followed by the alphabet and each letter is kept on its
// first occurrence only, so any key, including an empty one, yields all 25 letters.
func BuildMatrix(key string) *Matrix {
	m := &Matrix{}
	n := 0
	for _, seq := range [...]string{core.Normalize(key), classic.Alphabet} {
		for i := 0; i < len(seq) && n < classic.Cells; i++ {
			c := seq[i]
			if m.cell[c-'A'] != 0 {
				continue
			}
			m.grid[n/classic.Size][n%classic.Size] = c
			n++
			m.cell[c-'A'] = uint8(n)
		}
	}
	return m
}

// At returns the letter at row, col. Both must lie in [0, 5).
func (m *Matrix) At(row, col int) byte {
	return m.grid[row][col]
}

// Rows returns a copy of the grid.
func (m *Matrix) Rows() [classic.Size][classic.Size]byte {
	return m.grid
}

// Locate returns the position of letter in the square.
// It reports false for J and for anything outside A-Z.
func (m *Matrix) Locate(letter byte) (classic.Position, bool) {
	if letter < 'A' || letter > 'Z' {
		return classic.Position{}, false
	}
	idx := m.cell[letter-'A']
	if idx == 0 {
		return classic.Position{}, false
	}
	idx--
	return classic.Position{Row: int(idx) / classic.Size, Col: int(idx) % classic.Size}, true
}

// Position returns the position of letter and panics if the square lacks it.
// Callers normalize or validate text first, so a miss is a bug, not bad input.
func (m *Matrix) Position(letter byte) classic.Position {
	pos, ok := m.Locate(letter)
	if !ok {
		panic(fmt.Sprintf("playfair: letter %q is not in the key square", letter))
	}
	return pos
}

// Contains reports whether letter is one of the 25 square letters.
func (m *Matrix) Contains(letter byte) bool {
	_, ok := m.Locate(letter)
	return ok
}

// Key returns the 25 letters of the square in row-major order.
func (m *Matrix) Key() string {
	var b strings.Builder
	b.Grow(classic.Cells)
	for _, row := range m.grid {
		b.Write(row[:])
	}
	return b.String()
}

// String renders the square as five lines of space-separated letters.
func (m *Matrix) String() string {
	var b strings.Builder
	for r, row := range m.grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, letter := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(letter)
		}
	}
	return b.String()
}

// Fingerprint returns a short key check value for the square.
// Two parties holding the same square see the same fingerprint, which lets them
// confirm agreement without exchanging the key.
func (m *Matrix) Fingerprint() string {
	sum := utils.HashWithDomain(DomainFingerprint, []byte(m.Key()))
	return strings.ToUpper(hex.EncodeToString(sum[:FingerprintSize]))
}
