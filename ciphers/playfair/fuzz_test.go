package playfair

import (
	"errors"
	"testing"

	classic "github.com/BackendStack21/classic-cipher-go"
)

// FuzzRoundTrip checks that decryption recovers the prepared message for any key.
func FuzzRoundTrip(f *testing.F) {
	// Add seed corpus
	f.Add("INSTRUMENTS", "MONARCHY")
	f.Add("", "")
	f.Add("AAAA", "KEY")
	f.Add("xxxx", "x")
	f.Add("Ünïcödé ÀÉÎ", "jjj")

	f.Fuzz(func(t *testing.T, message, key string) {
		enc := Encrypt(message, key)
		dec, err := Decrypt(enc, key)
		if err != nil {
			t.Fatalf("Decrypt(%q) failed: %v", enc, err)
		}
		if want := Prepare(message); dec != want {
			t.Fatalf("round trip mismatch: got %q want %q", dec, want)
		}
	})
}

// FuzzDecrypt tests decryption of arbitrary ciphertext: it must either succeed or
// fail with an input validation error, never panic.
func FuzzDecrypt(f *testing.F) {
	// Add seed corpus
	f.Add("GATLMZCLRQXA", "MONARCHY")
	f.Add("ABC", "KEY")
	f.Add("AJ", "KEY")
	f.Add("", "")

	f.Fuzz(func(t *testing.T, ciphertext, key string) {
		_, err := Decrypt(ciphertext, key)
		if err != nil && !errors.Is(err, classic.ErrInvalidInput) {
			t.Fatalf("unexpected error type: %v", err)
		}
	})
}
