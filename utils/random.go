package utils

import (
	"crypto/rand"
	"errors"
	"io"
)

var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n cryptographically secure random bytes.
// It uses crypto/rand, which relies on the operating system's CSPRNG.
func SecureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := io.ReadFull(RandReader, buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// RandomInt generates a cryptographically secure random integer in [0, max).
// It uses rejection sampling to ensure a uniform distribution.
func RandomInt(max int) (int, error) {
	if max <= 0 {
		return 0, errors.New("max must be positive")
	}
	if max == 1 {
		return 0, nil
	}

	// Calculate number of bytes needed
	bitsNeeded := 0
	for m := max - 1; m > 0; m >>= 1 {
		bitsNeeded++
	}
	bytesNeeded := (bitsNeeded + 7) / 8
	mask := (1 << bitsNeeded) - 1

	for {
		bytes, err := SecureRandomBytes(bytesNeeded)
		if err != nil {
			return 0, err
		}

		var value int
		for i := 0; i < bytesNeeded; i++ {
			value = (value << 8) | int(bytes[i])
		}
		value &= mask

		if value < max {
			return value, nil
		}
	}
}

// RandomText returns n letters drawn uniformly from alphabet.
// Benchmarks use it to build plaintext that exercises every key square rule.
func RandomText(alphabet string, n int) (string, error) {
	if len(alphabet) == 0 {
		return "", errors.New("alphabet must not be empty")
	}
	if err := CheckLength(n, MaxMessageSize); err != nil {
		return "", err
	}
	out := make([]byte, n)
	for i := range out {
		idx, err := RandomInt(len(alphabet))
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx]
	}
	return string(out), nil
}

// DeterministicText expands seed with SHAKE256 into n letters of alphabet.
// The same seed always yields the same text, which keeps generated test corpora
// reproducible. The letters are not uniformly distributed and must not be used as
// key material.
func DeterministicText(seed []byte, alphabet string, n int) string {
	if len(alphabet) == 0 || n <= 0 {
		return ""
	}
	stream := Shake256(seed, n)
	out := make([]byte, n)
	for i, b := range stream {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out)
}
