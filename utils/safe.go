// Package utils provides utility functions for classic-cipher-go.
// This file contains length limits that keep callers from feeding unbounded input
// into the ciphers.

package utils

import (
	"errors"
)

// Maximum allowed lengths for caller-supplied input.
const (
	// MaxMessageSize is the maximum allowed message size in bytes.
	MaxMessageSize = 1 << 20 // 1MB

	// MaxKeySize is the maximum allowed Playfair key size in bytes.
	MaxKeySize = 1 << 12 // 4KB

	// MaxIterations bounds benchmark loops.
	MaxIterations = 1 << 20
)

var (
	// ErrExceedsLimit indicates a value exceeds the allowed limit.
	ErrExceedsLimit = errors.New("value exceeds allowed limit")

	// ErrInvalidLength indicates an invalid length value.
	ErrInvalidLength = errors.New("invalid length")
)

// CheckLength validates that length is within [0, maxAllowed].
func CheckLength(length, maxAllowed int) error {
	if length < 0 {
		return ErrInvalidLength
	}
	if length > maxAllowed {
		return ErrExceedsLimit
	}
	return nil
}

// CheckPositive validates that value is > 0.
func CheckPositive(value int, name string) error {
	if value <= 0 {
		return errors.New(name + " must be positive")
	}
	return nil
}
