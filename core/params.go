// Package core provides parameter defaults, validation and text normalization for
// the classical ciphers.
package core

import (
	"github.com/BackendStack21/classic-cipher-go/ciphers/railfence"
)

// DefaultKey is the key used in Wheatstone's original Playfair illustration.
const DefaultKey = "PLAYFAIR EXAMPLE"

// DefaultDepth is the classic three-rail fence.
const DefaultDepth = 3

// Params is the complete parameter set of the product cipher.
type Params struct {
	Key   string `json:"key" yaml:"key"`     // Playfair key, any text
	Depth int    `json:"depth" yaml:"depth"` // Rail Fence depth, >= 1
}

// DefaultParams returns the textbook parameter set.
func DefaultParams() Params {
	return Params{
		Key:   DefaultKey,
		Depth: DefaultDepth,
	}
}

// ValidateParams validates the parameter set.
// Every key is usable because the alphabet fills whatever the key leaves out;
// only the rail depth can be invalid.
func ValidateParams(params Params) error {
	return railfence.ValidateDepth(params.Depth)
}
