// Package product implements the product cipher: Playfair substitution cascaded
// with Rail Fence transposition.
//
// Encryption always substitutes first and transposes second. Playfair needs its
// input prepared into digraphs, while Rail Fence is indifferent to the alphabet, so
// only this order keeps both stages well defined. Decryption undoes the stages in
// reverse order.
package product

import (
	"github.com/pkg/errors"

	"github.com/BackendStack21/classic-cipher-go/ciphers/playfair"
	"github.com/BackendStack21/classic-cipher-go/ciphers/railfence"
	"github.com/BackendStack21/classic-cipher-go/core"
)

// Stage names prefix errors returned from the corresponding stage.
const (
	// StageSubstitution is the Playfair stage.
	StageSubstitution = "playfair stage"

	// StageTransposition is the Rail Fence stage.
	StageTransposition = "rail fence stage"
)

// Result holds every intermediate text of one product encryption.
type Result struct {
	Prepared    string `json:"prepared" yaml:"prepared"`       // digraph form of the message
	Substituted string `json:"substituted" yaml:"substituted"` // Playfair output
	Ciphertext  string `json:"ciphertext" yaml:"ciphertext"`   // Rail Fence output
}

// Encrypt encrypts message with Playfair under key, then with Rail Fence at depth.
// The depth is validated before either stage runs.
func Encrypt(message, key string, depth int) (string, error) {
	res, err := EncryptTrace(message, key, depth)
	if err != nil {
		return "", err
	}
	return res.Ciphertext, nil
}

// EncryptTrace encrypts like Encrypt and keeps the output of every stage.
func EncryptTrace(message, key string, depth int) (*Result, error) {
	if err := core.ValidateParams(core.Params{Key: key, Depth: depth}); err != nil {
		return nil, err
	}

	res := &Result{Prepared: playfair.Prepare(message)}
	res.Substituted = playfair.Encrypt(res.Prepared, key)

	ct, err := railfence.Encrypt(res.Substituted, depth)
	if err != nil {
		return nil, errors.Wrap(err, StageTransposition)
	}
	res.Ciphertext = ct
	return res, nil
}

// Decrypt reverses Encrypt: Rail Fence at depth first, then Playfair under key.
// The result is the prepared digraph form of the original message; case, spacing
// and punctuation are not recoverable.
func Decrypt(ciphertext, key string, depth int) (string, error) {
	if err := core.ValidateParams(core.Params{Key: key, Depth: depth}); err != nil {
		return "", err
	}

	substituted, err := railfence.Decrypt(ciphertext, depth)
	if err != nil {
		return "", errors.Wrap(err, StageTransposition)
	}
	plain, err := playfair.Decrypt(substituted, key)
	if err != nil {
		return "", errors.Wrap(err, StageSubstitution)
	}
	return plain, nil
}

// EncryptParams is Encrypt with a parameter set.
func EncryptParams(message string, params core.Params) (string, error) {
	return Encrypt(message, params.Key, params.Depth)
}

// DecryptParams is Decrypt with a parameter set.
func DecryptParams(ciphertext string, params core.Params) (string, error) {
	return Decrypt(ciphertext, params.Key, params.Depth)
}
