package utils

import (
	"golang.org/x/crypto/sha3"
)

// HashWithDomain computes a domain-separated SHA3-256 hash.
// It prefixes the data with the length of the domain string and the domain string itself.
// This prevents collisions between different uses of the hash function.
// Panics if domain is longer than 255 bytes.
func HashWithDomain(domain string, data []byte) []byte {
	domainBytes := []byte(domain)
	if len(domainBytes) > 255 {
		panic("domain string must be at most 255 bytes")
	}
	h := sha3.New256()
	h.Write([]byte{byte(len(domainBytes))})
	h.Write(domainBytes)
	h.Write(data)
	return h.Sum(nil)
}

// Shake256 computes the SHAKE256 extendable output function (XOF).
// It expands seed into outputLen pseudo-random bytes.
func Shake256(seed []byte, outputLen int) []byte {
	output := make([]byte, outputLen)
	sha3.ShakeSum256(output, seed)
	return output
}
