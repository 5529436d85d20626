// Package classic implements classical substitution and transposition ciphers.
// This package provides the shared types and constants for the Playfair digraph
// substitution cipher, the Rail Fence transposition cipher, and the product cipher
// that cascades the two (substitution first, transposition second).
package classic

// Users import the cipher sub-packages directly; this package only carries the
// vocabulary they share.

// Version of the classic-cipher-go implementation.
const Version = "1.0.0"

// API summary:
//
// Playfair:
//   - playfair.BuildMatrix(key) - Derive the 5x5 key square
//   - playfair.Prepare(text) - Normalize text into filler-separated digraphs
//   - playfair.Encrypt(message, key) - Encrypt a message
//   - playfair.Decrypt(ciphertext, key) - Decrypt a ciphertext
//   - playfair.Trace(message, key) - Per-digraph encryption steps
//
// Rail Fence:
//   - railfence.Encrypt(message, depth) - Write along the zigzag, read by rail
//   - railfence.Decrypt(ciphertext, depth) - Rebuild the original order
//   - railfence.Fence(message, depth) - Render the zigzag layout
//
// Product cipher:
//   - product.Encrypt(message, key, depth) - Playfair, then Rail Fence
//   - product.Decrypt(ciphertext, key, depth) - Rail Fence, then Playfair
//   - product.EncryptTrace(message, key, depth) - Every intermediate stage
//
// Parameters:
//   - core.DefaultParams() - Default key and depth
//   - core.ValidateParams(params) - Reject unusable parameters
//
// WARNING: these ciphers are for teaching only. They are trivially broken and must
// never protect real data.
