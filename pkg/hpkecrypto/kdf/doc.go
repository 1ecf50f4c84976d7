// Package kdf provides the extract-then-expand key derivation operations
// of the HPKE crypto backend, keyed by hash-function identifier.
//
// # Supported Algorithms
//
//   - HKDFSHA256 (0x0001)
//   - HKDFSHA384 (0x0002)
//   - HKDFSHA512 (0x0003)
//
// The identifier values are the HPKE (RFC 9180) KDF registry values.
//
// # Operations
//
// A KDF handle is bound to one identifier by New and exposes Extract and
// Expand (plain HKDF, RFC 5869) plus LabeledExtract and LabeledExpand (the
// RFC 9180 "HPKE-v1" labeled forms used by DHKEM and the key schedule).
//
// All operations are stateless and deterministic: identical inputs always
// produce identical outputs, and no internal randomness is drawn. Expand
// rejects output lengths beyond 255 times the digest size with
// errs.ErrInvalidLength before any hashing occurs. Extract with an empty
// salt uses a zero-filled salt of digest size, per the HKDF construction.
//
// The underlying hashing is supplied by golang.org/x/crypto/hkdf together
// with the standard SHA-2 implementations; this package only validates
// inputs and routes identifiers.
package kdf
