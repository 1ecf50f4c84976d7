// Package kem provides the key-encapsulation operations of the HPKE
// crypto backend, keyed by KEM identifier.
//
// # Supported Algorithms
//
//   - DHKEMP256 (0x0010), DHKEMP384 (0x0011), DHKEMP521 (0x0012)
//   - DHKEMSecp256k1 (0x0016)
//   - DHKEMX25519 (0x0020), DHKEMX448 (0x0021)
//   - XWing (0x004D)
//
// The identifier values are the HPKE (RFC 9180) KEM registry values plus
// the draft secp256k1 and X-Wing assignments.
//
// # Operations
//
// A Scheme is bound to one identifier by New and exposes key-pair
// generation, deterministic key derivation (RFC 9180 DeriveKeyPair),
// encapsulation, decapsulation, authenticated variants for the DH KEMs,
// and fixed-length public key serialization.
//
// Randomness is always drawn from a caller-supplied randsource.Source;
// schemes never reach for ambient randomness. Key generation rejects
// degenerate private scalars with a bounded retry before failing with
// errs.ErrKeyGenerationFailed.
//
// Peer-supplied inputs are validated before any derivation: malformed
// public keys fail with errs.ErrInvalidPublicKey and malformed
// encapsulated keys with errs.ErrInvalidCiphertext. After structural
// validation the shared-secret derivation runs to completion without
// data-dependent branching on secret material.
//
// # External Providers
//
// The curve and lattice arithmetic is supplied entirely by external
// libraries: crypto/ecdh for the NIST curves, golang.org/x/crypto/curve25519
// for X25519, github.com/cloudflare/circl for X448 and X-Wing, and
// github.com/btcsuite/btcd/btcec for secp256k1. This package validates
// inputs, classifies failures and plumbs randomness; it implements no
// primitive arithmetic of its own.
package kem
