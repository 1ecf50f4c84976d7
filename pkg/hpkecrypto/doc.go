// Package hpkecrypto exposes the algorithm-dispatch facade of the HPKE
// crypto backend.
//
// The package decouples HPKE protocol logic from the concrete algorithms
// realizing its three primitive families. A Provider is an immutable
// registry mapping KEM, KDF and AEAD identifiers to implementations; the
// protocol layer asks it for a handle bound to one identifier and performs
// all cryptographic operations through that handle.
//
//	provider, err := hpkecrypto.New(hpkecrypto.Config{})
//	if err != nil {
//	    return err
//	}
//
//	scheme, err := provider.KEM(hpkecrypto.KemDHKEMX25519)
//	if err != nil {
//	    return err // hpkecrypto.ErrUnsupportedAlgorithm
//	}
//
//	kp, err := provider.GenerateKeyPair(hpkecrypto.KemDHKEMX25519)
//	...
//
// # Dispatch
//
// KEM, KDF and AEAD are O(1) pure lookups. An identifier with no
// registered implementation fails with ErrUnsupportedAlgorithm; the
// facade never substitutes another algorithm and never panics on unknown
// identifiers. The registry is fixed at construction, so a Provider is
// safe for concurrent use without locking, and multiple independently
// configured Providers can coexist in one process.
//
// # Randomness
//
// All randomness flows through the Source configured at construction.
// The default is the secure OS-entropy source; the deterministic test
// source in package randsource is only ever used when a caller explicitly
// constructs one and passes it in Config.
//
// # Errors
//
// Every failure unwraps to one of the sentinel errors re-exported from
// package errs, so callers can classify failures with errors.Is without
// inspecting provider internals. No error path logs or carries key
// material.
package hpkecrypto
