// Package randsource supplies the randomness used by the HPKE crypto
// backend for key generation and ephemeral secrets.
//
// # Source Interface
//
// The Source interface is a single method:
//
//	type Source interface {
//	    Fill(buf []byte) error
//	}
//
// Fill either fills the whole buffer or fails; there is no partial success.
//
// # Secure Source
//
// Secure() returns the production source backed by crypto/rand (the
// operating system's entropy pool). Failures surface as
// errs.ErrEntropyUnavailable.
//
// # Deterministic Source
//
// NewDeterministic(seed) returns a reproducible source that expands an
// explicit 32-byte seed with a ChaCha20 keystream. Two sources built from
// the same seed produce identical byte streams regardless of how Fill
// calls are sliced. It exists solely so tests can reproduce key material
// and transcripts.
//
// The deterministic source is reachable only through its explicit
// constructor. Nothing in this module selects it by default, reads it from
// configuration, or falls back to it when the secure source fails.
package randsource
