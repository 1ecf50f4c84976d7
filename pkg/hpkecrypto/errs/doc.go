// Package errs defines the stable error taxonomy of the HPKE crypto backend.
//
// Every failure surfaced by the backend unwraps to exactly one of the
// sentinel errors in this package, so protocol code can distinguish
// "malformed peer input" from "local capability gap" from "internal
// failure" with errors.Is, without inspecting provider internals.
//
// The sentinels are deliberately a leaf package: the kem, kdf, aead and
// randsource packages all raise them, and the hpkecrypto facade re-exports
// them, so callers normally match against hpkecrypto.ErrX rather than
// importing errs directly.
//
// All errors are terminal for the call that raised them. The backend never
// returns partial results alongside an error and never retries internally,
// with the single exception of the bounded retry during key generation.
package errs
