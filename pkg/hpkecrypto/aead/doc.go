// Package aead provides the authenticated encryption operations of the
// HPKE crypto backend, keyed by cipher identifier.
//
// # Supported Algorithms
//
//   - AES128GCM (0x0001)
//   - AES256GCM (0x0002)
//   - ChaCha20Poly1305 (0x0003)
//   - ExportOnly (0xFFFF)
//
// The identifier values are the HPKE (RFC 9180) AEAD registry values.
//
// # Operations
//
// A Cipher handle is bound to one identifier by New and exposes Seal and
// Open. Key and nonce lengths are validated against the identifier's fixed
// sizes before the underlying cipher is touched. Open fails with
// errs.ErrDecryptionFailed on any authentication failure and never returns
// partial plaintext.
//
// ExportOnly is HPKE's no-AEAD mode: only key export is meaningful for it,
// so Seal and Open always fail with errs.ErrOperationNotSupported, and its
// key, nonce and tag sizes are all zero.
//
// Nonces are caller-supplied and never generated here; nonce uniqueness
// and sequencing are the protocol layer's responsibility.
//
// The cipher implementations are supplied by crypto/aes with cipher.NewGCM
// and by golang.org/x/crypto/chacha20poly1305; this package only validates
// inputs, routes identifiers and classifies failures.
package aead
