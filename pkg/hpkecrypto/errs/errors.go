package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedAlgorithm indicates the algorithm identifier has no
	// registered implementation in the current provider configuration.
	ErrUnsupportedAlgorithm = errors.New("hpke: unsupported algorithm")

	// ErrEntropyUnavailable indicates the secure randomness source failed
	// to produce the requested bytes.
	ErrEntropyUnavailable = errors.New("hpke: entropy unavailable")

	// ErrInvalidLength indicates a requested KDF output length exceeds the
	// construction's expansion bound.
	ErrInvalidLength = errors.New("hpke: invalid output length")

	// ErrInvalidKeyLength indicates key material of the wrong size for the
	// bound algorithm.
	ErrInvalidKeyLength = errors.New("hpke: invalid key length")

	// ErrInvalidNonceLength indicates a nonce of the wrong size for the
	// bound AEAD.
	ErrInvalidNonceLength = errors.New("hpke: invalid nonce length")

	// ErrDecryptionFailed indicates AEAD authentication failed. No
	// plaintext is ever returned alongside this error.
	ErrDecryptionFailed = errors.New("hpke: decryption failed")

	// ErrOperationNotSupported indicates the operation is meaningless for
	// the bound algorithm, e.g. seal/open on the export-only AEAD.
	ErrOperationNotSupported = errors.New("hpke: operation not supported")

	// ErrInvalidPublicKey indicates a malformed peer public key: wrong
	// length, off-curve, non-canonical, or low-order.
	ErrInvalidPublicKey = errors.New("hpke: invalid public key")

	// ErrInvalidCiphertext indicates a malformed encapsulated key received
	// from a peer.
	ErrInvalidCiphertext = errors.New("hpke: invalid ciphertext")

	// ErrKeyGenerationFailed indicates key generation exhausted its retry
	// budget or the underlying provider failed.
	ErrKeyGenerationFailed = errors.New("hpke: key generation failed")

	// ErrEncapsulationFailed indicates an internal derivation failure
	// during encapsulation after the input validated.
	ErrEncapsulationFailed = errors.New("hpke: encapsulation failed")

	// ErrDecapsulationFailed indicates an internal derivation failure
	// during decapsulation after the input validated.
	ErrDecapsulationFailed = errors.New("hpke: decapsulation failed")
)

// Error wraps an underlying error with the operation that raised it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("hpkecrypto.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches an operation name to err. A nil err returns nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
