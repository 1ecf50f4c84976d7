package hpkecrypto

import (
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
)

// Sentinel errors re-exported from the errs package so callers can
// classify failures with errors.Is against the facade alone.
var (
	ErrUnsupportedAlgorithm  = errs.ErrUnsupportedAlgorithm
	ErrEntropyUnavailable    = errs.ErrEntropyUnavailable
	ErrInvalidLength         = errs.ErrInvalidLength
	ErrInvalidKeyLength      = errs.ErrInvalidKeyLength
	ErrInvalidNonceLength    = errs.ErrInvalidNonceLength
	ErrDecryptionFailed      = errs.ErrDecryptionFailed
	ErrOperationNotSupported = errs.ErrOperationNotSupported
	ErrInvalidPublicKey      = errs.ErrInvalidPublicKey
	ErrInvalidCiphertext     = errs.ErrInvalidCiphertext
	ErrKeyGenerationFailed   = errs.ErrKeyGenerationFailed
	ErrEncapsulationFailed   = errs.ErrEncapsulationFailed
	ErrDecapsulationFailed   = errs.ErrDecapsulationFailed
)

// Error is an alias for errs.Error, the operation-scoped error wrapper
// returned by Provider methods.
type Error = errs.Error
