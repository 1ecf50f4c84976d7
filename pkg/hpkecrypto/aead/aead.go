package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
)

// ID identifies an AEAD algorithm. The values are the RFC 9180 AEAD
// registry values.
type ID uint16

// Supported AEAD identifiers.
const (
	AES128GCM        ID = 0x0001
	AES256GCM        ID = 0x0002
	ChaCha20Poly1305 ID = 0x0003

	// ExportOnly is HPKE's no-AEAD mode. Only key export is meaningful
	// for it; seal and open are not supported.
	ExportOnly ID = 0xFFFF
)

// IDs returns all AEAD identifiers this package implements.
func IDs() []ID {
	return []ID{AES128GCM, AES256GCM, ChaCha20Poly1305, ExportOnly}
}

// ParseID converts a wire value into an AEAD identifier.
func ParseID(v uint16) (ID, error) {
	switch id := ID(v); id {
	case AES128GCM, AES256GCM, ChaCha20Poly1305, ExportOnly:
		return id, nil
	default:
		return 0, fmt.Errorf("%w: aead id 0x%04x", errs.ErrUnsupportedAlgorithm, v)
	}
}

// String returns a human-readable name for the identifier.
func (id ID) String() string {
	switch id {
	case AES128GCM:
		return "AES-128-GCM"
	case AES256GCM:
		return "AES-256-GCM"
	case ChaCha20Poly1305:
		return "ChaCha20Poly1305"
	case ExportOnly:
		return "Export-only"
	default:
		return "Unknown"
	}
}

// KeySize returns the fixed key size in bytes, or 0 for ExportOnly.
func (id ID) KeySize() int {
	switch id {
	case AES128GCM:
		return 16
	case AES256GCM, ChaCha20Poly1305:
		return 32
	default:
		return 0
	}
}

// NonceSize returns the fixed nonce size in bytes, or 0 for ExportOnly.
//
// The AEAD mechanisms generally allow other nonce lengths; this backend
// fixes the HPKE nonce size of 12 bytes.
func (id ID) NonceSize() int {
	switch id {
	case AES128GCM, AES256GCM, ChaCha20Poly1305:
		return 12
	default:
		return 0
	}
}

// TagSize returns the authentication tag size in bytes, or 0 for
// ExportOnly.
func (id ID) TagSize() int {
	switch id {
	case AES128GCM, AES256GCM, ChaCha20Poly1305:
		return 16
	default:
		return 0
	}
}

// Cipher performs authenticated encryption bound to one AEAD identifier.
// The zero value is not usable; obtain instances from New.
//
// Cipher holds no key material between calls and is safe for concurrent
// use.
type Cipher struct {
	id ID
}

// New returns a Cipher handle bound to the given identifier, or
// errs.ErrUnsupportedAlgorithm if the identifier is not implemented.
func New(id ID) (*Cipher, error) {
	switch id {
	case AES128GCM, AES256GCM, ChaCha20Poly1305, ExportOnly:
		return &Cipher{id: id}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedAlgorithm, id)
	}
}

// ID returns the bound AEAD identifier.
func (c *Cipher) ID() ID {
	return c.id
}

// Seal encrypts and authenticates plaintext with the given key, nonce and
// associated data, returning ciphertext with the authentication tag
// appended.
//
// Key and nonce lengths are validated before the underlying cipher is
// constructed. The nonce is caller-supplied; Seal never draws randomness.
func (c *Cipher) Seal(key, nonce, aad, plaintext []byte) ([]byte, error) {
	a, err := c.instance(key, nonce)
	if err != nil {
		return nil, err
	}
	return a.Seal(nil, nonce, plaintext, aad), nil
}

// Open authenticates and decrypts ciphertext with the given key, nonce and
// associated data.
//
// Any authentication failure, including a ciphertext shorter than the tag,
// fails with errs.ErrDecryptionFailed and returns no plaintext bytes.
func (c *Cipher) Open(key, nonce, aad, ciphertext []byte) ([]byte, error) {
	a, err := c.instance(key, nonce)
	if err != nil {
		return nil, err
	}
	plaintext, err := a.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, errs.ErrDecryptionFailed
	}
	return plaintext, nil
}

// instance validates key and nonce sizes and constructs the underlying
// AEAD. Validation order: algorithm support, key length, nonce length.
func (c *Cipher) instance(key, nonce []byte) (cipher.AEAD, error) {
	if c.id == ExportOnly {
		return nil, fmt.Errorf("%w: %s has no seal/open", errs.ErrOperationNotSupported, c.id)
	}
	if len(key) != c.id.KeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d for %s",
			errs.ErrInvalidKeyLength, len(key), c.id.KeySize(), c.id)
	}
	if len(nonce) != c.id.NonceSize() {
		return nil, fmt.Errorf("%w: got %d, want %d for %s",
			errs.ErrInvalidNonceLength, len(nonce), c.id.NonceSize(), c.id)
	}

	switch c.id {
	case ChaCha20Poly1305:
		a, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrInvalidKeyLength, err)
		}
		return a, nil
	default:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrInvalidKeyLength, err)
		}
		a, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrInvalidNonceLength, err)
		}
		return a, nil
	}
}
