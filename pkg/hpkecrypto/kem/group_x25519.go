package kem

import (
	"fmt"

	"golang.org/x/crypto/curve25519"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
)

// x25519Group routes DHKEM(X25519) to golang.org/x/crypto/curve25519.
// Scalars are clamped by the library, so every 32-byte string is a usable
// private key; low-order peer points surface as an all-zero shared value
// and are rejected by the library.
type x25519Group struct{}

func (x25519Group) dh(sk, pk []byte) ([]byte, error) {
	shared, err := curve25519.X25519(sk, pk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPublicKey, err)
	}
	return shared, nil
}

func (x25519Group) publicFromPrivate(sk []byte) ([]byte, error) {
	return curve25519.X25519(sk, curve25519.Basepoint)
}

func (x25519Group) validatePublicKey(pk []byte) error {
	if len(pk) != curve25519.PointSize {
		return fmt.Errorf("%w: got %d, want %d", errs.ErrInvalidPublicKey, len(pk), curve25519.PointSize)
	}
	return nil
}

func (x25519Group) validateCandidate([]byte) error { return nil }

func (x25519Group) bitmask() byte { return 0xFF }
