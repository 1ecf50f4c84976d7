package kem

import (
	"fmt"

	"github.com/cloudflare/circl/dh/x448"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
)

// x448Group routes DHKEM(X448) to github.com/cloudflare/circl/dh/x448.
// As with X25519, scalars are clamped by the library and low-order peer
// points are reported by the shared-secret computation.
type x448Group struct{}

func (x448Group) dh(sk, pk []byte) ([]byte, error) {
	if len(sk) != x448.Size {
		return nil, fmt.Errorf("%w: scalar got %d, want %d", errs.ErrInvalidKeyLength, len(sk), x448.Size)
	}
	if len(pk) != x448.Size {
		return nil, fmt.Errorf("%w: got %d, want %d", errs.ErrInvalidPublicKey, len(pk), x448.Size)
	}
	var secret, public, shared x448.Key
	copy(secret[:], sk)
	copy(public[:], pk)
	if !x448.Shared(&shared, &secret, &public) {
		return nil, fmt.Errorf("%w: low-order point", errs.ErrInvalidPublicKey)
	}
	return shared[:], nil
}

func (x448Group) publicFromPrivate(sk []byte) ([]byte, error) {
	if len(sk) != x448.Size {
		return nil, fmt.Errorf("%w: scalar got %d, want %d", errs.ErrInvalidKeyLength, len(sk), x448.Size)
	}
	var secret, public x448.Key
	copy(secret[:], sk)
	x448.KeyGen(&public, &secret)
	return public[:], nil
}

func (x448Group) validatePublicKey(pk []byte) error {
	if len(pk) != x448.Size {
		return fmt.Errorf("%w: got %d, want %d", errs.ErrInvalidPublicKey, len(pk), x448.Size)
	}
	return nil
}

func (x448Group) validateCandidate([]byte) error { return nil }

func (x448Group) bitmask() byte { return 0xFF }
