package kem

import (
	"crypto/ecdh"
	"fmt"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
)

// nistGroup routes the NIST-curve DHKEMs to crypto/ecdh, the Go
// ecosystem's canonical constant-time ECDH for P-256/384/521. Public keys
// use the uncompressed point encoding; key construction rejects
// out-of-range scalars, off-curve points and the point at infinity.
type nistGroup struct {
	curve ecdh.Curve
	id    ID
}

func (g *nistGroup) dh(sk, pk []byte) ([]byte, error) {
	priv, err := g.curve.NewPrivateKey(sk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidKeyLength, err)
	}
	pub, err := g.curve.NewPublicKey(pk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPublicKey, err)
	}
	return priv.ECDH(pub)
}

func (g *nistGroup) publicFromPrivate(sk []byte) ([]byte, error) {
	priv, err := g.curve.NewPrivateKey(sk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidKeyLength, err)
	}
	return priv.PublicKey().Bytes(), nil
}

func (g *nistGroup) validatePublicKey(pk []byte) error {
	if len(pk) != g.id.PublicKeySize() {
		return fmt.Errorf("%w: got %d, want %d", errs.ErrInvalidPublicKey, len(pk), g.id.PublicKeySize())
	}
	if _, err := g.curve.NewPublicKey(pk); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidPublicKey, err)
	}
	return nil
}

func (g *nistGroup) validateCandidate(sk []byte) error {
	// NewPrivateKey rejects zero and scalars at or above the group order.
	if _, err := g.curve.NewPrivateKey(sk); err != nil {
		return err
	}
	return nil
}

func (g *nistGroup) bitmask() byte {
	if g.id == DHKEMP521 {
		return 0x01
	}
	return 0xFF
}
