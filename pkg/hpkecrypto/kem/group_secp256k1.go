package kem

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
)

// secp256k1Group routes DHKEM(secp256k1) to github.com/btcsuite/btcd/btcec.
// Public keys use the uncompressed point encoding; ParsePubKey rejects
// off-curve and non-canonical encodings. The shared value is the 32-byte
// x coordinate, as in the other DHKEM curves.
type secp256k1Group struct{}

func (secp256k1Group) dh(sk, pk []byte) ([]byte, error) {
	if len(sk) != DHKEMSecp256k1.PrivateKeySize() {
		return nil, fmt.Errorf("%w: scalar got %d, want %d",
			errs.ErrInvalidKeyLength, len(sk), DHKEMSecp256k1.PrivateKeySize())
	}
	pub, err := btcec.ParsePubKey(pk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPublicKey, err)
	}
	priv, _ := btcec.PrivKeyFromBytes(sk)
	return btcec.GenerateSharedSecret(priv, pub), nil
}

func (g secp256k1Group) publicFromPrivate(sk []byte) ([]byte, error) {
	if err := g.validateCandidate(sk); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidKeyLength, err)
	}
	_, pub := btcec.PrivKeyFromBytes(sk)
	return pub.SerializeUncompressed(), nil
}

func (secp256k1Group) validatePublicKey(pk []byte) error {
	if len(pk) != DHKEMSecp256k1.PublicKeySize() {
		return fmt.Errorf("%w: got %d, want %d",
			errs.ErrInvalidPublicKey, len(pk), DHKEMSecp256k1.PublicKeySize())
	}
	if _, err := btcec.ParsePubKey(pk); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidPublicKey, err)
	}
	return nil
}

func (secp256k1Group) validateCandidate(sk []byte) error {
	if len(sk) != DHKEMSecp256k1.PrivateKeySize() {
		return fmt.Errorf("scalar got %d bytes, want %d", len(sk), DHKEMSecp256k1.PrivateKeySize())
	}
	// PrivKeyFromBytes silently reduces modulo the group order, so the
	// range check happens here instead.
	d := new(big.Int).SetBytes(sk)
	if d.Sign() == 0 || d.Cmp(btcec.S256().N) >= 0 {
		return fmt.Errorf("scalar out of range")
	}
	return nil
}

func (secp256k1Group) bitmask() byte { return 0xFF }
