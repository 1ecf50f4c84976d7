package kem

import (
	"fmt"

	circlkem "github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/schemes"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/randsource"
)

// xwingSchemeName is circl's registry name for the X25519/ML-KEM-768
// hybrid.
const xwingSchemeName = "X-Wing"

// xwingScheme adapts circl's generic KEM scheme to the backend Scheme
// surface. Randomness stays routed through the caller's Source: key pairs
// derive from a Source-drawn seed and encapsulation uses circl's
// deterministic entry point with a Source-drawn encapsulation seed.
//
// X-Wing is not a Diffie-Hellman construction, so the authenticated
// variants are not supported.
type xwingScheme struct {
	sch circlkem.Scheme
}

func newXWingScheme() (Scheme, error) {
	sch := schemes.ByName(xwingSchemeName)
	if sch == nil {
		return nil, fmt.Errorf("%w: %s not present in crypto provider", errs.ErrUnsupportedAlgorithm, XWing)
	}
	return &xwingScheme{sch: sch}, nil
}

func (x *xwingScheme) ID() ID {
	return XWing
}

func (x *xwingScheme) GenerateKeyPair(rng randsource.Source) (sk, pk []byte, err error) {
	seed := make([]byte, x.sch.SeedSize())
	if err := rng.Fill(seed); err != nil {
		return nil, nil, err
	}
	return x.DeriveKeyPair(seed)
}

func (x *xwingScheme) DeriveKeyPair(ikm []byte) (sk, pk []byte, err error) {
	if len(ikm) != x.sch.SeedSize() {
		return nil, nil, fmt.Errorf("%w: seed got %d, want %d",
			errs.ErrInvalidKeyLength, len(ikm), x.sch.SeedSize())
	}
	pubKey, privKey := x.sch.DeriveKeyPair(ikm)
	sk, err = privKey.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrKeyGenerationFailed, err)
	}
	pk, err = pubKey.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrKeyGenerationFailed, err)
	}
	return sk, pk, nil
}

func (x *xwingScheme) Encapsulate(rng randsource.Source, pkR []byte) (ss, enc []byte, err error) {
	pubKey, err := x.parsePublicKey(pkR)
	if err != nil {
		return nil, nil, err
	}
	seed := make([]byte, x.sch.EncapsulationSeedSize())
	if err := rng.Fill(seed); err != nil {
		return nil, nil, err
	}
	enc, ss, err = x.sch.EncapsulateDeterministically(pubKey, seed)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrEncapsulationFailed, err)
	}
	return ss, enc, nil
}

func (x *xwingScheme) Decapsulate(enc, skR []byte) ([]byte, error) {
	if len(enc) != x.sch.CiphertextSize() {
		return nil, fmt.Errorf("%w: encapsulated key got %d, want %d",
			errs.ErrInvalidCiphertext, len(enc), x.sch.CiphertextSize())
	}
	if len(skR) != x.sch.PrivateKeySize() {
		return nil, fmt.Errorf("%w: private key got %d, want %d",
			errs.ErrInvalidKeyLength, len(skR), x.sch.PrivateKeySize())
	}
	privKey, err := x.sch.UnmarshalBinaryPrivateKey(skR)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidKeyLength, err)
	}
	ss, err := x.sch.Decapsulate(privKey, enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecapsulationFailed, err)
	}
	return ss, nil
}

func (x *xwingScheme) AuthEncapsulate(randsource.Source, []byte, []byte) ([]byte, []byte, error) {
	return nil, nil, fmt.Errorf("%w: %s has no authenticated mode", errs.ErrOperationNotSupported, XWing)
}

func (x *xwingScheme) AuthDecapsulate([]byte, []byte, []byte) ([]byte, error) {
	return nil, fmt.Errorf("%w: %s has no authenticated mode", errs.ErrOperationNotSupported, XWing)
}

func (x *xwingScheme) PublicKeyFromPrivate(sk []byte) ([]byte, error) {
	if len(sk) != x.sch.PrivateKeySize() {
		return nil, fmt.Errorf("%w: private key got %d, want %d",
			errs.ErrInvalidKeyLength, len(sk), x.sch.PrivateKeySize())
	}
	privKey, err := x.sch.UnmarshalBinaryPrivateKey(sk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidKeyLength, err)
	}
	pk, err := privKey.Public().MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrKeyGenerationFailed, err)
	}
	return pk, nil
}

func (x *xwingScheme) SerializePublicKey(pk []byte) ([]byte, error) {
	if len(pk) != x.sch.PublicKeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d",
			errs.ErrInvalidPublicKey, len(pk), x.sch.PublicKeySize())
	}
	out := make([]byte, len(pk))
	copy(out, pk)
	return out, nil
}

func (x *xwingScheme) DeserializePublicKey(data []byte) ([]byte, error) {
	if _, err := x.parsePublicKey(data); err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (x *xwingScheme) parsePublicKey(pk []byte) (circlkem.PublicKey, error) {
	if len(pk) != x.sch.PublicKeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d",
			errs.ErrInvalidPublicKey, len(pk), x.sch.PublicKeySize())
	}
	pubKey, err := x.sch.UnmarshalBinaryPublicKey(pk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPublicKey, err)
	}
	return pubKey, nil
}
