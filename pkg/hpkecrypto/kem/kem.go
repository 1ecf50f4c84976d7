package kem

import (
	"crypto/ecdh"
	"errors"
	"fmt"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/kdf"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/randsource"
)

// maxKeyGenAttempts bounds the rejection-sampling loop in GenerateKeyPair.
// Each rejection has roughly 2^-32 probability for the supported curve
// orders, so exhausting the budget indicates a broken randomness source.
const maxKeyGenAttempts = 8

// deriveKeyPairLimit bounds the candidate loop in DeriveKeyPair, per
// RFC 9180 section 7.1.3.
const deriveKeyPairLimit = 256

// Scheme is a KEM bound to one algorithm identifier.
//
// Keys, encapsulated keys and shared secrets are opaque byte sequences in
// the identifier's fixed serialization. Every returned slice is owned
// exclusively by the caller. Implementations hold no mutable state and are
// safe for concurrent use.
type Scheme interface {
	// ID returns the bound KEM identifier.
	ID() ID

	// GenerateKeyPair draws randomness from rng and derives a fresh key
	// pair, rejecting degenerate private scalars with a bounded retry.
	GenerateKeyPair(rng randsource.Source) (sk, pk []byte, err error)

	// DeriveKeyPair deterministically derives a key pair from input
	// keying material, per RFC 9180 section 7.1.3.
	DeriveKeyPair(ikm []byte) (sk, pk []byte, err error)

	// Encapsulate derives a shared secret for the holder of pkR and the
	// encapsulated key to transmit. The ephemeral key is drawn from rng.
	Encapsulate(rng randsource.Source, pkR []byte) (ss, enc []byte, err error)

	// Decapsulate recovers the shared secret from an encapsulated key
	// using the receiver's private key.
	Decapsulate(enc, skR []byte) (ss []byte, err error)

	// AuthEncapsulate is Encapsulate with sender authentication: the
	// shared secret additionally binds the sender's key pair.
	AuthEncapsulate(rng randsource.Source, pkR, skS []byte) (ss, enc []byte, err error)

	// AuthDecapsulate is Decapsulate with sender authentication.
	AuthDecapsulate(enc, skR, pkS []byte) (ss []byte, err error)

	// PublicKeyFromPrivate derives the serialized public key for a
	// private key.
	PublicKeyFromPrivate(sk []byte) ([]byte, error)

	// SerializePublicKey encodes a public key into its fixed-length wire
	// form.
	SerializePublicKey(pk []byte) ([]byte, error)

	// DeserializePublicKey decodes and validates a fixed-length public
	// key encoding.
	DeserializePublicKey(data []byte) ([]byte, error)
}

// New returns the Scheme for the given identifier, or
// errs.ErrUnsupportedAlgorithm if the identifier is not implemented.
func New(id ID) (Scheme, error) {
	switch id {
	case DHKEMP256:
		return &dhkem{id: id, g: &nistGroup{curve: ecdh.P256(), id: id}}, nil
	case DHKEMP384:
		return &dhkem{id: id, g: &nistGroup{curve: ecdh.P384(), id: id}}, nil
	case DHKEMP521:
		return &dhkem{id: id, g: &nistGroup{curve: ecdh.P521(), id: id}}, nil
	case DHKEMSecp256k1:
		return &dhkem{id: id, g: secp256k1Group{}}, nil
	case DHKEMX25519:
		return &dhkem{id: id, g: x25519Group{}}, nil
	case DHKEMX448:
		return &dhkem{id: id, g: x448Group{}}, nil
	case XWing:
		return newXWingScheme()
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedAlgorithm, id)
	}
}

// group is the per-curve surface a dhkem needs. All byte slices use the
// identifier's fixed serialization; the arithmetic behind these calls
// lives in the external curve libraries.
type group interface {
	// dh computes the Diffie-Hellman shared value between a private
	// scalar and a serialized public key. A structurally invalid or
	// low-order public key fails with errs.ErrInvalidPublicKey.
	dh(sk, pk []byte) ([]byte, error)

	// publicFromPrivate derives the serialized public key.
	publicFromPrivate(sk []byte) ([]byte, error)

	// validatePublicKey checks length and curve membership of a
	// serialized public key.
	validatePublicKey(pk []byte) error

	// validateCandidate reports whether raw randomness is a usable
	// private scalar. Curves with clamped scalars accept everything.
	validateCandidate(sk []byte) error

	// bitmask is applied to the first candidate byte in DeriveKeyPair,
	// per RFC 9180.
	bitmask() byte
}

// dhkem implements the RFC 9180 DHKEM construction over a group: the
// shared secret is ExtractAndExpand of the raw DH value and a context
// binding all public keys involved, through the KDF bound to the
// identifier.
type dhkem struct {
	id ID
	g  group
}

func (d *dhkem) ID() ID {
	return d.id
}

func (d *dhkem) kdf() *kdf.KDF {
	k, err := kdf.New(d.id.KDFID())
	if err != nil {
		// Every KEM identifier maps to an implemented KDF.
		panic("kem: no kdf for " + d.id.String())
	}
	return k
}

func (d *dhkem) GenerateKeyPair(rng randsource.Source) (sk, pk []byte, err error) {
	for attempt := 0; attempt < maxKeyGenAttempts; attempt++ {
		candidate := make([]byte, d.id.PrivateKeySize())
		if err := rng.Fill(candidate); err != nil {
			return nil, nil, err
		}
		// P-521 scalars span 521 bits in a 66-byte encoding; without the
		// mask nearly every candidate lands above the group order.
		candidate[0] &= d.g.bitmask()
		if err := d.g.validateCandidate(candidate); err != nil {
			continue
		}
		pk, err := d.g.publicFromPrivate(candidate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", errs.ErrKeyGenerationFailed, err)
		}
		return candidate, pk, nil
	}
	return nil, nil, fmt.Errorf("%w: no valid scalar in %d attempts",
		errs.ErrKeyGenerationFailed, maxKeyGenAttempts)
}

func (d *dhkem) DeriveKeyPair(ikm []byte) (sk, pk []byte, err error) {
	k := d.kdf()
	suite := d.id.suiteID()
	dkpPRK := k.LabeledExtract(nil, suite, "dkp_prk", ikm)

	switch d.id {
	case DHKEMX25519, DHKEMX448:
		sk, err = k.LabeledExpand(dkpPRK, suite, "sk", nil, d.id.PrivateKeySize())
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", errs.ErrKeyGenerationFailed, err)
		}
	default:
		sk, err = d.deriveCandidate(k, dkpPRK, suite)
		if err != nil {
			return nil, nil, err
		}
	}

	pk, err = d.g.publicFromPrivate(sk)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrKeyGenerationFailed, err)
	}
	return sk, pk, nil
}

// deriveCandidate runs the RFC 9180 counter loop for curves whose scalars
// are not uniformly distributed over the byte space.
func (d *dhkem) deriveCandidate(k *kdf.KDF, dkpPRK, suite []byte) ([]byte, error) {
	for counter := 0; counter < deriveKeyPairLimit; counter++ {
		candidate, err := k.LabeledExpand(dkpPRK, suite, "candidate",
			[]byte{uint8(counter)}, d.id.PrivateKeySize())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrKeyGenerationFailed, err)
		}
		candidate[0] &= d.g.bitmask()
		if d.g.validateCandidate(candidate) == nil {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: no valid scalar in %d candidates",
		errs.ErrKeyGenerationFailed, deriveKeyPairLimit)
}

func (d *dhkem) Encapsulate(rng randsource.Source, pkR []byte) (ss, enc []byte, err error) {
	if err := d.g.validatePublicKey(pkR); err != nil {
		return nil, nil, err
	}
	skE, pkE, err := d.GenerateKeyPair(rng)
	if err != nil {
		return nil, nil, err
	}
	dh, err := d.g.dh(skE, pkR)
	if err != nil {
		return nil, nil, d.classify(err, errs.ErrEncapsulationFailed)
	}
	ss, err = d.extractAndExpand(dh, concat(pkE, pkR))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrEncapsulationFailed, err)
	}
	return ss, pkE, nil
}

func (d *dhkem) Decapsulate(enc, skR []byte) ([]byte, error) {
	if err := d.validateEncapsulated(enc); err != nil {
		return nil, err
	}
	if len(skR) != d.id.PrivateKeySize() {
		return nil, fmt.Errorf("%w: private key got %d, want %d",
			errs.ErrInvalidKeyLength, len(skR), d.id.PrivateKeySize())
	}
	dh, err := d.g.dh(skR, enc)
	if err != nil {
		return nil, d.classifyEnc(err)
	}
	pkR, err := d.g.publicFromPrivate(skR)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecapsulationFailed, err)
	}
	ss, err := d.extractAndExpand(dh, concat(enc, pkR))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecapsulationFailed, err)
	}
	return ss, nil
}

func (d *dhkem) AuthEncapsulate(rng randsource.Source, pkR, skS []byte) (ss, enc []byte, err error) {
	if err := d.g.validatePublicKey(pkR); err != nil {
		return nil, nil, err
	}
	if len(skS) != d.id.PrivateKeySize() {
		return nil, nil, fmt.Errorf("%w: sender private key got %d, want %d",
			errs.ErrInvalidKeyLength, len(skS), d.id.PrivateKeySize())
	}
	skE, pkE, err := d.GenerateKeyPair(rng)
	if err != nil {
		return nil, nil, err
	}
	dhE, err := d.g.dh(skE, pkR)
	if err != nil {
		return nil, nil, d.classify(err, errs.ErrEncapsulationFailed)
	}
	dhS, err := d.g.dh(skS, pkR)
	if err != nil {
		return nil, nil, d.classify(err, errs.ErrEncapsulationFailed)
	}
	pkS, err := d.g.publicFromPrivate(skS)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrEncapsulationFailed, err)
	}
	ss, err = d.extractAndExpand(concat(dhE, dhS), concat(pkE, pkR, pkS))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrEncapsulationFailed, err)
	}
	return ss, pkE, nil
}

func (d *dhkem) AuthDecapsulate(enc, skR, pkS []byte) ([]byte, error) {
	if err := d.validateEncapsulated(enc); err != nil {
		return nil, err
	}
	if len(skR) != d.id.PrivateKeySize() {
		return nil, fmt.Errorf("%w: private key got %d, want %d",
			errs.ErrInvalidKeyLength, len(skR), d.id.PrivateKeySize())
	}
	if err := d.g.validatePublicKey(pkS); err != nil {
		return nil, err
	}
	dhE, err := d.g.dh(skR, enc)
	if err != nil {
		return nil, d.classifyEnc(err)
	}
	dhS, err := d.g.dh(skR, pkS)
	if err != nil {
		return nil, d.classify(err, errs.ErrDecapsulationFailed)
	}
	pkR, err := d.g.publicFromPrivate(skR)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecapsulationFailed, err)
	}
	ss, err := d.extractAndExpand(concat(dhE, dhS), concat(enc, pkR, pkS))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecapsulationFailed, err)
	}
	return ss, nil
}

func (d *dhkem) PublicKeyFromPrivate(sk []byte) ([]byte, error) {
	if len(sk) != d.id.PrivateKeySize() {
		return nil, fmt.Errorf("%w: private key got %d, want %d",
			errs.ErrInvalidKeyLength, len(sk), d.id.PrivateKeySize())
	}
	return d.g.publicFromPrivate(sk)
}

func (d *dhkem) SerializePublicKey(pk []byte) ([]byte, error) {
	if len(pk) != d.id.PublicKeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d",
			errs.ErrInvalidPublicKey, len(pk), d.id.PublicKeySize())
	}
	out := make([]byte, len(pk))
	copy(out, pk)
	return out, nil
}

func (d *dhkem) DeserializePublicKey(data []byte) ([]byte, error) {
	if err := d.g.validatePublicKey(data); err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// extractAndExpand is the RFC 9180 section 4.1 shared-secret derivation:
// eae_prk = LabeledExtract("", "eae_prk", dh), then shared_secret =
// LabeledExpand(eae_prk, "shared_secret", kem_context, Nsecret).
func (d *dhkem) extractAndExpand(dh, kemContext []byte) ([]byte, error) {
	k := d.kdf()
	suite := d.id.suiteID()
	eaePRK := k.LabeledExtract(nil, suite, "eae_prk", dh)
	return k.LabeledExpand(eaePRK, suite, "shared_secret", kemContext, d.id.SharedSecretSize())
}

func (d *dhkem) validateEncapsulated(enc []byte) error {
	if len(enc) != d.id.EncapsulatedKeySize() {
		return fmt.Errorf("%w: encapsulated key got %d, want %d",
			errs.ErrInvalidCiphertext, len(enc), d.id.EncapsulatedKeySize())
	}
	return nil
}

// classify keeps public-key validation failures distinct and folds
// everything else into the given internal-failure kind.
func (d *dhkem) classify(err error, internal error) error {
	if errors.Is(err, errs.ErrInvalidPublicKey) {
		return err
	}
	return fmt.Errorf("%w: %v", internal, err)
}

// classifyEnc reclassifies point failures on the encapsulated key, which
// is peer ciphertext rather than a public key from the caller's view.
func (d *dhkem) classifyEnc(err error) error {
	if errors.Is(err, errs.ErrInvalidPublicKey) {
		return fmt.Errorf("%w: %v", errs.ErrInvalidCiphertext, err)
	}
	return fmt.Errorf("%w: %v", errs.ErrDecapsulationFailed, err)
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
