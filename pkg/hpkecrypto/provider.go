package hpkecrypto

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/aead"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/kdf"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/kem"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/logging"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/randsource"
)

// providerName identifies this backend to protocol code that reports the
// crypto provider in use.
const providerName = "go-multi"

// Config expresses the construction-time choices for a Provider. The zero
// value yields the full algorithm registry backed by the secure
// randomness source.
type Config struct {
	// Rand supplies all randomness drawn by the Provider. Nil selects
	// the secure OS-entropy source. Deterministic sources must be
	// constructed explicitly by the caller; nothing selects one by
	// default.
	Rand randsource.Source

	// KEMs, KDFs and AEADs restrict the registry to a subset of
	// identifiers, for minimal-footprint configurations. Nil means all
	// implemented identifiers. Listing an unimplemented identifier is a
	// construction error.
	KEMs  []kem.ID
	KDFs  []kdf.ID
	AEADs []aead.ID

	// Logger receives registry-construction debug logs. Nil disables
	// logging. Key material is never logged regardless.
	Logger *slog.Logger
}

// Provider routes algorithm identifiers to implementations. It holds the
// immutable identifier registry and the randomness source; all working
// data belongs to the individual call. Safe for concurrent use.
type Provider struct {
	rand  randsource.Source
	kems  map[kem.ID]kem.Scheme
	kdfs  map[kdf.ID]*kdf.KDF
	aeads map[aead.ID]*aead.Cipher
	log   logging.Logger
}

// New builds a Provider from cfg. The registry is constructed once and
// never mutated afterwards.
func New(cfg Config) (*Provider, error) {
	p := &Provider{
		rand:  cfg.Rand,
		kems:  make(map[kem.ID]kem.Scheme),
		kdfs:  make(map[kdf.ID]*kdf.KDF),
		aeads: make(map[aead.ID]*aead.Cipher),
	}
	if p.rand == nil {
		p.rand = randsource.Secure()
	}

	kemIDs := cfg.KEMs
	if kemIDs == nil {
		kemIDs = kem.IDs()
	}
	for _, id := range kemIDs {
		s, err := kem.New(id)
		if err != nil {
			return nil, errs.Wrap("New", err)
		}
		p.kems[id] = s
	}

	kdfIDs := cfg.KDFs
	if kdfIDs == nil {
		kdfIDs = kdf.IDs()
	}
	for _, id := range kdfIDs {
		k, err := kdf.New(id)
		if err != nil {
			return nil, errs.Wrap("New", err)
		}
		p.kdfs[id] = k
	}

	aeadIDs := cfg.AEADs
	if aeadIDs == nil {
		aeadIDs = aead.IDs()
	}
	for _, id := range aeadIDs {
		c, err := aead.New(id)
		if err != nil {
			return nil, errs.Wrap("New", err)
		}
		p.aeads[id] = c
	}

	if cfg.Logger != nil {
		p.log = logging.New(cfg.Logger)
		p.log.Debug(context.Background(), "crypto provider constructed",
			"name", providerName,
			"kems", len(p.kems),
			"kdfs", len(p.kdfs),
			"aeads", len(p.aeads),
		)
	}
	return p, nil
}

// Name returns the provider's identification string.
func (p *Provider) Name() string {
	return providerName
}

// Rand returns the randomness source bound at construction.
func (p *Provider) Rand() randsource.Source {
	return p.rand
}

// KEM returns the scheme registered for id, or ErrUnsupportedAlgorithm if
// the identifier is not in this Provider's registry.
func (p *Provider) KEM(id kem.ID) (kem.Scheme, error) {
	s, ok := p.kems[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedAlgorithm, id)
	}
	return s, nil
}

// KDF returns the KDF registered for id, or ErrUnsupportedAlgorithm if
// the identifier is not in this Provider's registry.
func (p *Provider) KDF(id kdf.ID) (*kdf.KDF, error) {
	k, ok := p.kdfs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedAlgorithm, id)
	}
	return k, nil
}

// AEAD returns the cipher registered for id, or ErrUnsupportedAlgorithm
// if the identifier is not in this Provider's registry.
func (p *Provider) AEAD(id aead.ID) (*aead.Cipher, error) {
	c, ok := p.aeads[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedAlgorithm, id)
	}
	return c, nil
}

// SupportsKEM reports whether id is registered in this Provider.
func (p *Provider) SupportsKEM(id kem.ID) bool {
	_, ok := p.kems[id]
	return ok
}

// SupportsKDF reports whether id is registered in this Provider.
func (p *Provider) SupportsKDF(id kdf.ID) bool {
	_, ok := p.kdfs[id]
	return ok
}

// SupportsAEAD reports whether id is registered in this Provider.
func (p *Provider) SupportsAEAD(id aead.ID) bool {
	_, ok := p.aeads[id]
	return ok
}

// KEMs returns the registered KEM identifiers, in unspecified order.
func (p *Provider) KEMs() []kem.ID {
	ids := make([]kem.ID, 0, len(p.kems))
	for id := range p.kems {
		ids = append(ids, id)
	}
	return ids
}

// KDFs returns the registered KDF identifiers, in unspecified order.
func (p *Provider) KDFs() []kdf.ID {
	ids := make([]kdf.ID, 0, len(p.kdfs))
	for id := range p.kdfs {
		ids = append(ids, id)
	}
	return ids
}

// AEADs returns the registered AEAD identifiers, in unspecified order.
func (p *Provider) AEADs() []aead.ID {
	ids := make([]aead.ID, 0, len(p.aeads))
	for id := range p.aeads {
		ids = append(ids, id)
	}
	return ids
}

// GenerateKeyPair generates a key pair for the given KEM identifier,
// drawing randomness from the Provider's source.
func (p *Provider) GenerateKeyPair(id kem.ID) (KeyPair, error) {
	s, err := p.KEM(id)
	if err != nil {
		return KeyPair{}, errs.Wrap("GenerateKeyPair", err)
	}
	sk, pk, err := s.GenerateKeyPair(p.rand)
	if err != nil {
		return KeyPair{}, errs.Wrap("GenerateKeyPair", err)
	}
	return NewKeyPair(sk, pk), nil
}

// DeriveKeyPair deterministically derives a key pair for the given KEM
// identifier from input keying material.
func (p *Provider) DeriveKeyPair(id kem.ID, ikm []byte) (KeyPair, error) {
	s, err := p.KEM(id)
	if err != nil {
		return KeyPair{}, errs.Wrap("DeriveKeyPair", err)
	}
	sk, pk, err := s.DeriveKeyPair(ikm)
	if err != nil {
		return KeyPair{}, errs.Wrap("DeriveKeyPair", err)
	}
	return NewKeyPair(sk, pk), nil
}

// Encapsulate derives a shared secret for the holder of pkR under the
// given KEM identifier, drawing the ephemeral key from the Provider's
// randomness source.
func (p *Provider) Encapsulate(id kem.ID, pkR PublicKey) (ss, enc []byte, err error) {
	s, err := p.KEM(id)
	if err != nil {
		return nil, nil, errs.Wrap("Encapsulate", err)
	}
	ss, enc, err = s.Encapsulate(p.rand, pkR.Bytes())
	if err != nil {
		return nil, nil, errs.Wrap("Encapsulate", err)
	}
	return ss, enc, nil
}

// Decapsulate recovers the shared secret from an encapsulated key under
// the given KEM identifier.
func (p *Provider) Decapsulate(id kem.ID, enc []byte, skR PrivateKey) ([]byte, error) {
	s, err := p.KEM(id)
	if err != nil {
		return nil, errs.Wrap("Decapsulate", err)
	}
	ss, err := s.Decapsulate(enc, skR.Bytes())
	if err != nil {
		return nil, errs.Wrap("Decapsulate", err)
	}
	return ss, nil
}
