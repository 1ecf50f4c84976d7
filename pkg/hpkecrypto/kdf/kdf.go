package kdf

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
)

// ID identifies a KDF algorithm. The values are the RFC 9180 KDF registry
// values.
type ID uint16

// Supported KDF identifiers.
const (
	HKDFSHA256 ID = 0x0001
	HKDFSHA384 ID = 0x0002
	HKDFSHA512 ID = 0x0003
)

// versionLabel is the RFC 9180 label prefix for LabeledExtract and
// LabeledExpand.
const versionLabel = "HPKE-v1"

// maxExpandFactor bounds Expand output to 255 hash blocks, per RFC 5869.
const maxExpandFactor = 255

// IDs returns all KDF identifiers this package implements.
func IDs() []ID {
	return []ID{HKDFSHA256, HKDFSHA384, HKDFSHA512}
}

// ParseID converts a wire value into a KDF identifier.
func ParseID(v uint16) (ID, error) {
	switch id := ID(v); id {
	case HKDFSHA256, HKDFSHA384, HKDFSHA512:
		return id, nil
	default:
		return 0, fmt.Errorf("%w: kdf id 0x%04x", errs.ErrUnsupportedAlgorithm, v)
	}
}

// String returns a human-readable name for the identifier.
func (id ID) String() string {
	switch id {
	case HKDFSHA256:
		return "HKDF-SHA256"
	case HKDFSHA384:
		return "HKDF-SHA384"
	case HKDFSHA512:
		return "HKDF-SHA512"
	default:
		return "Unknown"
	}
}

// ExtractSize returns the digest size of the bound hash in bytes, which is
// also the size of pseudorandom keys produced by Extract.
func (id ID) ExtractSize() int {
	switch id {
	case HKDFSHA256:
		return sha256.Size
	case HKDFSHA384:
		return sha512.Size384
	case HKDFSHA512:
		return sha512.Size
	default:
		return 0
	}
}

// KDF performs extract-then-expand key derivation bound to one hash
// identifier. The zero value is not usable; obtain instances from New.
//
// KDF is stateless and safe for concurrent use.
type KDF struct {
	id ID
}

// New returns a KDF handle bound to the given identifier, or
// errs.ErrUnsupportedAlgorithm if the identifier is not implemented.
func New(id ID) (*KDF, error) {
	switch id {
	case HKDFSHA256, HKDFSHA384, HKDFSHA512:
		return &KDF{id: id}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedAlgorithm, id)
	}
}

// ID returns the bound KDF identifier.
func (k *KDF) ID() ID {
	return k.id
}

func (k *KDF) hash() func() hash.Hash {
	switch k.id {
	case HKDFSHA384:
		return sha512.New384
	case HKDFSHA512:
		return sha512.New
	default:
		return sha256.New
	}
}

// Extract derives a pseudorandom key from the input keying material and
// salt. An empty or nil salt behaves as a zero-filled salt of digest size,
// per the HKDF construction.
func (k *KDF) Extract(salt, ikm []byte) []byte {
	return hkdf.Extract(k.hash(), ikm, salt)
}

// Expand derives length bytes of output keying material from a
// pseudorandom key and optional context info.
//
// It fails with errs.ErrInvalidLength before any hashing if length exceeds
// 255 times the digest size; exactly 255 times the digest size succeeds.
func (k *KDF) Expand(prk, info []byte, length int) ([]byte, error) {
	if length < 0 || length > maxExpandFactor*k.id.ExtractSize() {
		return nil, fmt.Errorf("%w: %d bytes from %s", errs.ErrInvalidLength, length, k.id)
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(k.hash(), prk, info), out); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidLength, err)
	}
	return out, nil
}

// LabeledExtract is the RFC 9180 labeled form of Extract: the input keying
// material is framed as "HPKE-v1" || suiteID || label || ikm.
func (k *KDF) LabeledExtract(salt, suiteID []byte, label string, ikm []byte) []byte {
	labeled := make([]byte, 0, len(versionLabel)+len(suiteID)+len(label)+len(ikm))
	labeled = append(labeled, versionLabel...)
	labeled = append(labeled, suiteID...)
	labeled = append(labeled, label...)
	labeled = append(labeled, ikm...)
	return k.Extract(salt, labeled)
}

// LabeledExpand is the RFC 9180 labeled form of Expand: the info is framed
// as I2OSP(length, 2) || "HPKE-v1" || suiteID || label || info.
func (k *KDF) LabeledExpand(prk, suiteID []byte, label string, info []byte, length int) ([]byte, error) {
	labeled := make([]byte, 2, 2+len(versionLabel)+len(suiteID)+len(label)+len(info))
	binary.BigEndian.PutUint16(labeled[:2], uint16(length))
	labeled = append(labeled, versionLabel...)
	labeled = append(labeled, suiteID...)
	labeled = append(labeled, label...)
	labeled = append(labeled, info...)
	return k.Expand(prk, labeled, length)
}
