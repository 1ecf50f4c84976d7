package kem

import (
	"encoding/binary"
	"fmt"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/kdf"
)

// ID identifies a KEM algorithm. The values are the RFC 9180 KEM registry
// values plus the draft secp256k1 and X-Wing assignments.
type ID uint16

// Supported KEM identifiers.
const (
	DHKEMP256      ID = 0x0010
	DHKEMP384      ID = 0x0011
	DHKEMP521      ID = 0x0012
	DHKEMSecp256k1 ID = 0x0016
	DHKEMX25519    ID = 0x0020
	DHKEMX448      ID = 0x0021
	XWing          ID = 0x004D
)

// IDs returns all KEM identifiers this package implements.
func IDs() []ID {
	return []ID{DHKEMP256, DHKEMP384, DHKEMP521, DHKEMSecp256k1, DHKEMX25519, DHKEMX448, XWing}
}

// ParseID converts a wire value into a KEM identifier.
func ParseID(v uint16) (ID, error) {
	switch id := ID(v); id {
	case DHKEMP256, DHKEMP384, DHKEMP521, DHKEMSecp256k1, DHKEMX25519, DHKEMX448, XWing:
		return id, nil
	default:
		return 0, fmt.Errorf("%w: kem id 0x%04x", errs.ErrUnsupportedAlgorithm, v)
	}
}

// String returns a human-readable name for the identifier.
func (id ID) String() string {
	switch id {
	case DHKEMP256:
		return "DHKEM(P-256)"
	case DHKEMP384:
		return "DHKEM(P-384)"
	case DHKEMP521:
		return "DHKEM(P-521)"
	case DHKEMSecp256k1:
		return "DHKEM(secp256k1)"
	case DHKEMX25519:
		return "DHKEM(X25519)"
	case DHKEMX448:
		return "DHKEM(X448)"
	case XWing:
		return "X-Wing"
	default:
		return "Unknown"
	}
}

// PrivateKeySize returns the serialized private key size (Nsk) in bytes.
func (id ID) PrivateKeySize() int {
	switch id {
	case DHKEMP256, DHKEMSecp256k1, DHKEMX25519, XWing:
		return 32
	case DHKEMP384:
		return 48
	case DHKEMP521:
		return 66
	case DHKEMX448:
		return 56
	default:
		return 0
	}
}

// PublicKeySize returns the serialized public key size (Npk) in bytes.
// NIST and secp256k1 public keys use the uncompressed point encoding.
func (id ID) PublicKeySize() int {
	switch id {
	case DHKEMP256, DHKEMSecp256k1:
		return 65
	case DHKEMP384:
		return 97
	case DHKEMP521:
		return 133
	case DHKEMX25519:
		return 32
	case DHKEMX448:
		return 56
	case XWing:
		return 1216
	default:
		return 0
	}
}

// EncapsulatedKeySize returns the encapsulated key size (Nenc) in bytes.
// For the DH KEMs this equals the public key size.
func (id ID) EncapsulatedKeySize() int {
	if id == XWing {
		return 1120
	}
	return id.PublicKeySize()
}

// SharedSecretSize returns the shared secret size (Nsecret) in bytes.
func (id ID) SharedSecretSize() int {
	switch id {
	case DHKEMP256, DHKEMSecp256k1, DHKEMX25519, XWing:
		return 32
	case DHKEMP384:
		return 48
	case DHKEMP521, DHKEMX448:
		return 64
	default:
		return 0
	}
}

// KDFID returns the KDF identifier bound to this KEM's internal
// shared-secret derivation.
func (id ID) KDFID() kdf.ID {
	switch id {
	case DHKEMP384:
		return kdf.HKDFSHA384
	case DHKEMP521, DHKEMX448, XWing:
		return kdf.HKDFSHA512
	default:
		return kdf.HKDFSHA256
	}
}

// suiteID returns the RFC 9180 KEM suite identifier used for domain
// separation in the labeled KDF calls.
func (id ID) suiteID() []byte {
	suite := make([]byte, 5)
	copy(suite, "KEM")
	binary.BigEndian.PutUint16(suite[3:], uint16(id))
	return suite
}
