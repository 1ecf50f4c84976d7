package hpkecrypto

import (
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/aead"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/kdf"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/kem"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/randsource"
)

// Type aliases so callers can work against the facade package without
// importing the algorithm family subpackages.

// KemID is an alias for kem.ID.
type KemID = kem.ID

// KdfID is an alias for kdf.ID.
type KdfID = kdf.ID

// AeadID is an alias for aead.ID.
type AeadID = aead.ID

// Source is an alias for randsource.Source.
type Source = randsource.Source

// KEM identifier constants re-exported from the kem package.
const (
	KemDHKEMP256      = kem.DHKEMP256
	KemDHKEMP384      = kem.DHKEMP384
	KemDHKEMP521      = kem.DHKEMP521
	KemDHKEMSecp256k1 = kem.DHKEMSecp256k1
	KemDHKEMX25519    = kem.DHKEMX25519
	KemDHKEMX448      = kem.DHKEMX448
	KemXWing          = kem.XWing
)

// KDF identifier constants re-exported from the kdf package.
const (
	KdfHKDFSHA256 = kdf.HKDFSHA256
	KdfHKDFSHA384 = kdf.HKDFSHA384
	KdfHKDFSHA512 = kdf.HKDFSHA512
)

// AEAD identifier constants re-exported from the aead package.
const (
	AeadAES128GCM        = aead.AES128GCM
	AeadAES256GCM        = aead.AES256GCM
	AeadChaCha20Poly1305 = aead.ChaCha20Poly1305
	AeadExportOnly       = aead.ExportOnly
)
