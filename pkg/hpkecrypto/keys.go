package hpkecrypto

import (
	"crypto/subtle"
	"log/slog"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/logging"
)

// PublicKey is an opaque serialized public key. The byte representation
// follows the owning KEM identifier's fixed encoding.
type PublicKey struct {
	value []byte
}

// NewPublicKey copies the given bytes into a PublicKey.
func NewPublicKey(b []byte) PublicKey {
	value := make([]byte, len(b))
	copy(value, b)
	return PublicKey{value: value}
}

// Bytes returns a defensive copy of the key bytes.
func (k PublicKey) Bytes() []byte {
	out := make([]byte, len(k.value))
	copy(out, k.value)
	return out
}

// Size returns the serialized length in bytes.
func (k PublicKey) Size() int {
	return len(k.value)
}

// Equal reports whether two public keys hold the same bytes.
func (k PublicKey) Equal(other PublicKey) bool {
	return len(k.value) == len(other.value) &&
		subtle.ConstantTimeCompare(k.value, other.value) == 1
}

// PrivateKey is opaque serialized private key material. The bytes are
// copied on construction, compared in constant time, rendered redacted by
// String and LogValue, and released by Zeroize.
type PrivateKey struct {
	value []byte
}

// NewPrivateKey copies the given bytes into a PrivateKey. The caller
// should zeroize its own copy when no longer needed.
func NewPrivateKey(b []byte) PrivateKey {
	value := make([]byte, len(b))
	copy(value, b)
	return PrivateKey{value: value}
}

// Bytes returns a defensive copy of the key bytes. Callers must zeroize
// the copy after use.
func (k PrivateKey) Bytes() []byte {
	out := make([]byte, len(k.value))
	copy(out, k.value)
	return out
}

// Size returns the serialized length in bytes.
func (k PrivateKey) Size() int {
	return len(k.value)
}

// Equal compares two private keys in constant time for equal lengths.
func (k PrivateKey) Equal(other PrivateKey) bool {
	return len(k.value) == len(other.value) &&
		subtle.ConstantTimeCompare(k.value, other.value) == 1
}

// String always returns the redaction placeholder, never key bytes.
func (k PrivateKey) String() string {
	return logging.Placeholder()
}

// LogValue implements slog.LogValuer so a PrivateKey passed to a logger
// renders redacted.
func (k PrivateKey) LogValue() slog.Value {
	return slog.StringValue(logging.Placeholder())
}

// Zeroize overwrites the key material in place. The key is unusable
// afterwards.
func (k PrivateKey) Zeroize() {
	ZeroizeBytes(k.value)
}

// KeyPair holds a private and public key produced together.
type KeyPair struct {
	privateKey PrivateKey
	publicKey  PublicKey
}

// NewKeyPair builds a KeyPair from raw key bytes, copying both.
func NewKeyPair(sk, pk []byte) KeyPair {
	return KeyPair{
		privateKey: NewPrivateKey(sk),
		publicKey:  NewPublicKey(pk),
	}
}

// PrivateKey returns the private half.
func (kp KeyPair) PrivateKey() PrivateKey {
	return kp.privateKey
}

// PublicKey returns the public half.
func (kp KeyPair) PublicKey() PublicKey {
	return kp.publicKey
}

// IntoKeys splits the pair into its two keys.
func (kp KeyPair) IntoKeys() (PrivateKey, PublicKey) {
	return kp.privateKey, kp.publicKey
}
