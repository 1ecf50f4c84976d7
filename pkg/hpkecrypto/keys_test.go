package hpkecrypto_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto"
)

func TestKeyDefensiveCopies(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	sk := hpkecrypto.NewPrivateKey(raw)

	// Mutating the input after construction must not reach the key.
	raw[0] = 0xff
	require.Equal(t, []byte{1, 2, 3, 4}, sk.Bytes())

	// Mutating a returned copy must not reach the key either.
	out := sk.Bytes()
	out[1] = 0xff
	require.Equal(t, []byte{1, 2, 3, 4}, sk.Bytes())

	pk := hpkecrypto.NewPublicKey(raw)
	raw[1] = 0x00
	require.Equal(t, []byte{0xff, 2, 3, 4}, pk.Bytes())
}

func TestPrivateKeyNeverPrintsMaterial(t *testing.T) {
	sk := hpkecrypto.NewPrivateKey([]byte{0xde, 0xad, 0xbe, 0xef})

	require.Equal(t, "[redacted]", sk.String())
	require.Equal(t, "[redacted]", fmt.Sprintf("%v", sk))
	require.Equal(t, "[redacted]", sk.LogValue().String())
}

func TestKeyEquality(t *testing.T) {
	a := hpkecrypto.NewPrivateKey([]byte{1, 2, 3})
	b := hpkecrypto.NewPrivateKey([]byte{1, 2, 3})
	c := hpkecrypto.NewPrivateKey([]byte{1, 2, 4})
	d := hpkecrypto.NewPrivateKey([]byte{1, 2})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(d))

	pa := hpkecrypto.NewPublicKey([]byte{9, 9})
	pb := hpkecrypto.NewPublicKey([]byte{9, 9})
	require.True(t, pa.Equal(pb))
	require.False(t, pa.Equal(hpkecrypto.NewPublicKey([]byte{9, 8})))
}

func TestPrivateKeyZeroize(t *testing.T) {
	sk := hpkecrypto.NewPrivateKey([]byte{5, 6, 7, 8})
	sk.Zeroize()
	require.True(t, bytes.Equal(sk.Bytes(), make([]byte, 4)))
}

func TestKeyPairAccessors(t *testing.T) {
	kp := hpkecrypto.NewKeyPair([]byte{1, 1}, []byte{2, 2})

	require.Equal(t, []byte{1, 1}, kp.PrivateKey().Bytes())
	require.Equal(t, []byte{2, 2}, kp.PublicKey().Bytes())
	require.Equal(t, 2, kp.PrivateKey().Size())

	sk, pk := kp.IntoKeys()
	require.Equal(t, []byte{1, 1}, sk.Bytes())
	require.Equal(t, []byte{2, 2}, pk.Bytes())
}

func TestZeroizeBytes(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	hpkecrypto.ZeroizeBytes(buf)
	require.Equal(t, make([]byte, 5), buf)
}
