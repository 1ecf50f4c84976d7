package hpkecrypto_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/aead"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/kdf"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/kem"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/randsource"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewDefaultRegistry(t *testing.T) {
	p, err := hpkecrypto.New(hpkecrypto.Config{})
	require.NoError(t, err)
	require.Equal(t, "go-multi", p.Name())

	require.ElementsMatch(t, kem.IDs(), p.KEMs())
	require.ElementsMatch(t, kdf.IDs(), p.KDFs())
	require.ElementsMatch(t, aead.IDs(), p.AEADs())

	for _, id := range kem.IDs() {
		require.True(t, p.SupportsKEM(id), "missing %s", id)
		s, err := p.KEM(id)
		require.NoError(t, err)
		require.Equal(t, id, s.ID())
	}
	for _, id := range kdf.IDs() {
		require.True(t, p.SupportsKDF(id), "missing %s", id)
	}
	for _, id := range aead.IDs() {
		require.True(t, p.SupportsAEAD(id), "missing %s", id)
	}
}

func TestRestrictedRegistry(t *testing.T) {
	p, err := hpkecrypto.New(hpkecrypto.Config{
		KEMs:  []kem.ID{kem.DHKEMX25519},
		KDFs:  []kdf.ID{kdf.HKDFSHA256},
		AEADs: []aead.ID{aead.ChaCha20Poly1305},
	})
	require.NoError(t, err)

	require.True(t, p.SupportsKEM(kem.DHKEMX25519))
	require.False(t, p.SupportsKEM(kem.DHKEMP256))
	require.False(t, p.SupportsAEAD(aead.AES128GCM))

	_, err = p.KEM(kem.DHKEMP256)
	require.ErrorIs(t, err, hpkecrypto.ErrUnsupportedAlgorithm)
	_, err = p.KDF(kdf.HKDFSHA512)
	require.ErrorIs(t, err, hpkecrypto.ErrUnsupportedAlgorithm)
	_, err = p.AEAD(aead.AES256GCM)
	require.ErrorIs(t, err, hpkecrypto.ErrUnsupportedAlgorithm)

	// Operations through the facade fail the same way.
	_, err = p.GenerateKeyPair(kem.DHKEMP256)
	require.ErrorIs(t, err, hpkecrypto.ErrUnsupportedAlgorithm)
}

func TestNewRejectsUnknownIdentifier(t *testing.T) {
	_, err := hpkecrypto.New(hpkecrypto.Config{KEMs: []kem.ID{kem.ID(0x0042)}})
	require.ErrorIs(t, err, hpkecrypto.ErrUnsupportedAlgorithm)

	_, err = hpkecrypto.New(hpkecrypto.Config{KDFs: []kdf.ID{kdf.ID(0x0042)}})
	require.ErrorIs(t, err, hpkecrypto.ErrUnsupportedAlgorithm)

	_, err = hpkecrypto.New(hpkecrypto.Config{AEADs: []aead.ID{aead.ID(0x0042)}})
	require.ErrorIs(t, err, hpkecrypto.ErrUnsupportedAlgorithm)
}

func TestFacadeRoundTrip(t *testing.T) {
	p, err := hpkecrypto.New(hpkecrypto.Config{})
	require.NoError(t, err)

	for _, id := range []hpkecrypto.KemID{hpkecrypto.KemDHKEMX25519, hpkecrypto.KemDHKEMP256, hpkecrypto.KemXWing} {
		kp, err := p.GenerateKeyPair(id)
		require.NoError(t, err, "%s", id)
		require.Equal(t, id.PrivateKeySize(), kp.PrivateKey().Size(), "%s", id)
		require.Equal(t, id.PublicKeySize(), kp.PublicKey().Size(), "%s", id)

		ss, enc, err := p.Encapsulate(id, kp.PublicKey())
		require.NoError(t, err, "%s", id)

		got, err := p.Decapsulate(id, enc, kp.PrivateKey())
		require.NoError(t, err, "%s", id)
		require.True(t, bytes.Equal(ss, got), "%s shared secret mismatch", id)
	}
}

func TestDeriveKeyPairThroughFacade(t *testing.T) {
	p, err := hpkecrypto.New(hpkecrypto.Config{})
	require.NoError(t, err)

	ikm := make([]byte, 32)
	for i := range ikm {
		ikm[i] = byte(i * 3)
	}
	a, err := p.DeriveKeyPair(hpkecrypto.KemDHKEMX25519, ikm)
	require.NoError(t, err)
	b, err := p.DeriveKeyPair(hpkecrypto.KemDHKEMX25519, ikm)
	require.NoError(t, err)
	require.True(t, a.PrivateKey().Equal(b.PrivateKey()))
	require.True(t, a.PublicKey().Equal(b.PublicKey()))
}

// TestDeterministicProviderReproducibility verifies two providers bound to
// the same deterministic seed emit identical key material.
func TestDeterministicProviderReproducibility(t *testing.T) {
	var seed [randsource.SeedSize]byte
	seed[0] = 0x42

	build := func() *hpkecrypto.Provider {
		p, err := hpkecrypto.New(hpkecrypto.Config{Rand: randsource.NewDeterministic(seed)})
		require.NoError(t, err)
		return p
	}

	kpA, err := build().GenerateKeyPair(hpkecrypto.KemDHKEMX25519)
	require.NoError(t, err)
	kpB, err := build().GenerateKeyPair(hpkecrypto.KemDHKEMX25519)
	require.NoError(t, err)

	require.True(t, kpA.PrivateKey().Equal(kpB.PrivateKey()))
	require.True(t, kpA.PublicKey().Equal(kpB.PublicKey()))
}

// TestConcurrentDispatch exercises one Provider from many goroutines; the
// registry is immutable, so no synchronization is expected or provided.
func TestConcurrentDispatch(t *testing.T) {
	p, err := hpkecrypto.New(hpkecrypto.Config{})
	require.NoError(t, err)

	kp, err := p.GenerateKeyPair(hpkecrypto.KemDHKEMX25519)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ss, enc, err := p.Encapsulate(hpkecrypto.KemDHKEMX25519, kp.PublicKey())
			if err != nil {
				errCh <- err
				return
			}
			got, err := p.Decapsulate(hpkecrypto.KemDHKEMX25519, enc, kp.PrivateKey())
			if err != nil {
				errCh <- err
				return
			}
			if !bytes.Equal(ss, got) {
				errCh <- errors.New("shared secret mismatch")
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
}

func TestErrorCarriesOperation(t *testing.T) {
	p, err := hpkecrypto.New(hpkecrypto.Config{KEMs: []kem.ID{kem.DHKEMX25519}})
	require.NoError(t, err)

	_, err = p.GenerateKeyPair(kem.DHKEMP256)
	require.Error(t, err)

	var opErr *hpkecrypto.Error
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, "GenerateKeyPair", opErr.Op)
}
