package kdf_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/kdf"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex constant: %v", err)
	}
	return b
}

// TestExtractExpandRFC5869 checks Extract and Expand against RFC 5869
// test case 1.
func TestExtractExpandRFC5869(t *testing.T) {
	k, err := kdf.New(kdf.HKDFSHA256)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ikm := mustHex(t, "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt := mustHex(t, "000102030405060708090a0b0c")
	info := mustHex(t, "f0f1f2f3f4f5f6f7f8f9")
	wantPRK := mustHex(t, "077709362c2e32df0ddc3f0dc47bba6390b6c73bb50f9c3122ec844ad7c2b3e5")
	wantOKM := mustHex(t, "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865")

	prk := k.Extract(salt, ikm)
	if !bytes.Equal(prk, wantPRK) {
		t.Fatalf("Extract mismatch")
	}

	okm, err := k.Expand(prk, info, len(wantOKM))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !bytes.Equal(okm, wantOKM) {
		t.Fatalf("Expand mismatch")
	}
}

func TestExtractSizes(t *testing.T) {
	tests := []struct {
		id   kdf.ID
		want int
	}{
		{kdf.HKDFSHA256, 32},
		{kdf.HKDFSHA384, 48},
		{kdf.HKDFSHA512, 64},
	}
	for _, tc := range tests {
		if got := tc.id.ExtractSize(); got != tc.want {
			t.Fatalf("%s ExtractSize: got %d, want %d", tc.id, got, tc.want)
		}
		k, err := kdf.New(tc.id)
		if err != nil {
			t.Fatalf("New(%s): %v", tc.id, err)
		}
		prk := k.Extract(nil, []byte("ikm"))
		if len(prk) != tc.want {
			t.Fatalf("%s Extract output: got %d bytes, want %d", tc.id, len(prk), tc.want)
		}
	}
}

// TestExpandLengthBound verifies the 255-block expansion limit is
// enforced before any output is produced, and that the exact bound
// succeeds.
func TestExpandLengthBound(t *testing.T) {
	for _, id := range kdf.IDs() {
		k, err := kdf.New(id)
		if err != nil {
			t.Fatalf("New(%s): %v", id, err)
		}
		prk := k.Extract(nil, []byte("ikm"))

		max := 255 * id.ExtractSize()
		okm, err := k.Expand(prk, nil, max)
		if err != nil {
			t.Fatalf("%s Expand at bound: %v", id, err)
		}
		if len(okm) != max {
			t.Fatalf("%s Expand at bound: got %d bytes, want %d", id, len(okm), max)
		}

		if _, err := k.Expand(prk, nil, max+1); !errors.Is(err, errs.ErrInvalidLength) {
			t.Fatalf("%s Expand over bound: got %v, want ErrInvalidLength", id, err)
		}
		if _, err := k.Expand(prk, nil, -1); !errors.Is(err, errs.ErrInvalidLength) {
			t.Fatalf("%s Expand negative: got %v, want ErrInvalidLength", id, err)
		}
	}
}

func TestExpandZeroLength(t *testing.T) {
	k, err := kdf.New(kdf.HKDFSHA256)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	okm, err := k.Expand(k.Extract(nil, []byte("ikm")), nil, 0)
	if err != nil {
		t.Fatalf("Expand(0): %v", err)
	}
	if len(okm) != 0 {
		t.Fatalf("Expand(0): got %d bytes", len(okm))
	}
}

// TestExtractEmptySalt verifies nil and empty salt behave identically,
// per the HKDF zero-salt convention.
func TestExtractEmptySalt(t *testing.T) {
	k, err := kdf.New(kdf.HKDFSHA256)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ikm := []byte("input keying material")
	if !bytes.Equal(k.Extract(nil, ikm), k.Extract([]byte{}, ikm)) {
		t.Fatalf("nil and empty salt diverge")
	}
}

// TestLabeledDeterminism verifies the labeled forms are deterministic and
// sensitive to every framing component.
func TestLabeledDeterminism(t *testing.T) {
	k, err := kdf.New(kdf.HKDFSHA256)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	suite := []byte("KEM\x00\x20")
	ikm := []byte("seed material")

	a := k.LabeledExtract(nil, suite, "dkp_prk", ikm)
	b := k.LabeledExtract(nil, suite, "dkp_prk", ikm)
	if !bytes.Equal(a, b) {
		t.Fatalf("LabeledExtract not deterministic")
	}
	if bytes.Equal(a, k.LabeledExtract(nil, suite, "eae_prk", ikm)) {
		t.Fatalf("LabeledExtract ignores label")
	}
	if bytes.Equal(a, k.LabeledExtract(nil, []byte("KEM\x00\x21"), "dkp_prk", ikm)) {
		t.Fatalf("LabeledExtract ignores suite id")
	}

	x, err := k.LabeledExpand(a, suite, "sk", nil, 32)
	if err != nil {
		t.Fatalf("LabeledExpand: %v", err)
	}
	y, err := k.LabeledExpand(a, suite, "sk", nil, 32)
	if err != nil {
		t.Fatalf("LabeledExpand: %v", err)
	}
	if !bytes.Equal(x, y) {
		t.Fatalf("LabeledExpand not deterministic")
	}
	z, err := k.LabeledExpand(a, suite, "candidate", nil, 32)
	if err != nil {
		t.Fatalf("LabeledExpand: %v", err)
	}
	if bytes.Equal(x, z) {
		t.Fatalf("LabeledExpand ignores label")
	}
}

func TestLabeledExpandLengthBound(t *testing.T) {
	k, err := kdf.New(kdf.HKDFSHA256)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	prk := k.Extract(nil, []byte("ikm"))
	if _, err := k.LabeledExpand(prk, []byte("KEM\x00\x20"), "sk", nil, 255*32+1); !errors.Is(err, errs.ErrInvalidLength) {
		t.Fatalf("got %v, want ErrInvalidLength", err)
	}
}

func TestParseID(t *testing.T) {
	for _, id := range kdf.IDs() {
		got, err := kdf.ParseID(uint16(id))
		if err != nil {
			t.Fatalf("ParseID(%s): %v", id, err)
		}
		if got != id {
			t.Fatalf("ParseID(%s): got %s", id, got)
		}
	}
	if _, err := kdf.ParseID(0x0042); !errors.Is(err, errs.ErrUnsupportedAlgorithm) {
		t.Fatalf("ParseID(unknown): got %v, want ErrUnsupportedAlgorithm", err)
	}
}

func TestNewUnsupported(t *testing.T) {
	if _, err := kdf.New(kdf.ID(0x0042)); !errors.Is(err, errs.ErrUnsupportedAlgorithm) {
		t.Fatalf("got %v, want ErrUnsupportedAlgorithm", err)
	}
}
