package randsource

import (
	"crypto/rand"
	"fmt"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto/errs"
)

// Source produces random bytes for key generation and ephemeral secrets.
//
// Fill writes random bytes into the caller-supplied buffer. It succeeds
// only if the full buffer was written; on failure the buffer contents are
// unspecified and must not be used.
type Source interface {
	Fill(buf []byte) error
}

// Secure returns the production randomness source backed by the operating
// system's entropy pool via crypto/rand.
//
// The returned source is stateless and safe for concurrent use.
func Secure() Source {
	return secureSource{}
}

type secureSource struct{}

func (secureSource) Fill(buf []byte) error {
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrEntropyUnavailable, err)
	}
	return nil
}
