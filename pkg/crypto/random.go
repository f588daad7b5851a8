// pkg/crypto/random.go

package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	cerr "github.com/cockroachdb/errors"
)

// ErrInvalidRange is returned by PickUniform for a range outside (0, 2^32].
var ErrInvalidRange = cerr.New("random range must be between 1 and 2^32")

// Source yields uniformly distributed 32-bit values. Implementations used
// outside tests must be backed by a CSPRNG.
type Source interface {
	Uint32() (uint32, error)
}

// CryptoSource reads from crypto/rand. It is the only Source the CLI uses.
type CryptoSource struct {
	// Reader overrides crypto/rand.Reader; nil means the system CSPRNG.
	Reader io.Reader
}

func (c CryptoSource) Uint32() (uint32, error) {
	r := c.Reader
	if r == nil {
		r = rand.Reader
	}
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, cerr.Wrap(err, "read system random")
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// PickUniform returns an integer in [0, n) with every value equally likely.
// Draws at or above the largest multiple of n that fits in 32 bits are
// rejected and redrawn so the final reduction carries no modulo bias.
func PickUniform(src Source, n int) (int, error) {
	if n <= 0 || uint64(n) > 1<<32 {
		return 0, cerr.Wrapf(ErrInvalidRange, "got %d", n)
	}
	size := uint64(n)
	limit := (1 << 32) / size * size
	for {
		v, err := src.Uint32()
		if err != nil {
			return 0, err
		}
		if uint64(v) < limit {
			return int(uint64(v) % size), nil
		}
	}
}

// Shuffle permutes b in place with Fisher-Yates, each swap index drawn
// through PickUniform.
func Shuffle(src Source, b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := PickUniform(src, i+1)
		if err != nil {
			return cerr.Wrap(err, "shuffle")
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
