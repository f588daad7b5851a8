package digest

import (
	"context"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"

	cerr "github.com/cockroachdb/errors"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Primitive computes one digest for the orchestrator. MD5 never reaches it;
// the orchestrator runs the in-package engine for that.
type Primitive interface {
	Digest(ctx context.Context, alg Algorithm, data []byte) ([]byte, error)
}

// PlatformPrimitive backs the SHA family with the Go crypto packages and the
// extended set with x/crypto and BLAKE3.
type PlatformPrimitive struct{}

var _ Primitive = PlatformPrimitive{}

func (PlatformPrimitive) Digest(ctx context.Context, alg Algorithm, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch alg {
	case SHA1:
		sum := sha1.Sum(data)
		return sum[:], nil
	case SHA256:
		sum := sha256.Sum256(data)
		return sum[:], nil
	case SHA384:
		sum := sha512.Sum384(data)
		return sum[:], nil
	case SHA512:
		sum := sha512.Sum512(data)
		return sum[:], nil
	case SHA3_256:
		sum := sha3.Sum256(data)
		return sum[:], nil
	case SHA3_512:
		sum := sha3.Sum512(data)
		return sum[:], nil
	case BLAKE2b512:
		sum := blake2b.Sum512(data)
		return sum[:], nil
	case BLAKE3:
		sum := blake3.Sum256(data)
		return sum[:], nil
	}
	return nil, cerr.Wrapf(ErrUnsupportedAlgorithm, "%q", string(alg))
}
