package digest

import (
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// Algorithm is the display name of a digest algorithm, also used as the
// key in generated hash maps.
type Algorithm string

const (
	MD5Algorithm Algorithm = "MD5"
	SHA1         Algorithm = "SHA-1"
	SHA256       Algorithm = "SHA-256"
	SHA384       Algorithm = "SHA-384"
	SHA512       Algorithm = "SHA-512"
	SHA3_256     Algorithm = "SHA3-256"
	SHA3_512     Algorithm = "SHA3-512"
	BLAKE2b512   Algorithm = "BLAKE2b-512"
	BLAKE3       Algorithm = "BLAKE3"
)

// ErrUnsupportedAlgorithm is returned for names outside the known set.
var ErrUnsupportedAlgorithm = cerr.New("unsupported digest algorithm")

// DefaultAlgorithms is the set produced by GenerateHashes, in display order.
var DefaultAlgorithms = []Algorithm{MD5Algorithm, SHA1, SHA256, SHA384, SHA512}

var allAlgorithms = []Algorithm{
	MD5Algorithm, SHA1, SHA256, SHA384, SHA512,
	SHA3_256, SHA3_512, BLAKE2b512, BLAKE3,
}

var digestSizes = map[Algorithm]int{
	MD5Algorithm: MD5Size,
	SHA1:         20,
	SHA256:       32,
	SHA384:       48,
	SHA512:       64,
	SHA3_256:     32,
	SHA3_512:     64,
	BLAKE2b512:   64,
	BLAKE3:       32,
}

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(allAlgorithms))
	copy(out, allAlgorithms)
	return out
}

// Size is the digest length in bytes, 0 for unknown algorithms.
func (a Algorithm) Size() int {
	return digestSizes[a]
}

func (a Algorithm) String() string { return string(a) }

// order is the position of a in display order; unknown algorithms sort last.
func (a Algorithm) order() int {
	for i, known := range allAlgorithms {
		if known == a {
			return i
		}
	}
	return len(allAlgorithms)
}

// ParseAlgorithm accepts display names case-insensitively, with or without
// the hyphen ("sha256", "SHA-256", "blake2b512").
func ParseAlgorithm(name string) (Algorithm, error) {
	want := normalizeName(name)
	for _, alg := range allAlgorithms {
		if normalizeName(string(alg)) == want {
			return alg, nil
		}
	}
	return "", cerr.Wrapf(ErrUnsupportedAlgorithm, "%q", name)
}

// ParseAlgorithms parses a list, dropping duplicates while keeping first-seen order.
func ParseAlgorithms(names []string) ([]Algorithm, error) {
	seen := make(map[Algorithm]struct{}, len(names))
	out := make([]Algorithm, 0, len(names))
	for _, name := range names {
		alg, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[alg]; dup {
			continue
		}
		seen[alg] = struct{}{}
		out = append(out, alg)
	}
	return out, nil
}

func normalizeName(s string) string {
	return strings.ToUpper(strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(s)))
}
