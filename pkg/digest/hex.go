package digest

import (
	"encoding/hex"
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// EncodeHex renders b as a lowercase hex string of length 2*len(b).
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex parses a hex digest, ignoring case and surrounding whitespace.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return nil, cerr.Wrapf(err, "parse hex digest %q", s)
	}
	return b, nil
}
