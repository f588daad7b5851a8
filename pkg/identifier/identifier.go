// pkg/identifier/identifier.go

package identifier

import (
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// MaxCount bounds one batch.
const MaxCount = 1000

var ErrUnsupportedVersion = cerr.New("unsupported UUID version")

// Options controls UUID rendering.
type Options struct {
	Count     int  `mapstructure:"count" validate:"min=1,max=1000"`
	Version   int  `mapstructure:"version" validate:"oneof=4 7"`
	Uppercase bool `mapstructure:"upper"`
	NoHyphens bool `mapstructure:"no_hyphens"`
}

// DefaultOptions is one lowercase hyphenated v4 UUID.
func DefaultOptions() Options {
	return Options{Count: 1, Version: 4}
}

// Generate returns opts.Count UUIDs. Version 7 values are time ordered.
func Generate(opts Options) ([]string, error) {
	if opts.Count < 1 || opts.Count > MaxCount {
		return nil, cerr.Newf("count must be between 1 and %d, got %d", MaxCount, opts.Count)
	}
	gen, err := generator(opts.Version)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, opts.Count)
	for range opts.Count {
		id, err := gen()
		if err != nil {
			return nil, cerr.Wrapf(err, "generate UUIDv%d", opts.Version)
		}
		out = append(out, Format(id, opts))
	}
	return out, nil
}

// Format renders id per opts.
func Format(id uuid.UUID, opts Options) string {
	s := id.String()
	if opts.NoHyphens {
		s = strings.ReplaceAll(s, "-", "")
	}
	if opts.Uppercase {
		s = strings.ToUpper(s)
	}
	return s
}

func generator(version int) (func() (uuid.UUID, error), error) {
	switch version {
	case 4:
		return uuid.NewRandom, nil
	case 7:
		return uuid.NewV7, nil
	}
	return nil, cerr.WithHint(cerr.Wrapf(ErrUnsupportedVersion, "v%d", version), "Use --version 4 or 7")
}
