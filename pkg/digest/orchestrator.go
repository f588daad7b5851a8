package digest

import (
	"context"
	"sort"

	cerr "github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Hash is one computed digest.
type Hash struct {
	Algorithm Algorithm `json:"algorithm"`
	Hex       string    `json:"hex"`
}

// Orchestrator computes several digests of the same buffer. MD5 always goes
// through the in-package engine; everything else goes to the Primitive.
type Orchestrator struct {
	primitive  Primitive
	algorithms []Algorithm
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithPrimitive replaces the digest primitive used for non-MD5 algorithms.
func WithPrimitive(p Primitive) Option {
	return func(o *Orchestrator) {
		if p != nil {
			o.primitive = p
		}
	}
}

// WithAlgorithms selects which digests Generate computes.
func WithAlgorithms(algs ...Algorithm) Option {
	return func(o *Orchestrator) {
		if len(algs) > 0 {
			o.algorithms = append([]Algorithm(nil), algs...)
		}
	}
}

func NewOrchestrator(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		primitive:  PlatformPrimitive{},
		algorithms: append([]Algorithm(nil), DefaultAlgorithms...),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Generate computes every configured digest concurrently. Results come back
// in display order regardless of which finished first.
func (o *Orchestrator) Generate(ctx context.Context, data []byte) ([]Hash, error) {
	algs := append([]Algorithm(nil), o.algorithms...)
	sort.SliceStable(algs, func(i, j int) bool { return algs[i].order() < algs[j].order() })

	out := make([]Hash, len(algs))
	g, gctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		g.Go(func() error {
			if alg == MD5Algorithm {
				out[i] = Hash{Algorithm: alg, Hex: MD5(data)}
				return nil
			}
			sum, err := o.primitive.Digest(gctx, alg, data)
			if err != nil {
				return cerr.Wrapf(err, "compute %s", alg)
			}
			out[i] = Hash{Algorithm: alg, Hex: EncodeHex(sum)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Map flattens hashes into algorithm name -> hex digest.
func Map(hashes []Hash) map[string]string {
	m := make(map[string]string, len(hashes))
	for _, h := range hashes {
		m[string(h.Algorithm)] = h.Hex
	}
	return m
}

// GenerateHashes returns MD5, SHA-1, SHA-256, SHA-384 and SHA-512 of data
// keyed by algorithm name.
func GenerateHashes(ctx context.Context, data []byte) (map[string]string, error) {
	hashes, err := NewOrchestrator().Generate(ctx, data)
	if err != nil {
		return nil, err
	}
	return Map(hashes), nil
}
