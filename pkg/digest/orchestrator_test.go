package digest

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrimitive struct {
	calls atomic.Int32
	fail  Algorithm
}

func (f *fakePrimitive) Digest(_ context.Context, alg Algorithm, data []byte) ([]byte, error) {
	f.calls.Add(1)
	if alg == f.fail {
		return nil, errors.New("primitive offline")
	}
	return append([]byte(alg), data...), nil
}

func TestGenerateHashesKnownValues(t *testing.T) {
	t.Parallel()
	got, err := GenerateHashes(context.Background(), []byte("abc"))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"MD5":     "900150983cd24fb0d6963f7d28e17f72",
		"SHA-1":   "a9993e364706816aba3e25717850c26c9cd0d89d",
		"SHA-256": "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		"SHA-384": "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7",
		"SHA-512": "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
	}, got)
}

func TestGenerateHashesMD5ConsistentWithEngine(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "a", "The quick brown fox jumps over the lazy dog", string(make([]byte, 200))} {
		got, err := GenerateHashes(context.Background(), []byte(in))
		require.NoError(t, err)
		assert.Equal(t, MD5([]byte(in)), got["MD5"])
	}
}

func TestOrchestratorExtendedAlgorithms(t *testing.T) {
	t.Parallel()
	o := NewOrchestrator(WithAlgorithms(BLAKE3, SHA3_256, BLAKE2b512, SHA3_512))
	hashes, err := o.Generate(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, hashes, 4)

	// display order, not request order
	assert.Equal(t, SHA3_256, hashes[0].Algorithm)
	assert.Equal(t, SHA3_512, hashes[1].Algorithm)
	assert.Equal(t, BLAKE2b512, hashes[2].Algorithm)
	assert.Equal(t, BLAKE3, hashes[3].Algorithm)

	assert.Equal(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", hashes[0].Hex)
	assert.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", hashes[3].Hex)
	for _, h := range hashes {
		assert.Len(t, h.Hex, 2*h.Algorithm.Size(), h.Algorithm)
	}
}

func TestOrchestratorUsesInjectedPrimitive(t *testing.T) {
	t.Parallel()
	fake := &fakePrimitive{}
	hashes, err := NewOrchestrator(WithPrimitive(fake)).Generate(context.Background(), []byte{0x01})
	require.NoError(t, err)

	assert.EqualValues(t, 4, fake.calls.Load(), "MD5 must not reach the primitive")
	m := Map(hashes)
	assert.Equal(t, MD5([]byte{0x01}), m["MD5"])
	assert.Equal(t, EncodeHex(append([]byte("SHA-1"), 0x01)), m["SHA-1"])
}

func TestOrchestratorPrimitiveFailure(t *testing.T) {
	t.Parallel()
	fake := &fakePrimitive{fail: SHA384}
	_, err := NewOrchestrator(WithPrimitive(fake)).Generate(context.Background(), []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compute SHA-384")
}

func TestPlatformPrimitiveRejectsUnknown(t *testing.T) {
	t.Parallel()
	_, err := PlatformPrimitive{}.Digest(context.Background(), Algorithm("CRC32"), nil)
	require.Error(t, err)
	assert.True(t, cerr.Is(err, ErrUnsupportedAlgorithm))
}

func TestPlatformPrimitiveHonoursCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := PlatformPrimitive{}.Digest(ctx, SHA256, []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()
	tests := map[string]Algorithm{
		"md5":         MD5Algorithm,
		"SHA-1":       SHA1,
		"sha256":      SHA256,
		" Sha_384 ":   SHA384,
		"sha3-512":    SHA3_512,
		"blake2b-512": BLAKE2b512,
		"BLAKE3":      BLAKE3,
	}
	for in, want := range tests {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAlgorithm("whirlpool")
	assert.True(t, cerr.Is(err, ErrUnsupportedAlgorithm))
}

func TestParseAlgorithmsDeduplicates(t *testing.T) {
	t.Parallel()
	got, err := ParseAlgorithms([]string{"sha256", "MD5", "SHA-256"})
	require.NoError(t, err)
	assert.Equal(t, []Algorithm{SHA256, MD5Algorithm}, got)
}
