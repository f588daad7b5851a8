// pkg/minify/stats.go

package minify

import (
	"bytes"
	"fmt"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Result is a minified document with size statistics.
type Result struct {
	Format        Format `json:"format"`
	Output        string `json:"output"`
	OriginalBytes int    `json:"original_bytes"`
	MinifiedBytes int    `json:"minified_bytes"`
	// Savings is (1 - minified/original) * 100 with one decimal, "0" for empty input.
	Savings   string `json:"savings_percent"`
	GzipBytes int    `json:"gzip_bytes"`
	ZstdBytes int    `json:"zstd_bytes"`
}

// Run trims input, rejects empty content, minifies it and measures the
// result. OriginalBytes counts the input as given, before trimming.
func Run(format Format, input string, opts Options) (*Result, error) {
	raw := strings.TrimFunc(input, isSpace)
	if raw == "" {
		return nil, ErrEmptyInput
	}
	out, err := Minify(format, raw, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Format:        format,
		Output:        out,
		OriginalBytes: len(input),
		MinifiedBytes: len(out),
		Savings:       SavingsPercent(len(input), len(out)),
	}
	if res.GzipBytes, err = gzipSize([]byte(out)); err != nil {
		return nil, err
	}
	res.ZstdBytes, err = zstdSize([]byte(out))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// SavingsPercent formats the size reduction with one decimal.
func SavingsPercent(original, minified int) string {
	if original == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", (1-float64(minified)/float64(original))*100)
}

func gzipSize(b []byte) (int, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return 0, cerr.Wrap(err, "create gzip writer")
	}
	if _, err := zw.Write(b); err != nil {
		return 0, cerr.Wrap(err, "gzip output")
	}
	if err := zw.Close(); err != nil {
		return 0, cerr.Wrap(err, "flush gzip output")
	}
	return buf.Len(), nil
}

func zstdSize(b []byte) (int, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, cerr.Wrap(err, "create zstd encoder")
	}
	defer func() { _ = enc.Close() }()
	return len(enc.EncodeAll(b, nil)), nil
}
