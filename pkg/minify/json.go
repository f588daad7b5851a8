// pkg/minify/json.go

package minify

import (
	"bytes"
	"encoding/json"

	cerr "github.com/cockroachdb/errors"
	"github.com/tidwall/jsonc"
)

// minifyJSON validates input and compacts it. Key order, duplicate keys and
// number spelling are kept as written, so parsing the output yields the same
// value as parsing the input.
func minifyJSON(input string, opts Options) (string, error) {
	src := []byte(input)
	if opts.AllowComments {
		src = jsonc.ToJSON(src)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, src); err != nil {
		return "", cerr.Mark(describeJSONError(err, src), ErrInvalidJSON)
	}
	return buf.String(), nil
}

// describeJSONError adds line and column to syntax errors.
func describeJSONError(err error, src []byte) error {
	var syn *json.SyntaxError
	if !cerr.As(err, &syn) {
		return cerr.Wrap(err, "invalid JSON")
	}
	// Offset counts the bytes read including the offending one.
	end := max(0, min(int(syn.Offset)-1, len(src)))
	line, col := 1, 1
	for _, b := range src[:end] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return cerr.WithHint(
		cerr.Newf("invalid JSON at line %d, column %d: %s", line, col, syn.Error()),
		"Check for missing quotes, commas or closing brackets")
}
