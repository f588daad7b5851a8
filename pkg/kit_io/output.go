// pkg/kit_io/output.go

package kit_io

import (
	"encoding/json"
	"io"
	"os"

	cerr "github.com/cockroachdb/errors"
)

// Color modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorEnabled decides whether ANSI colour goes to w. In auto mode colour
// needs a terminal and no NO_COLOR variable.
func ColorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return IsTerminal(w)
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return cerr.Wrap(err, "encode JSON output")
	}
	return nil
}
