// pkg/minify/minify.go

// Package minify strips comments and insignificant whitespace from CSS,
// JSON, SQL and XML.
package minify

import (
	"sort"
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// Format names a supported input language.
type Format string

const (
	CSS  Format = "css"
	JSON Format = "json"
	SQL  Format = "sql"
	XML  Format = "xml"
)

var (
	// ErrInvalidJSON marks JSON inputs that fail to parse.
	ErrInvalidJSON = cerr.New("invalid JSON")
	// ErrUnknownFormat is returned for a format with no minifier.
	ErrUnknownFormat = cerr.New("unknown minify format")
	// ErrEmptyInput is returned when the trimmed input is empty.
	ErrEmptyInput = cerr.New("Please paste some content to minify.")
)

// Options tune individual minifiers.
type Options struct {
	// AllowComments lets JSON input carry // and /* */ comments and
	// trailing commas.
	AllowComments bool `mapstructure:"allow_comments" json:"allow_comments"`
}

// Func minifies one document.
type Func func(input string, opts Options) (string, error)

var registry = map[Format]Func{
	CSS:  lexical(cssRules),
	JSON: minifyJSON,
	SQL:  lexical(sqlRules),
	XML:  lexical(xmlRules),
}

// Formats lists the registered formats alphabetically.
func Formats() []Format {
	out := make([]Format, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseFormat accepts a format name in any case.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := registry[f]; !ok {
		return "", cerr.WithHintf(cerr.Wrapf(ErrUnknownFormat, "%q", name),
			"Supported formats: %v", Formats())
	}
	return f, nil
}

// Minify runs the minifier for format over input. Only JSON can fail on
// well-formed calls.
func Minify(format Format, input string, opts Options) (string, error) {
	fn, ok := registry[format]
	if !ok {
		return "", cerr.Wrapf(ErrUnknownFormat, "%q", string(format))
	}
	return fn(input, opts)
}

// MinifyCSS strips comments, spacing around { } : ; , > ~ + and the last
// semicolon of each block.
func MinifyCSS(input string) string {
	return applyRules(cssRules, input)
}

// MinifySQL strips -- and /* */ comments and collapses whitespace. Comment
// markers inside string literals are stripped too.
func MinifySQL(input string) string {
	return applyRules(sqlRules, input)
}

// MinifyXML strips <!-- --> comments and whitespace between tags.
func MinifyXML(input string) string {
	return applyRules(xmlRules, input)
}

// MinifyJSON re-serialises input without insignificant whitespace.
func MinifyJSON(input string) (string, error) {
	return minifyJSON(input, Options{})
}
