// pkg/minify/rules.go

package minify

import (
	"regexp"
	"strings"
)

// rule is one regex rewrite; rules of a format run in slice order.
type rule struct {
	re   *regexp.Regexp
	repl string
}

// space matches the same characters as an ECMAScript \s.
const space = `[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	spaceRun     = rule{regexp.MustCompile(space + `+`), " "}
)

var cssRules = []rule{
	{blockComment, ""},
	{regexp.MustCompile(space + `*([{}:;,>~+])` + space + `*`), "$1"},
	{regexp.MustCompile(`;}`), "}"},
	spaceRun,
}

var sqlRules = []rule{
	{regexp.MustCompile(`--[^\n]*`), ""},
	{blockComment, ""},
	spaceRun,
}

var xmlRules = []rule{
	{regexp.MustCompile(`(?s)<!--.*?-->`), ""},
	{regexp.MustCompile(`>` + space + `+<`), "><"},
	spaceRun,
}

// applyRules runs rules then trims, repeating until the text stops changing.
// One pass can expose new matches: "-/**/- x" only becomes a line comment
// once the block comment is gone.
func applyRules(rules []rule, input string) string {
	out := input
	for {
		next := out
		for _, r := range rules {
			next = r.re.ReplaceAllString(next, r.repl)
		}
		next = strings.TrimFunc(next, isSpace)
		if next == out {
			return next
		}
		out = next
	}
}

func lexical(rules []rule) Func {
	return func(input string, _ Options) (string, error) {
		return applyRules(rules, input), nil
	}
}

// isSpace matches the characters an ECMAScript trim() removes.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}
