package minify

import (
	"encoding/json"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinifyCSS(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"comment and block", "/* c */ a { color: red; }", "a{color:red}"},
		{"selectors and combinators", "ul > li ,\n ol ~ p + span {\n  margin : 0 ;\n  padding: 0 auto;\n}", "ul>li,ol~p+span{margin:0;padding:0 auto}"},
		{"multiline comment", "body {\n  /* reset\n  spacing */\n  margin: 0;\n}\n", "body{margin:0}"},
		{"doubled semicolon", "a{b:c;;}", "a{b:c}"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MinifyCSS(tt.in))
		})
	}
}

func TestMinifySQL(t *testing.T) {
	t.Parallel()
	in := "-- fetch users\nSELECT *\n  FROM users /* active only */\n WHERE id = 1;\n"
	assert.Equal(t, "SELECT * FROM users WHERE id = 1;", MinifySQL(in))
}

// Comment markers are matched lexically, so they are removed even inside
// string literals. This documents current behaviour rather than endorsing it.
func TestMinifySQLStripsMarkersInsideLiterals(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "SELECT '", MinifySQL("SELECT '-- not a comment' AS x"))
	assert.Equal(t, "SELECT '' AS x", MinifySQL("SELECT '/* kept? */' AS x"))
}

func TestMinifyXML(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "<root><a>1</a></root>", MinifyXML("<root>\n  <a>1</a>\n</root>"))
	assert.Equal(t,
		`<root><item id="1"><name>Example text</name></item></root>`,
		MinifyXML("<!-- Paste your XML here -->\n<root>\n  <item id=\"1\">\n    <name>Example\n text</name>\n  </item>\n</root>"))
}

func TestMinifyTreatsUnicodeSpaceLikeWhitespace(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "<a><b/></a>", MinifyXML("\u00a0<a> <b/>\ufeff</a>\u3000"))
}

func TestLexicalMinifiersIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"/* c */ a { color: red; }",
		"a{b:c;;;}",
		"/*/* x */ */ p { }",
		"-/**/- x\nSELECT 1",
		"SELECT 1 -- trailing",
		"<a>  <!-- <!-- x --> -->  </a>",
		"<!-<!-- x -->- y -->",
		"x\n\n\ty  ;  }",
	}
	for _, f := range []func(string) string{MinifyCSS, MinifySQL, MinifyXML} {
		for _, in := range inputs {
			once := f(in)
			assert.Equal(t, once, f(once), "input %q", in)
		}
	}
}

func TestMinifyJSON(t *testing.T) {
	t.Parallel()
	in := "{\n  \"name\": \"example\",\n  \"version\": \"1.0.0\",\n  \"tags\": [ 1, 2.50, {\"a\" : null} ]\n}"
	out, err := MinifyJSON(in)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"example","version":"1.0.0","tags":[1,2.50,{"a":null}]}`, out)
}

func TestMinifyJSONRoundTrip(t *testing.T) {
	t.Parallel()
	inputs := []string{
		`{"b": 1, "a": [true, false, null], "c": {"d": "e f"}}`,
		`[ ]`,
		`  "just a string with  spaces "  `,
		`1e10`,
		`{"dup": 1, "dup": 2}`,
		"{\"esc\": \"\\u0041\\n\\\"\"}",
	}
	for _, in := range inputs {
		out, err := MinifyJSON(in)
		require.NoError(t, err, in)

		var want, got any
		require.NoError(t, json.Unmarshal([]byte(in), &want))
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got, in)

		again, err := MinifyJSON(out)
		require.NoError(t, err)
		assert.Equal(t, out, again)
	}
}

func TestMinifyJSONInvalid(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"{invalid", "", "{\"a\":1,}", "[1] [2]"} {
		_, err := MinifyJSON(in)
		require.Error(t, err, in)
		assert.True(t, cerr.Is(err, ErrInvalidJSON), in)
	}

	_, err := MinifyJSON("{invalid")
	assert.Contains(t, err.Error(), "line 1, column 2")
	assert.NotEmpty(t, cerr.FlattenHints(err))

	_, err = MinifyJSON("{\n  \"a\": 1\n  \"b\": 2\n}")
	assert.Contains(t, err.Error(), "line 3")
}

func TestMinifyJSONAllowComments(t *testing.T) {
	t.Parallel()
	in := "{\n  // service name\n  \"name\": \"api\", /* inline */\n  \"ports\": [80, 443,],\n}"

	_, err := Minify(JSON, in, Options{})
	require.Error(t, err, "comments are rejected by default")

	out, err := Minify(JSON, in, Options{AllowComments: true})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"api","ports":[80,443]}`, out)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	f, err := ParseFormat(" CSS ")
	require.NoError(t, err)
	assert.Equal(t, CSS, f)

	_, err = ParseFormat("yaml")
	require.Error(t, err)
	assert.True(t, cerr.Is(err, ErrUnknownFormat))

	assert.Equal(t, []Format{CSS, JSON, SQL, XML}, Formats())
}
