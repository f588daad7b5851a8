package minify

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/minify"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/testutil"
)

func TestMinifyCSSArguments(t *testing.T) {
	testutil.Isolate(t)
	res, err := testutil.RunCommand(t, NewMinifyCmd(), "", "css", "a { color : red ; }")
	require.NoError(t, err)
	assert.Equal(t, "a{color:red}\n", res.Stdout)
	assert.Contains(t, res.Stderr, "Original: 19 bytes")
	assert.Contains(t, res.Stderr, "Minified: 12 bytes")
}

func TestMinifyJSONStdinNoStats(t *testing.T) {
	testutil.Isolate(t)
	res, err := testutil.RunCommand(t, NewMinifyCmd(), "{\n  \"a\": [1, 2],\n  \"b\": null\n}\n", "JSON", "--stats=false")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":[1,2],\"b\":null}\n", res.Stdout)
	assert.Empty(t, res.Stderr)
}

func TestMinifyFileToOutput(t *testing.T) {
	testutil.Isolate(t)
	require.NoError(t, os.WriteFile("in.sql", []byte("SELECT *\n  -- everything\n  FROM users;\n"), 0o600))

	_, err := testutil.RunCommand(t, NewMinifyCmd(), "", "sql", "--file", "in.sql", "--output", "out.sql")
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(".", "out.sql"))
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users;\n", string(got))
}

func TestMinifyJSONOutput(t *testing.T) {
	testutil.Isolate(t)
	res, err := testutil.RunCommand(t, NewMinifyCmd(), "", "xml", "--json", "<a>\n  <!-- c -->\n  <b/>\n</a>")
	require.NoError(t, err)

	var out minify.Result
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &out))
	assert.Equal(t, minify.XML, out.Format)
	assert.Equal(t, "<a><b/></a>", out.Output)
	assert.Equal(t, 11, out.MinifiedBytes)
	assert.Positive(t, out.GzipBytes)
	assert.Positive(t, out.ZstdBytes)
}

func TestMinifyAllowCommentsFromEnv(t *testing.T) {
	testutil.Isolate(t)
	input := "{\"a\": 1, // note\n}"

	_, err := testutil.RunCommand(t, NewMinifyCmd(), "", "json", input)
	require.Error(t, err)
	assert.Equal(t, 2, kit_err.GetExitCode(err))

	t.Setenv("CYBERKIT_MINIFY_ALLOW_COMMENTS", "true")
	res, err := testutil.RunCommand(t, NewMinifyCmd(), "", "json", "--stats=false", input)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n", res.Stdout)
}

func TestMinifyEmptyInput(t *testing.T) {
	testutil.Isolate(t)
	_, err := testutil.RunCommand(t, NewMinifyCmd(), "   \n\t", "css")
	require.Error(t, err)
	assert.True(t, kit_err.IsExpectedUserError(err))
	assert.Equal(t, minify.ErrEmptyInput.Error(), err.Error())
}

func TestMinifyUnknownFormat(t *testing.T) {
	testutil.Isolate(t)
	_, err := testutil.RunCommand(t, NewMinifyCmd(), "", "yaml", "a: 1")
	require.Error(t, err)
	assert.Equal(t, 2, kit_err.GetExitCode(err))
}

func TestMinifyWatchNeedsFile(t *testing.T) {
	testutil.Isolate(t)
	_, err := testutil.RunCommand(t, NewMinifyCmd(), "", "css", "--watch", "a{}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch needs a file")
}
