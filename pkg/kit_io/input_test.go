package kit_io_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	rc := testutil.NewTestContext(t)

	t.Run("file wins over args", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.css")
		require.NoError(t, os.WriteFile(path, []byte("a { color: red; }"), 0o600))

		in, err := kit_io.ReadInput(rc, []string{"ignored"}, path, nil)
		require.NoError(t, err)
		assert.Equal(t, "a { color: red; }", string(in.Data))
		assert.Equal(t, path, in.Source)
	})

	t.Run("args joined with spaces", func(t *testing.T) {
		in, err := kit_io.ReadInput(rc, []string{"hello", "world"}, "", nil)
		require.NoError(t, err)
		assert.Equal(t, "hello world", string(in.Data))
		assert.Equal(t, "argument", in.Source)
	})

	t.Run("piped stdin", func(t *testing.T) {
		in, err := kit_io.ReadInput(rc, nil, "", bytes.NewBufferString("SELECT 1;"))
		require.NoError(t, err)
		assert.Equal(t, "SELECT 1;", string(in.Data))
		assert.Equal(t, "stdin", in.Source)
	})

	t.Run("empty stdin is a user error", func(t *testing.T) {
		_, err := kit_io.ReadInput(rc, nil, "", bytes.NewBuffer(nil))
		require.Error(t, err)
		assert.True(t, kit_err.IsExpectedUserError(err))
		assert.ErrorIs(t, err, kit_io.ErrNoInput)
	})

	t.Run("no source at all", func(t *testing.T) {
		_, err := kit_io.ReadInput(rc, nil, "", nil)
		assert.ErrorIs(t, err, kit_io.ErrNoInput)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := kit_io.ReadInput(rc, nil, filepath.Join(t.TempDir(), "nope"), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Equal(t, 1, kit_err.GetExitCode(err))
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, kit_io.IsTerminal(bytes.NewBuffer(nil)))

	f, err := os.CreateTemp(t.TempDir(), "plain")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, kit_io.IsTerminal(f))
}
