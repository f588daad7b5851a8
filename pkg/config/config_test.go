package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
)

// isolate points HOME and the working directory at fresh temp dirs so no
// real config or .env leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Password.Length)
	assert.True(t, cfg.Password.Uppercase && cfg.Password.Lowercase && cfg.Password.Numbers && cfg.Password.Symbols)
	assert.False(t, cfg.Password.ExcludeSimilar)
	assert.Equal(t, 1, cfg.Password.Count)
	assert.Equal(t, []string{"MD5", "SHA-1", "SHA-256", "SHA-384", "SHA-512"}, cfg.Hash.Algorithms)
	assert.True(t, cfg.Minify.Stats)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadPrecedence(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".cyberkit"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".cyberkit", "config.yaml"),
		[]byte("password:\n  length: 20\n  symbols: false\n  count: 3\nminify:\n  allow_comments: true\n"), 0o600))
	require.NoError(t, os.WriteFile(".env", []byte("CYBERKIT_PASSWORD_COUNT=5\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CYBERKIT_PASSWORD_COUNT") })

	cmd := &cobra.Command{Use: "password"}
	cmd.Flags().Int("length", 16, "")
	require.NoError(t, cmd.ParseFlags([]string{"--length", "32"}))

	v := viper.New()
	require.NoError(t, v.BindPFlag("password.length", cmd.Flags().Lookup("length")))
	cfg, err := Load(v, "")
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Password.Length, "flag beats file")
	assert.Equal(t, 5, cfg.Password.Count, ".env beats file")
	assert.False(t, cfg.Password.Symbols, "file beats default")
	assert.True(t, cfg.Minify.AllowComments)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "alt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hash:\n  algorithms: [sha256, blake3]\noutput:\n  color: never\n"), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"sha256", "blake3"}, cfg.Hash.Algorithms)
	assert.Equal(t, "never", cfg.Output.Color)

	_, err = Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, 2, kit_err.GetExitCode(err))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("password:\n  length: 0\n  count: 500\nhash:\n  algorithms: [crc32]\n"), 0o600))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.Equal(t, 2, kit_err.GetExitCode(err))
	assert.Contains(t, err.Error(), "length must be at least 1")
	assert.Contains(t, err.Error(), "count must be at most 100")
	assert.Contains(t, err.Error(), "crc32")
}

func TestPasswordConfigOptions(t *testing.T) {
	t.Parallel()
	p := PasswordConfig{Length: 12, Numbers: true, ExcludeAmbiguous: true, Count: 2}
	opts := p.Options()
	assert.Equal(t, 12, opts.Length)
	assert.True(t, opts.Numbers)
	assert.True(t, opts.ExcludeAmbiguous)
	assert.False(t, opts.Uppercase)
}
