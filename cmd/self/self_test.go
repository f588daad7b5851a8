package self

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/testutil"
)

func TestTelemetryToggle(t *testing.T) {
	home := testutil.Isolate(t)
	toggle := filepath.Join(home, shared.StateDirName, shared.TelemetryToggleFile)

	res, err := testutil.RunCommand(t, NewTelemetryCmd(), "", "status")
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Telemetry: disabled")

	_, err = testutil.RunCommand(t, NewTelemetryCmd(), "", "on")
	require.NoError(t, err)
	assert.FileExists(t, toggle)

	res, err = testutil.RunCommand(t, NewTelemetryCmd(), "", "status")
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Telemetry: enabled")
	assert.Contains(t, res.Stdout, "Spans:     0")

	_, err = testutil.RunCommand(t, NewTelemetryCmd(), "", "off")
	require.NoError(t, err)
	assert.NoFileExists(t, toggle)

	_, err = testutil.RunCommand(t, NewTelemetryCmd(), "", "off")
	require.NoError(t, err, "disabling twice is fine")
}

func TestTelemetryUnknownAction(t *testing.T) {
	testutil.Isolate(t)
	_, err := testutil.RunCommand(t, NewTelemetryCmd(), "", "maybe")
	require.Error(t, err)
	assert.Equal(t, 2, kit_err.GetExitCode(err))
}

func TestConfigShowsEffectiveValues(t *testing.T) {
	home := testutil.Isolate(t)
	dir := filepath.Join(home, shared.StateDirName)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("password:\n  length: 28\n"), 0o600))

	res, err := testutil.RunCommand(t, NewConfigCmd(), "")
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "# config file: "+filepath.Join(dir, "config.yaml"))
	assert.Contains(t, res.Stdout, "length: 28")
	assert.Contains(t, res.Stdout, "- SHA-256")
}

func TestConfigRejectsInvalidFile(t *testing.T) {
	home := testutil.Isolate(t)
	dir := filepath.Join(home, shared.StateDirName)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output:\n  color: sometimes\n"), 0o600))

	_, err := testutil.RunCommand(t, NewConfigCmd(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color must be one of [auto always never]")
}

func TestVersion(t *testing.T) {
	res, err := testutil.RunCommand(t, NewVersionCmd(), "")
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, shared.AppID+" "+shared.Version)
}
