package testutil

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// Isolate points HOME and the working directory at fresh temp dirs so no
// real config, .env or telemetry state leaks into a test.
func Isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NO_COLOR", "1")
	t.Chdir(t.TempDir())
	return home
}

// CommandResult holds what a command wrote.
type CommandResult struct {
	Stdout string
	Stderr string
}

// RunCommand executes cmd with args, feeding stdin, and captures both
// output streams.
func RunCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (CommandResult, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	var in io.Reader = strings.NewReader(stdin)
	cmd.SetIn(in)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.ExecuteContext(context.Background())
	return CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
