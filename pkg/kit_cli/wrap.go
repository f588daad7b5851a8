// pkg/kit_cli/wrap.go

package kit_cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/logger"
)

// RunFunc is the body of a cyberkit command.
type RunFunc func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error

// Wrap adapts fn to cobra's RunE: it builds the RuntimeContext (span,
// scoped logger, Ctrl-C cancellation), recovers panics and records the
// outcome. Unexpected errors gain a stack trace; expected user errors are
// returned as they are.
func Wrap(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		logger.InitFallback()

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		sigCtx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		rc := kit_io.NewContext(sigCtx, cmd.CommandPath())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		rc.Log.Debug("Command started",
			zap.String("command", cmd.CommandPath()),
			zap.Int("args", len(args)))

		err = fn(rc, cmd, args)
		if err != nil && cerr.Is(sigCtx.Err(), context.Canceled) && parent.Err() == nil {
			return kit_err.NewUserCancelledError(cmd.CommandPath())
		}
		if err != nil && !kit_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
