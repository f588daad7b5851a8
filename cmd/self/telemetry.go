// cmd/self/telemetry.go

package self

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/telemetry"
)

// NewTelemetryCmd builds `cyberkit self telemetry`.
func NewTelemetryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "telemetry [on|off|status]",
		Short: "Manage local telemetry collection",
		Long: `Manage local telemetry collection for cyberkit usage statistics.

Spans are appended to a JSONL file under ~/.cyberkit/telemetry and never
leave the machine. Telemetry is off until enabled.

Commands:
  on     - Enable telemetry collection
  off    - Disable telemetry collection
  status - Show telemetry status and statistics`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off", "status"},
		RunE: kit_cli.Wrap(func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			log := otelzap.Ctx(rc.Ctx)
			out := cmd.OutOrStdout()

			switch action := args[0]; action {
			case "on":
				if err := telemetry.Enable(); err != nil {
					log.Error("Failed to write telemetry toggle file", zap.Error(err))
					return kit_err.NewFilesystemError("cannot enable telemetry", err)
				}
				log.Info("Telemetry enabled")
				fmt.Fprintf(out, "Telemetry enabled. Spans are written to %s\n", telemetry.FilePath())
			case "off":
				if err := telemetry.Disable(); err != nil {
					log.Error("Failed to remove telemetry toggle file", zap.Error(err))
					return kit_err.NewFilesystemError("cannot disable telemetry", err)
				}
				log.Info("Telemetry disabled")
				fmt.Fprintln(out, "Telemetry disabled.")
			case "status":
				st, err := telemetry.CurrentStatus()
				if err != nil {
					return err
				}
				state := "disabled"
				if st.Enabled {
					state = "enabled"
				}
				fmt.Fprintf(out, "Telemetry: %s\nFile:      %s\nSpans:     %d\n", state, st.FilePath, st.Spans)
			default:
				log.Warn("Invalid telemetry argument", zap.String("arg", action))
				return kit_err.NewValidationError(fmt.Sprintf("unknown action %q", action),
					"usage: cyberkit self telemetry [on|off|status]")
			}
			return nil
		}),
	}
}
