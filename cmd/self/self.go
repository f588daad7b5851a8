// cmd/self/self.go

package self

import (
	"github.com/spf13/cobra"
)

// SelfCmd is the root command for self-management commands.
var SelfCmd = &cobra.Command{
	Use:   "self",
	Short: "Self-management commands for CyberKit",
	Long: `The self command manages the cyberkit installation itself: telemetry,
effective configuration and version information.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	SelfCmd.AddCommand(NewTelemetryCmd())
	SelfCmd.AddCommand(NewConfigCmd())
	SelfCmd.AddCommand(NewVersionCmd())
}
