// cmd/self/version.go

package self

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/shared"
)

// NewVersionCmd builds `cyberkit self version`.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s/%s)\n",
				shared.AppID, shared.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
