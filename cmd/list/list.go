// cmd/list/list.go

package list

import (
	"github.com/spf13/cobra"
)

// ListCmd groups the listing commands.
var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tools and supported algorithms",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	ListCmd.AddCommand(NewToolsCmd())
	ListCmd.AddCommand(NewAlgorithmsCmd())
}
