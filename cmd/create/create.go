// cmd/create/create.go

package create

import (
	"github.com/spf13/cobra"
)

// CreateCmd groups the generators.
var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate passwords, hashes and identifiers",
	Long: `The create command generates new values: random passwords, file or text
digests, and UUIDs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	CreateCmd.AddCommand(NewPasswordCmd())
	CreateCmd.AddCommand(NewHashCmd())
	CreateCmd.AddCommand(NewUUIDCmd())
}
