/* cmd/root.go */

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/cyberkit/cmd/create"
	"github.com/CodeMonkeyCybersecurity/cyberkit/cmd/inspect"
	"github.com/CodeMonkeyCybersecurity/cyberkit/cmd/list"
	"github.com/CodeMonkeyCybersecurity/cyberkit/cmd/minify"
	"github.com/CodeMonkeyCybersecurity/cyberkit/cmd/self"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/config"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/telemetry"
)

// RootCmd is the base command for cyberkit.
var RootCmd = &cobra.Command{
	Use:   shared.AppID,
	Short: "Security and developer utilities for the terminal",
	Long: `cyberkit generates passwords, hashes and UUIDs, scores password strength,
decodes JWTs and minifies CSS, JSON, SQL and XML. Everything runs locally;
nothing is sent over the network.

Examples:
  cyberkit create password --length 24 --count 5
  cyberkit create hash --file release.tar.gz --verify <sha256>
  cyberkit inspect strength
  cyberkit minify json --file package.json
  cyberkit list tools hash`,
	Version:       shared.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	RootCmd.PersistentFlags().String(config.ConfigFlag, "",
		"config file (default $HOME/"+shared.StateDirName+"/"+shared.ConfigFileName+"."+shared.ConfigFileType+")")

	for _, subCmd := range []*cobra.Command{
		create.CreateCmd,
		inspect.InspectCmd,
		minify.MinifyCmd,
		list.ListCmd,
		self.SelfCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute initializes and runs the root command, then exits with the code
// matching the error category.
func Execute() {
	shutdown, err := telemetry.Init(shared.AppID)
	if err != nil {
		logger.L().Warn("Telemetry disabled", zap.Error(err))
		shutdown = func(context.Context) error { return nil }
	}

	RegisterCommands()
	err = RootCmd.ExecuteContext(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if serr := shutdown(ctx); serr != nil {
		logger.L().Debug("Telemetry shutdown failed", zap.Error(serr))
	}
	cancel()

	if err != nil {
		kit_err.PrintError(os.Stderr, logger.L(), "cyberkit", err)
	}
	if serr := logger.Sync(); serr != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Failed to flush logs: %v\n", serr)
	}
	os.Exit(kit_err.GetExitCode(err))
}
