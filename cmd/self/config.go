// cmd/self/config.go

package self

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/config"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
)

// NewConfigCmd builds `cyberkit self config`.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration cyberkit would use after merging built-in defaults,
~/.cyberkit/config.yaml (or --config), .env and CYBERKIT_* variables.`,
		Args: cobra.NoArgs,
		RunE: kit_cli.Wrap(func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			v := viper.New()
			cfgFile, _ := cmd.Flags().GetString(config.ConfigFlag)
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			body, err := yaml.Marshal(v.AllSettings())
			if err != nil {
				return kit_err.NewInternalError("encode configuration", err)
			}

			out := cmd.OutOrStdout()
			source := config.ConfigFileUsed(v)
			if source == "" {
				source = "(none, using defaults)"
			}
			fmt.Fprintf(out, "# config file: %s\n", source)
			fmt.Fprintf(out, "# colour output: %s\n", cfg.Output.Color)
			_, err = out.Write(body)
			return err
		}),
	}
}
