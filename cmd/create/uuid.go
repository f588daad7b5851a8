// cmd/create/uuid.go

package create

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/clipboard"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/identifier"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/verify"
)

// NewUUIDCmd builds `cyberkit create uuid`.
func NewUUIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate random (v4) or time-ordered (v7) UUIDs",
		Long: `Generate one or more UUIDs.

Examples:
  cyberkit create uuid
  cyberkit create uuid --count 10 --version 7
  cyberkit create uuid --upper --no-hyphens`,
		Args: cobra.NoArgs,
		RunE: kit_cli.Wrap(runCreateUUID),
	}

	def := identifier.DefaultOptions()
	cli.AddIntFlag(cmd, "count", "n", def.Count, fmt.Sprintf("Number of UUIDs (1-%d)", identifier.MaxCount))
	cli.AddIntFlag(cmd, "version", "v", def.Version, "UUID version: 4 (random) or 7 (time ordered)")
	cli.AddBoolFlag(cmd, "upper", "u", false, "Uppercase hex digits")
	cli.AddBoolFlag(cmd, "no-hyphens", "", false, "Omit hyphens")
	cli.AddBoolFlag(cmd, "json", "", false, "Output JSON")
	cli.AddBoolFlag(cmd, "copy", "c", false, "Copy the UUIDs to the clipboard")
	return cmd
}

func runCreateUUID(rc *kit_io.RuntimeContext, cmd *cobra.Command, _ []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS
	opts := identifier.Options{Uppercase: cli.GetBool(cmd, "upper"), NoHyphens: cli.GetBool(cmd, "no-hyphens")}
	opts.Count, _ = cmd.Flags().GetInt("count")
	opts.Version, _ = cmd.Flags().GetInt("version")
	if err := verify.Struct(opts); err != nil {
		return kit_err.NewValidationErrorWithCause("invalid UUID options", err)
	}

	// INTERVENE
	ids, err := identifier.Generate(opts)
	if err != nil {
		return err
	}
	logger.Debug("Generated UUIDs", zap.Int("count", len(ids)), zap.Int("version", opts.Version))

	// EVALUATE
	out := cmd.OutOrStdout()
	if cli.GetBool(cmd, "json") {
		if err := kit_io.WriteJSON(out, ids); err != nil {
			return err
		}
	} else {
		for _, id := range ids {
			fmt.Fprintln(out, id)
		}
	}
	if cli.GetBool(cmd, "copy") && clipboard.Copy(rc.Ctx, nil, strings.Join(ids, "\n")) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
	}
	return nil
}
