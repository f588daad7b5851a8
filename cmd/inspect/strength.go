// cmd/inspect/strength.go

package inspect

import (
	"fmt"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/config"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/strength"
)

// promptPassword is replaced in tests.
var promptPassword = kit_io.PromptSecurePassword

// StrengthReport is the `inspect strength --json` document.
type StrengthReport struct {
	strength.Result
	Length int      `json:"length"`
	Passed []string `json:"passed"`
}

// NewStrengthCmd builds `cyberkit inspect strength`.
func NewStrengthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strength [password]",
		Short: "Score a password's strength",
		Long: `Score a password against length and character-class rules.

The password comes from the argument, the first line of piped stdin, or a
hidden prompt when run interactively. Prefer the prompt or a pipe: arguments
end up in shell history.

Examples:
  cyberkit inspect strength
  pass show mail | cyberkit inspect strength --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: kit_cli.Wrap(runInspectStrength),
	}
	cli.AddBoolFlag(cmd, "json", "", false, "Output JSON")
	return cmd
}

func runInspectStrength(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - obtain the password
	cfg, err := config.ForCommand(cmd, "output", "json")
	if err != nil {
		return err
	}
	pw, err := readLine(args, cmd.InOrStdin())
	if cerr.Is(err, kit_io.ErrNoInput) {
		pw, err = promptPassword(rc, "Password: ")
		if cerr.Is(err, shared.ErrNotTTY) {
			return kit_err.NewValidationError("no password to score",
				"Pass it as an argument, pipe it on stdin, or run in a terminal")
		}
	}
	if err != nil {
		return err
	}

	// INTERVENE - score
	res := strength.Calc(pw)
	logger.Debug("Scored password", zap.String("password", crypto.Redact(pw)), zap.Float64("percent", res.Percent))
	report := StrengthReport{Result: res, Length: len([]rune(pw)), Passed: strength.Passed(pw)}

	// EVALUATE
	out := cmd.OutOrStdout()
	if cli.GetBool(cmd, "json") {
		return kit_io.WriteJSON(out, report)
	}
	fmt.Fprintln(out, res.Bar(kit_io.ColorEnabled(out, cfg.Output.Color)))
	fmt.Fprintf(out, "Length: %d\n", report.Length)
	if len(report.Passed) > 0 {
		fmt.Fprintf(out, "Passed: %s\n", strings.Join(report.Passed, ", "))
	}
	return nil
}
