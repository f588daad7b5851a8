// cmd/create/password.go

package create

import (
	"fmt"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/clipboard"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/config"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/strength"
)

// GeneratedPassword is one entry of `create password --json`.
type GeneratedPassword struct {
	Password string          `json:"password"`
	Strength strength.Result `json:"strength"`
}

// NewPasswordCmd builds `cyberkit create password`.
func NewPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "password",
		Aliases: []string{"pass", "pw"},
		Short:   "Generate cryptographically random passwords",
		Long: `Generate passwords from the system CSPRNG without modulo bias.

Every selected character class appears at least once, and the result is
shuffled so class characters do not cluster at the start. Defaults come from
the password section of the config file and CYBERKIT_PASSWORD_* variables.

Examples:
  cyberkit create password
  cyberkit create password --length 32 --symbols=false
  cyberkit create password --count 5 --exclude-similar --exclude-ambiguous
  cyberkit create password --quiet --copy`,
		Args: cobra.NoArgs,
		RunE: kit_cli.Wrap(runCreatePassword),
	}

	def := crypto.DefaultPasswordOptions()
	cli.AddIntFlag(cmd, "length", "l", def.Length, "Password length in characters")
	cli.AddBoolFlag(cmd, "uppercase", "", def.Uppercase, "Include uppercase letters A-Z")
	cli.AddBoolFlag(cmd, "lowercase", "", def.Lowercase, "Include lowercase letters a-z")
	cli.AddBoolFlag(cmd, "numbers", "", def.Numbers, "Include digits 0-9")
	cli.AddBoolFlag(cmd, "symbols", "", def.Symbols, "Include symbols "+crypto.SymbolAlphabet)
	cli.AddBoolFlag(cmd, "exclude-similar", "", false, "Leave out look-alike characters "+crypto.SimilarChars)
	cli.AddBoolFlag(cmd, "exclude-ambiguous", "", false, "Leave out brackets, quotes and punctuation "+crypto.AmbiguousChars)
	cli.AddIntFlag(cmd, "count", "n", 1, "Number of passwords to generate")
	cli.AddBoolFlag(cmd, "quiet", "q", false, "Print only the passwords")
	cli.AddBoolFlag(cmd, "json", "", false, "Output JSON")
	cli.AddBoolFlag(cmd, "copy", "c", false, "Copy the password(s) to the clipboard")
	return cmd
}

func runCreatePassword(rc *kit_io.RuntimeContext, cmd *cobra.Command, _ []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - resolve options from flags, env and config
	cfg, err := config.ForCommand(cmd, "password", "quiet", "json", "copy")
	if err != nil {
		return err
	}
	opts := cfg.Password.Options()
	logger.Debug("Password options resolved",
		zap.Int("length", opts.Length),
		zap.Int("count", cfg.Password.Count),
		zap.Bool("uppercase", opts.Uppercase),
		zap.Bool("lowercase", opts.Lowercase),
		zap.Bool("numbers", opts.Numbers),
		zap.Bool("symbols", opts.Symbols),
		zap.Bool("exclude_similar", opts.ExcludeSimilar),
		zap.Bool("exclude_ambiguous", opts.ExcludeAmbiguous))

	// INTERVENE - generate
	gen := crypto.NewGenerator(crypto.CryptoSource{})
	results := make([]GeneratedPassword, 0, cfg.Password.Count)
	for range cfg.Password.Count {
		pw, ok, err := gen.Generate(opts)
		if err != nil {
			if cerr.Is(err, crypto.ErrInvalidLength) {
				return kit_err.NewExpectedError(err)
			}
			return cerr.Wrap(err, "generate password")
		}
		if !ok {
			return kit_err.NewValidationError("no characters available for password generation",
				"Enable at least one of --uppercase, --lowercase, --numbers or --symbols")
		}
		results = append(results, GeneratedPassword{Password: pw, Strength: strength.Calc(pw)})
	}
	rc.Attributes["count"] = fmt.Sprint(len(results))
	logger.Info("Generated passwords",
		zap.Int("count", len(results)),
		zap.String("first", crypto.Redact(results[0].Password)),
		zap.String("strength", results[0].Strength.Label))

	// EVALUATE - print and optionally copy
	out := cmd.OutOrStdout()
	switch {
	case cli.GetBool(cmd, "json"):
		if err := kit_io.WriteJSON(out, results); err != nil {
			return err
		}
	case cli.GetBool(cmd, "quiet"):
		for _, r := range results {
			fmt.Fprintln(out, r.Password)
		}
	default:
		color := kit_io.ColorEnabled(out, cfg.Output.Color)
		for _, r := range results {
			fmt.Fprintf(out, "%s  %s\n", r.Password, r.Strength.Bar(color))
		}
	}

	if cli.GetBool(cmd, "copy") {
		pws := make([]string, len(results))
		for i, r := range results {
			pws[i] = r.Password
		}
		if clipboard.Copy(rc.Ctx, nil, strings.Join(pws, "\n")) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
		}
	}
	return nil
}
