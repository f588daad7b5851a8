// cmd/inspect/jwt.go

package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/token"
)

// now is replaced in tests.
var now = time.Now

// NewJWTCmd builds `cyberkit inspect jwt`.
func NewJWTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jwt [token]",
		Aliases: []string{"token"},
		Short:   "Decode a JSON Web Token without verifying it",
		Long: `Decode a JWT's header and payload and report whether it has expired.

The signature is shown but never verified; do not trust the claims of a token
you have not validated elsewhere.

Examples:
  cyberkit inspect jwt eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig
  echo "$TOKEN" | cyberkit inspect jwt --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: kit_cli.Wrap(runInspectJWT),
	}
	cli.AddBoolFlag(cmd, "json", "", false, "Output JSON")
	return cmd
}

func runInspectJWT(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS
	raw, err := readLine(args, cmd.InOrStdin())
	if cerr.Is(err, kit_io.ErrNoInput) {
		return kit_err.NewValidationError("no token to decode", "Pass the token as an argument or pipe it on stdin")
	}
	if err != nil {
		return err
	}

	// INTERVENE
	dec, err := token.Decode(raw, now())
	if err != nil {
		if cerr.Is(err, token.ErrInvalidFormat) || cerr.Is(err, token.ErrMalformed) {
			return kit_err.NewValidationErrorWithCause("cannot decode token", err)
		}
		return err
	}
	logger.Debug("Decoded JWT", zap.String("status", string(dec.Validity.Status)), zap.Any("alg", dec.Header["alg"]))

	// EVALUATE
	out := cmd.OutOrStdout()
	if cli.GetBool(cmd, "json") {
		return kit_io.WriteJSON(out, dec)
	}
	return writeDecoded(out, dec)
}

func writeDecoded(w io.Writer, dec *token.Decoded) error {
	sections := []struct {
		title string
		value map[string]any
	}{{"Header", dec.Header}, {"Payload", dec.Payload}}
	for _, s := range sections {
		body, err := json.MarshalIndent(s.value, "", "  ")
		if err != nil {
			return cerr.Wrapf(err, "encode %s", s.title)
		}
		fmt.Fprintf(w, "%s:\n%s\n\n", s.title, body)
	}
	fmt.Fprintf(w, "Signature: %s\n", dec.Signature)

	for _, c := range []struct {
		name string
		at   *time.Time
	}{{"Issued at", dec.IssuedAt}, {"Not before", dec.NotBefore}, {"Expires at", dec.ExpiresAt}} {
		if c.at != nil {
			fmt.Fprintf(w, "%-11s %s\n", c.name+":", c.at.UTC().Format(time.RFC3339))
		}
	}

	switch dec.Validity.Status {
	case token.StatusValid:
		fmt.Fprintf(w, "Status:     valid (%d days remaining)\n", dec.Validity.DaysRemaining)
	case token.StatusExpired:
		fmt.Fprintln(w, "Status:     expired")
	default:
		fmt.Fprintln(w, "Status:     no expiration")
	}
	return nil
}
