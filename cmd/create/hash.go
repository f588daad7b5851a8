// cmd/create/hash.go

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
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/digest"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
)

// HashReport is the `create hash --json` document.
type HashReport struct {
	Source  string            `json:"source"`
	Bytes   int               `json:"bytes"`
	Hashes  map[string]string `json:"hashes"`
	Verdict *digest.Verdict   `json:"verify,omitempty"`
}

// NewHashCmd builds `cyberkit create hash`.
func NewHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hash [text...]",
		Aliases: []string{"digest", "checksum"},
		Short:   "Compute MD5, SHA-1, SHA-256, SHA-384 and SHA-512 digests",
		Long: `Compute digests of text, a file, or piped stdin.

Input is taken from --file, then the arguments joined by a space, then stdin.
Text arguments are hashed as UTF-8 with no trailing newline. Use --verify to
compare a known digest against every computed one.

Examples:
  cyberkit create hash "hello world"
  cyberkit create hash --file release.tar.gz --verify 5eb63bbbe01eeed093cb22bb8f5acdc3
  cat notes.txt | cyberkit create hash -a sha256 -a blake3
  cyberkit create hash --all --json "abc"`,
		RunE: kit_cli.Wrap(runCreateHash),
	}

	algs := make([]string, len(digest.DefaultAlgorithms))
	for i, a := range digest.DefaultAlgorithms {
		algs[i] = string(a)
	}
	cli.AddStringSliceFlag(cmd, "algorithms", "a", algs, "Digest algorithms to compute")
	cli.AddBoolFlag(cmd, "all", "", false, "Compute every supported algorithm")
	cli.AddStringFlag(cmd, "file", "f", "", "Hash the contents of this file", false)
	cli.AddStringFlag(cmd, "verify", "", "", "Expected digest to compare against", false)
	cli.AddBoolFlag(cmd, "json", "", false, "Output JSON")
	cli.AddBoolFlag(cmd, "copy", "c", false, "Copy the first digest to the clipboard")
	return cmd
}

func runCreateHash(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - configuration and input
	cfg, err := config.ForCommand(cmd, "hash", "all", "file", "verify", "json", "copy")
	if err != nil {
		return err
	}
	algs, err := digest.ParseAlgorithms(cfg.Hash.Algorithms)
	if err != nil {
		return kit_err.NewValidationErrorWithCause("unsupported algorithm", err,
			"Supported: "+algorithmList())
	}
	if cli.GetBool(cmd, "all") {
		algs = digest.Algorithms()
	}

	in, err := kit_io.ReadInput(rc, args, cli.GetStringOrEmpty(cmd, "file"), cmd.InOrStdin())
	if err != nil {
		if cerr.Is(err, kit_io.ErrNoInput) {
			return kit_err.NewValidationError("nothing to hash",
				"Pass text as arguments, use --file, or pipe data on stdin")
		}
		return err
	}
	logger.Info("Hashing input",
		zap.String("source", in.Source),
		zap.Int("bytes", len(in.Data)),
		zap.Strings("algorithms", algorithmNames(algs)))

	// INTERVENE - compute digests
	hashes, err := digest.NewOrchestrator(digest.WithAlgorithms(algs...)).Generate(rc.Ctx, in.Data)
	if err != nil {
		return err
	}
	verdict := digest.Verify(hashes, cli.GetStringOrEmpty(cmd, "verify"))

	// EVALUATE - report
	out := cmd.OutOrStdout()
	if cli.GetBool(cmd, "json") {
		report := HashReport{Source: in.Source, Bytes: len(in.Data), Hashes: digest.Map(hashes)}
		if verdict.Checked {
			report.Verdict = &verdict
		}
		if err := kit_io.WriteJSON(out, report); err != nil {
			return err
		}
	} else {
		for _, h := range hashes {
			fmt.Fprintf(out, "%-12s %s\n", h.Algorithm, h.Hex)
		}
		if verdict.Checked {
			if verdict.Match {
				fmt.Fprintf(out, "\n%s (%s)\n", verdict.Message, verdict.Algorithm)
			} else {
				fmt.Fprintf(out, "\n%s\n", verdict.Message)
			}
		}
	}

	if cli.GetBool(cmd, "copy") && len(hashes) > 0 {
		if clipboard.Copy(rc.Ctx, nil, hashes[0].Hex) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s to clipboard.\n", hashes[0].Algorithm)
		}
	}

	if verdict.Checked && !verdict.Match {
		logger.Warn("Digest verification failed", zap.String("expected", cli.GetStringOrEmpty(cmd, "verify")))
		return kit_err.NewExpectedError(cerr.New("digest verification failed"))
	}
	return nil
}

func algorithmNames(algs []digest.Algorithm) []string {
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = string(a)
	}
	return names
}

func algorithmList() string {
	return strings.Join(algorithmNames(digest.Algorithms()), ", ")
}
