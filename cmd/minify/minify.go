// cmd/minify/minify.go

package minify

import (
	"fmt"
	"io"
	"os"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/clipboard"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/config"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/minify"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/shared"
)

// MinifyCmd is `cyberkit minify`.
var MinifyCmd = NewMinifyCmd()

// NewMinifyCmd builds `cyberkit minify`.
func NewMinifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "minify <css|json|sql|xml> [text...]",
		Aliases:   []string{"min"},
		Short:     "Strip comments and whitespace from CSS, JSON, SQL or XML",
		ValidArgs: formatNames(),
		Long: `Minify a document and report how much smaller it got.

Input is taken from --file, then the remaining arguments joined by a space,
then stdin. The minified document goes to stdout (or --output); size
statistics go to stderr so the output can be piped.

JSON is validated and re-serialised; --allow-comments accepts // and /* */
comments and trailing commas. CSS, SQL and XML are minified lexically.

Examples:
  cyberkit minify css --file site.css --output site.min.css
  cat payload.json | cyberkit minify json
  cyberkit minify sql "SELECT *  -- all
    FROM users"
  cyberkit minify json --file tsconfig.json --allow-comments --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: kit_cli.Wrap(runMinify),
	}

	cli.AddStringFlag(cmd, "file", "f", "", "Minify the contents of this file", false)
	cli.AddStringFlag(cmd, "output", "o", "", "Write the minified document to this file", false)
	cli.AddBoolFlag(cmd, "allow-comments", "", false, "Accept comments and trailing commas in JSON")
	cli.AddBoolFlag(cmd, "stats", "", true, "Print size statistics to stderr")
	cli.AddBoolFlag(cmd, "json", "", false, "Output the result and statistics as JSON")
	cli.AddBoolFlag(cmd, "watch", "w", false, "Re-minify --file whenever it changes")
	cli.AddBoolFlag(cmd, "copy", "c", false, "Copy the minified document to the clipboard")
	return cmd
}

func runMinify(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - format, options, input
	format, err := minify.ParseFormat(args[0])
	if err != nil {
		return kit_err.NewValidationErrorWithCause("unsupported format", err)
	}
	cfg, err := config.ForCommand(cmd, "minify", "file", "output", "json", "watch", "copy")
	if err != nil {
		return err
	}
	opts := cfg.Minify.Options()
	path := cli.GetStringOrEmpty(cmd, "file")

	emit := func(res *minify.Result) error {
		return writeResult(rc, cmd, res, cfg.Minify.Stats)
	}

	if cli.GetBool(cmd, "watch") {
		if path == "" {
			return kit_err.NewValidationError("--watch needs a file", "Pass the document with --file")
		}
		onError := func(err error) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", describe(err))
		}
		return minify.Watch(rc.Ctx, path, format, opts, emit, onError)
	}

	in, err := kit_io.ReadInput(rc, args[1:], path, cmd.InOrStdin())
	if err != nil && !cerr.Is(err, kit_io.ErrNoInput) {
		return err
	}
	logger.Debug("Minifying input",
		zap.String("format", string(format)),
		zap.String("source", in.Source),
		zap.Int("bytes", len(in.Data)),
		zap.Bool("allow_comments", opts.AllowComments))

	// INTERVENE
	res, err := minify.Run(format, string(in.Data), opts)
	switch {
	case cerr.Is(err, minify.ErrEmptyInput):
		return kit_err.NewExpectedError(err)
	case cerr.Is(err, minify.ErrInvalidJSON):
		return kit_err.NewValidationErrorWithCause("invalid JSON", err)
	case err != nil:
		return err
	}
	rc.Attributes["format"] = string(format)
	rc.Attributes["savings"] = res.Savings

	// EVALUATE
	return emit(res)
}

func writeResult(rc *kit_io.RuntimeContext, cmd *cobra.Command, res *minify.Result, stats bool) error {
	out := cmd.OutOrStdout()
	if cli.GetBool(cmd, "json") {
		return kit_io.WriteJSON(out, res)
	}

	if path := cli.GetStringOrEmpty(cmd, "output"); path != "" {
		if err := os.WriteFile(path, []byte(res.Output+"\n"), shared.FilePermStandard); err != nil {
			return kit_err.NewFilesystemError("cannot write output", err, "Check the --output path")
		}
		otelzap.Ctx(rc.Ctx).Info("Wrote minified output", zap.String("path", path), zap.Int("bytes", res.MinifiedBytes))
	} else {
		fmt.Fprintln(out, res.Output)
	}

	if stats {
		writeStats(cmd.ErrOrStderr(), res)
	}
	if cli.GetBool(cmd, "copy") && clipboard.Copy(rc.Ctx, nil, res.Output) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
	}
	return nil
}

func writeStats(w io.Writer, res *minify.Result) {
	fmt.Fprintf(w, "Original: %d bytes\n", res.OriginalBytes)
	fmt.Fprintf(w, "Minified: %d bytes (%s%% smaller)\n", res.MinifiedBytes, res.Savings)
	fmt.Fprintf(w, "Gzip:     %d bytes\n", res.GzipBytes)
	fmt.Fprintf(w, "Zstd:     %d bytes\n", res.ZstdBytes)
}

// describe renders watch errors on one line with their hint.
func describe(err error) string {
	msg := err.Error()
	if hints := cerr.FlattenHints(err); hints != "" {
		msg += " (" + strings.ReplaceAll(hints, "\n", "; ") + ")"
	}
	return msg
}

func formatNames() []string {
	formats := minify.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}
