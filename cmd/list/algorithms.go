// cmd/list/algorithms.go

package list

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/digest"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/minify"
)

// NewAlgorithmsCmd builds `cyberkit list algorithms`.
func NewAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "algorithms",
		Aliases: []string{"algs", "formats"},
		Short:   "Show supported digest algorithms and minify formats",
		Args:    cobra.NoArgs,
		RunE: kit_cli.Wrap(func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DIGEST\tBITS\tDEFAULT")
			for _, a := range digest.Algorithms() {
				def := ""
				if slices.Contains(digest.DefaultAlgorithms, a) {
					def = "yes"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", a, a.Size()*8, def)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "MINIFY FORMAT\t\t")
			for _, f := range minify.Formats() {
				fmt.Fprintf(w, "%s\t\t\n", f)
			}
			return w.Flush()
		}),
	}
}
