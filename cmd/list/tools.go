// cmd/list/tools.go

package list

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/catalog"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
)

// NewToolsCmd builds `cyberkit list tools`.
func NewToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools [query...]",
		Short: "Search the CyberKit tool catalog",
		Long: `List the tools in the CyberKit catalog, optionally filtered by a search
query (matched against title, description and tags) and a category.

Examples:
  cyberkit list tools
  cyberkit list tools vpn --category security
  cyberkit list tools --cli`,
		RunE: kit_cli.Wrap(runListTools),
	}
	cli.AddStringFlag(cmd, "category", "", string(catalog.All), "Filter by category: all, security, developer, education", false)
	cli.AddBoolFlag(cmd, "cli", "", false, "Only tools available as cyberkit commands")
	cli.AddBoolFlag(cmd, "json", "", false, "Output JSON")
	return cmd
}

func runListTools(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS
	category, err := catalog.ParseCategory(cli.GetStringOrEmpty(cmd, "category"))
	if err != nil {
		return kit_err.NewValidationErrorWithCause("unknown category", err)
	}
	cat, err := catalog.Load()
	if err != nil {
		return kit_err.NewInternalError("load tool catalog", err)
	}

	// INTERVENE
	tools := cat.Search(strings.Join(args, " "), category)
	if cli.GetBool(cmd, "cli") {
		var withCmd []catalog.Tool
		for _, t := range tools {
			if t.Command != "" {
				withCmd = append(withCmd, t)
			}
		}
		tools = withCmd
	}
	logger.Debug("Searched tool catalog",
		zap.Strings("query", args),
		zap.String("category", string(category)),
		zap.Int("matches", len(tools)))

	// EVALUATE
	out := cmd.OutOrStdout()
	if cli.GetBool(cmd, "json") {
		if tools == nil {
			tools = []catalog.Tool{}
		}
		return kit_io.WriteJSON(out, tools)
	}
	if len(tools) == 0 {
		fmt.Fprintln(out, "No tools match.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tLABEL\tCOMMAND")
	for _, t := range tools {
		command := t.Command
		if command == "" {
			command = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Category, t.Label, command)
	}
	return w.Flush()
}
