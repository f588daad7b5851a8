// cmd/inspect/inspect.go

package inspect

import (
	"bufio"
	"io"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
)

// InspectCmd groups the analysers.
var InspectCmd = &cobra.Command{
	Use:     "inspect",
	Aliases: []string{"check"},
	Short:   "Analyse passwords and tokens",
	Long: `The inspect command examines existing values without changing them: password
strength scoring and JWT decoding.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	InspectCmd.AddCommand(NewStrengthCmd())
	InspectCmd.AddCommand(NewJWTCmd())
}

// readLine returns the first argument, or the first line of piped stdin
// without its line ending.
func readLine(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if stdin == nil || kit_io.IsTerminal(stdin) {
		return "", kit_err.NewExpectedError(kit_io.ErrNoInput)
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !cerr.Is(err, io.EOF) {
		return "", cerr.Wrap(err, "failed to read stdin")
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", kit_err.NewExpectedError(kit_io.ErrNoInput)
	}
	return line, nil
}
