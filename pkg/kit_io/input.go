// pkg/kit_io/input.go

package kit_io

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/shared"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// ErrNoInput is returned when neither an argument, a file nor piped stdin was given.
var ErrNoInput = cerr.New("no input provided")

// Input is raw command input with a label describing where it came from.
type Input struct {
	Data   []byte
	Source string
}

// ReadInput resolves input in priority order: --file path, positional
// arguments joined by a space, then stdin when it is not a terminal.
func ReadInput(rc *RuntimeContext, args []string, path string, stdin io.Reader) (Input, error) {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - pick the source
	switch {
	case path != "":
		logger.Debug("Reading input from file", zap.String("path", path))
		data, err := os.ReadFile(path)
		if err != nil {
			return Input{}, kit_err.ClassifyError(err, fmt.Sprintf("read %s", path))
		}
		return Input{Data: data, Source: path}, nil

	case len(args) > 0:
		return Input{Data: []byte(strings.Join(args, " ")), Source: "argument"}, nil

	case stdin != nil && !IsTerminal(stdin):
		// INTERVENE - drain the pipe
		logger.Debug("Reading input from stdin")
		data, err := io.ReadAll(stdin)
		if err != nil {
			return Input{}, cerr.Wrap(err, "failed to read stdin")
		}
		if len(data) == 0 {
			return Input{}, kit_err.NewExpectedError(ErrNoInput)
		}
		return Input{Data: data, Source: "stdin"}, nil
	}

	// EVALUATE - nothing usable
	return Input{}, kit_err.NewExpectedError(ErrNoInput)
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r any) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// PromptSecurePassword prompts for a secret without echoing it.
func PromptSecurePassword(rc *RuntimeContext, prompt string) (string, error) {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - Check if we can read from terminal
	if !IsTerminal(os.Stdin) {
		return "", shared.ErrNotTTY
	}

	// INTERVENE - Read password securely
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", cerr.Wrap(err, "failed to read password")
	}

	// EVALUATE
	logger.Debug("Read secure password input", zap.Int("length", len(password)))
	return string(password), nil
}
