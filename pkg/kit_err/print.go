// pkg/kit_err/print.go

package kit_err

import (
	"fmt"
	"io"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// PrintError writes a human-readable error to w, followed by any hints
// attached with cockroachdb/errors, and logs it at a level matching its
// severity.
func PrintError(w io.Writer, log *zap.Logger, userMessage string, err error) {
	if err == nil {
		return
	}
	if IsExpectedUserError(err) {
		log.Warn(userMessage, zap.Error(err))
		fmt.Fprintf(w, "⚠️  %s: %v\n", userMessage, err)
	} else {
		log.Error(userMessage, zap.Error(err))
		fmt.Fprintf(w, "❌ Error: %s: %v\n", userMessage, err)
	}
	if hints := cerr.FlattenHints(err); hints != "" {
		fmt.Fprintf(w, "Hint: %s\n", hints)
	}
}
