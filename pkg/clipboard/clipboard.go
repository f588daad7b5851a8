// pkg/clipboard/clipboard.go

package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ErrUnavailable means no system clipboard could be reached (no display,
// missing xclip/xsel/wl-copy, and so on).
var ErrUnavailable = cerr.New("clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System is the OS clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return cerr.Mark(cerr.Wrap(err, "write clipboard"), ErrUnavailable)
	}
	return nil
}

// Copy writes text to w and reports whether it succeeded. Failures are
// logged as warnings and never returned: copying is a convenience.
func Copy(ctx context.Context, w Writer, text string) bool {
	logger := otelzap.Ctx(ctx)
	if w == nil {
		w = System{}
	}
	if err := w.WriteAll(text); err != nil {
		logger.Warn("Could not copy to clipboard", zap.Error(err))
		return false
	}
	logger.Debug("Copied result to clipboard", zap.Int("chars", len([]rune(text))))
	return true
}
