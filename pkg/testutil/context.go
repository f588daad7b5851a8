package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap/zaptest"
)

// NewTestContext creates a RuntimeContext suitable for testing. The zaptest
// logger is also installed as the otelzap global for the test's lifetime.
func NewTestContext(t *testing.T) *kit_io.RuntimeContext {
	t.Helper()
	logger := zaptest.NewLogger(t)
	undo := otelzap.ReplaceGlobals(otelzap.New(logger))
	t.Cleanup(undo)

	return &kit_io.RuntimeContext{
		Ctx:        context.Background(),
		Log:        logger,
		Timestamp:  time.Now(),
		Component:  "test",
		Command:    t.Name(),
		Attributes: make(map[string]string),
	}
}
