// pkg/kit_io/context.go

package kit_io

import (
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Timestamp  time.Time
	Span       trace.Span
	Command    string
	Component  string
	Attributes map[string]string
}

// NewContext sets up tracing and a scoped logger for one command run.
func NewContext(parent context.Context, cmdName string) *RuntimeContext {
	if parent == nil {
		parent = context.Background()
	}
	ctx, span := telemetry.Start(parent, cmdName)
	traceID := span.SpanContext().TraceID().String()

	comp, _ := resolveCallContext(3)
	logger := zap.L().With(
		zap.String("component", comp),
		zap.String("action", cmdName),
		zap.String("trace_id", traceID),
	).Named(comp)

	return &RuntimeContext{
		Ctx:        ctx,
		Span:       span,
		Log:        logger,
		Timestamp:  time.Now(),
		Component:  comp,
		Command:    cmdName,
		Attributes: make(map[string]string),
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("panic recovered", zap.Any("panic", r))
	}
}

// End logs outcome, records span attributes, and flushes.
func (rc *RuntimeContext) End(errPtr *error) {
	if rc.Span != nil {
		defer rc.Span.End()
	}

	var err error
	if errPtr != nil {
		err = *errPtr
	}
	duration := time.Since(rc.Timestamp)
	success := err == nil

	if success {
		rc.Log.Debug("Command completed", zap.Duration("duration", duration))
	} else if kit_err.IsExpectedUserError(err) {
		rc.Log.Warn("Command rejected input", zap.Duration("duration", duration), zap.Error(err))
	} else {
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(err))
	}

	if rc.Span != nil {
		attrs := []attribute.KeyValue{
			attribute.Bool("success", success),
			attribute.Int64("duration_ms", duration.Milliseconds()),
			attribute.String("os", runtime.GOOS),
			attribute.String("version", shared.Version),
			attribute.String("error_type", classifyError(err)),
		}
		for k, v := range rc.Attributes {
			attrs = append(attrs, attribute.String(k, v))
		}
		rc.Span.SetAttributes(attrs...)
		if !success {
			rc.Span.SetStatus(codes.Error, classifyError(err))
		}
	}

	shared.SafeSync()
}

// ––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Helper functions
// ––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

func resolveCallContext(skip int) (component, action string) {
	pc, file, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", "unknown"
	}
	parts := strings.Split(file, "/")
	if len(parts) >= 2 {
		component = parts[len(parts)-2]
	} else {
		component = strings.TrimSuffix(parts[0], ".go")
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		fields := strings.Split(fn.Name(), ".")
		action = fields[len(fields)-1]
	} else {
		action = "unknown"
	}
	return
}

func classifyError(err error) string {
	if err == nil {
		return ""
	}
	var classified *kit_err.ClassifiedError
	if cerr.As(err, &classified) {
		return classified.Category.String()
	}
	if kit_err.IsExpectedUserError(err) {
		return "user"
	}
	return "system"
}

// Executable reports the running binary path, or "unknown".
func Executable() string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	return "unknown"
}
