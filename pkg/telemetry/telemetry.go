// pkg/telemetry/telemetry.go
package telemetry

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/shared"
	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var tracer trace.Tracer = noop.NewTracerProvider().Tracer(shared.AppID)

// Init configures OpenTelemetry; call this early in main(). The returned
// shutdown flushes pending spans and is safe to call when telemetry is off.
func Init(service string) (func(context.Context) error, error) {
	if !IsEnabled() {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		tracer = tp.Tracer(service)
		return func(context.Context) error { return nil }, nil
	}

	telemetryFile := FilePath()
	if err := os.MkdirAll(filepath.Dir(telemetryFile), shared.SecretDirPerm); err != nil {
		return nil, cerr.Wrap(err, "failed to create telemetry directory")
	}

	file, err := os.OpenFile(telemetryFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, shared.FilePermOwnerReadWrite)
	if err != nil {
		return nil, cerr.Wrap(err, "failed to open telemetry file")
	}

	// Use stdout exporter but write to file instead of stdout
	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		file.Close()
		return nil, cerr.Wrap(err, "failed to create file exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(
			sdkresource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("service.name", service),
				attribute.String("service.version", shared.Version),
				attribute.String("user_id", AnonTelemetryID()),
			),
		),
	)

	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(service)

	return func(ctx context.Context) error {
		defer file.Close()
		return tp.Shutdown(ctx)
	}, nil
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// TogglePath is the marker file whose presence turns telemetry on.
func TogglePath() string {
	return shared.StatePath(shared.TelemetryToggleFile)
}

// FilePath is where spans are appended in JSONL form.
func FilePath() string {
	return shared.StatePath(shared.TelemetryDirName, shared.TelemetryFileName)
}

func IsEnabled() bool {
	_, err := os.Stat(TogglePath())
	return err == nil
}

// Enable writes the toggle file.
func Enable() error {
	path := TogglePath()
	if err := os.MkdirAll(filepath.Dir(path), shared.SecretDirPerm); err != nil {
		return cerr.Wrap(err, "mkdir failed")
	}
	if err := os.WriteFile(path, []byte("on\n"), shared.SecretFilePerm); err != nil {
		return cerr.Wrap(err, "enable telemetry")
	}
	return nil
}

// Disable removes the toggle file; already disabled is not an error.
func Disable() error {
	if err := os.Remove(TogglePath()); err != nil && !os.IsNotExist(err) {
		return cerr.Wrap(err, "disable telemetry")
	}
	return nil
}

// Status summarises the local telemetry state.
type Status struct {
	Enabled  bool
	FilePath string
	Spans    int
}

func CurrentStatus() (Status, error) {
	st := Status{Enabled: IsEnabled(), FilePath: FilePath()}

	f, err := os.Open(st.FilePath)
	if os.IsNotExist(err) {
		return st, nil
	}
	if err != nil {
		return st, cerr.Wrap(err, "open telemetry file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			st.Spans++
		}
	}
	if err := scanner.Err(); err != nil {
		return st, cerr.Wrap(err, "read telemetry file")
	}
	return st, nil
}

func AnonTelemetryID() string {
	path := shared.StatePath(shared.TelemetryIDFile)

	if data, err := os.ReadFile(path); err == nil {
		return strings.TrimSpace(string(data))
	}

	id := "anon-" + uuid.New().String()
	_ = os.MkdirAll(filepath.Dir(path), shared.SecretDirPerm)
	_ = os.WriteFile(path, []byte(id), shared.SecretFilePerm)

	return id
}
