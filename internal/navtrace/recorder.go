// Package navtrace exports navigation activity as OpenTelemetry spans.
// Disabled unless OTEL_EXPORTER_OTLP_ENDPOINT is set, so the app carries no
// telemetry cost by default.
package navtrace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Back-dispatch outcomes recorded on back spans.
const (
	OutcomeConsumed = "consumed" // topmost entry popped and handled
	OutcomeAbsorbed = "absorbed" // topmost condition false, event swallowed
	OutcomeFallback = "fallback" // empty history, default action ran
)

// Recorder emits spans for back dispatches, history changes, and view
// transitions. A nil Recorder is valid and records nothing, so callers
// never need to branch on whether telemetry is configured.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewRecorder creates a recorder exporting over OTLP/HTTP if
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Returns nil (disabled) otherwise.
func NewRecorder(ctx context.Context) (*Recorder, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "sessnav"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer("sessnav/navtrace"),
	}, nil
}

// BackEvent records one back dispatch with its outcome and the history
// depth observed before dispatch.
func (r *Recorder) BackEvent(outcome string, depth int) {
	r.span("back",
		attribute.String("sessnav.back.outcome", outcome),
		attribute.Int("sessnav.history.depth", depth),
	)
}

// HistoryAdded records a history push and the resulting depth.
func (r *Recorder) HistoryAdded(depth int) {
	r.span("history.add", attribute.Int("sessnav.history.depth", depth))
}

// HistoryRemoved records a history removal and the resulting depth.
func (r *Recorder) HistoryRemoved(depth int) {
	r.span("history.remove", attribute.Int("sessnav.history.depth", depth))
}

// ViewChanged records a view-stack transition.
func (r *Recorder) ViewChanged(from, to string) {
	r.span("view.change",
		attribute.String("sessnav.view.from", from),
		attribute.String("sessnav.view.to", to),
	)
}

// span emits an instantaneous span; navigation events have no duration
// worth measuring.
func (r *Recorder) span(name string, attrs ...attribute.KeyValue) {
	if r == nil {
		return
	}
	_, s := r.tracer.Start(context.Background(), name)
	s.SetAttributes(attrs...)
	s.End()
}

// Shutdown flushes buffered spans and stops the provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
