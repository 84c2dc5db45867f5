package navtrace

import (
	"context"
	"testing"
)

func TestNewRecorder_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	r, err := NewRecorder(context.Background())
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	if r != nil {
		t.Error("expected nil recorder without endpoint")
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.BackEvent(OutcomeFallback, 0)
	r.HistoryAdded(1)
	r.HistoryRemoved(0)
	r.ViewChanged("sessions", "windows")
	if err := r.Shutdown(context.Background()); err != nil {
		t.Errorf("nil Shutdown: %v", err)
	}
}
