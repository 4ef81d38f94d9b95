package telemetry

import (
	"context"
	"testing"
)

func TestNoopTracerRecordsNothing(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "race")
	defer span.End()

	if span.IsRecording() {
		t.Error("noop span should not record")
	}
}

func TestEnabled(t *testing.T) {
	t.Setenv(EnvEndpoint, "")
	if Enabled() {
		t.Error("Enabled() with empty endpoint should be false")
	}

	t.Setenv(EnvEndpoint, "http://localhost:4318")
	if !Enabled() {
		t.Error("Enabled() with endpoint should be true")
	}
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	if Tracer("game") == nil {
		t.Fatal("Tracer() returned nil")
	}
}
