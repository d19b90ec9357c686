package telemetry

import (
	"context"
	"os"
	"testing"
)

func TestTracerWithoutSetup(t *testing.T) {
	// Without Setup the global provider is a no-op, so spans must be safe to use.
	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("Expected a non-recording span before Setup")
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop.span")
	defer span.End()

	if span.IsRecording() {
		t.Error("No-op tracer spans should not record")
	}
}

func TestSetupDisabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")

	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown returned error: %v", err)
	}
}

func TestConfigureHoneycombEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("HONEYCOMB_ROOMGEN_API_KEY", "secret")
	t.Setenv("HONEYCOMB_ROOMGEN_DATASET", "")

	ConfigureHoneycombEnv()

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "https://api.honeycomb.io" {
		t.Errorf("endpoint = %q", got)
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "x-honeycomb-team=secret,x-honeycomb-dataset=roomgen" {
		t.Errorf("headers = %q", got)
	}
}

func TestConfigureHoneycombEnvKeepsEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")

	ConfigureHoneycombEnv()

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "http://localhost:4318" {
		t.Errorf("endpoint = %q, want the preset value", got)
	}
}
