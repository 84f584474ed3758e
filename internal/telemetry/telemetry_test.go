package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"uikit/internal/alert"
	"uikit/internal/config"
)

func TestNewDisabledWithoutEndpoint(t *testing.T) {
	p, err := New(context.Background(), config.TelemetryConfig{})
	require.NoError(t, err)
	assert.Nil(t, p)

	// nil provider still hands out a usable tracer
	_, span := p.Tracer().Start(context.Background(), "noop")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewWithEndpoint(t *testing.T) {
	p, err := New(context.Background(), config.TelemetryConfig{
		Endpoint:    "localhost:4318",
		ServiceName: "uikit-test",
		Insecure:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestStoreLifecycleSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	p := NewWithExporter(exporter, nil)

	s := alert.NewStore(alert.WithTracer(p.Tracer()))
	id := s.Show("saved", alert.VariantSuccess, true, alert.PositionTopLeft)
	s.Update(id, "saved again", alert.VariantSuccess, true)
	s.Remove(id)
	s.Close()

	require.NoError(t, p.ForceFlush(context.Background()))
	t.Cleanup(func() { p.Shutdown(context.Background()) })

	var names []string
	for _, span := range exporter.GetSpans() {
		names = append(names, span.Name)
	}
	assert.Equal(t, []string{"alert.show", "alert.update", "alert.remove"}, names)

	attrs := exporter.GetSpans()[0].Attributes
	found := false
	for _, kv := range attrs {
		if kv.Key == "uikit.alert.position" {
			found = true
			assert.Equal(t, "top-left", kv.Value.AsString())
		}
	}
	assert.True(t, found, "show span missing position attribute")
}
