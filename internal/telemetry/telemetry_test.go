package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/fantasyquest/internal/config"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TelemetryConfig{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestHeaders(t *testing.T) {
	h := Headers(config.TelemetryConfig{APIKey: "k", Dataset: "runs"})
	assert.Equal(t, map[string]string{"x-honeycomb-team": "k", "x-honeycomb-dataset": "runs"}, h)

	h = Headers(config.TelemetryConfig{APIKey: "k"})
	assert.Equal(t, "fantasyquest", h["x-honeycomb-dataset"])
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	_, span := Tracer("combat").Start(context.Background(), "combat.turn")
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "combat.turn", ended[0].Name())
	assert.Equal(t, "fantasyquest/combat", ended[0].InstrumentationScope().Name)
}

func TestResourceNamesService(t *testing.T) {
	res, err := newResource(context.Background())
	require.NoError(t, err)

	attrs := map[string]string{}
	for _, kv := range res.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "fantasyquest", attrs["service.name"])
	assert.Equal(t, "go", attrs["telemetry.sdk.language"])
}
