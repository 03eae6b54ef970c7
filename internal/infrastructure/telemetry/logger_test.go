package telemetry_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mrops-br/products-catalog-api/internal/infrastructure/config"
	"github.com/mrops-br/products-catalog-api/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func testConfig(level slog.Level) *config.OTLPConfig {
	return &config.OTLPConfig{
		ServiceName: "products-api",
		Environment: "test",
		LogLevel:    level,
	}
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestNewLogger_BaseAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewLogger(&buf, testConfig(slog.LevelDebug))

	logger.Info("hello")

	record := decodeLine(t, &buf)
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "products-api", record["service.name"])
	assert.Equal(t, "test", record["environment"])
	assert.NotContains(t, record, "trace_id")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewLogger(&buf, testConfig(slog.LevelWarn))

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Equal(t, "kept", decodeLine(t, &buf)["msg"])
}

func TestNewLogger_TraceContext(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewLogger(&buf, testConfig(slog.LevelDebug))

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	rctx := chi.NewRouteContext()
	rctx.RoutePatterns = []string{"/products/*", "/{id}"}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

	logger.InfoContext(ctx, "traced")

	record := decodeLine(t, &buf)
	assert.Equal(t, span.SpanContext().TraceID().String(), record["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), record["span_id"])
	assert.Equal(t, "/products/{id}", record["http.route"])
}

func TestHTTPRouteFromContext_Missing(t *testing.T) {
	assert.Empty(t, telemetry.HTTPRouteFromContext(context.Background()))

	// routing not finished yet
	ctx := context.WithValue(context.Background(), chi.RouteCtxKey, chi.NewRouteContext())
	assert.Empty(t, telemetry.HTTPRouteFromContext(ctx))
}

func TestNewLogger_RequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewLogger(&buf, testConfig(slog.LevelDebug))
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")

	logger.InfoContext(ctx, "with request id")

	assert.Equal(t, "req-1", decodeLine(t, &buf)["request_id"])
}
