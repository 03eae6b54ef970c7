package telemetry_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/mrops-br/products-catalog-api/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoOpTelemetry_ExposesMetricsThroughRegistry(t *testing.T) {
	telem, err := telemetry.NewNoOpTelemetry(testConfig(slog.LevelError))
	require.NoError(t, err)
	defer func() { _ = telem.Shutdown(context.Background()) }()

	counter, err := telem.MeterProvider.Meter("test").Int64Counter("products.created.total")
	require.NoError(t, err)
	counter.Add(context.Background(), 2)

	families, err := telem.Registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, family := range families {
		if strings.HasPrefix(family.GetName(), "products_created") {
			found = true
		}
	}
	assert.True(t, found, "otel counter should be exported to the prometheus registry")
}
