package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInit_Disabled(t *testing.T) {
	// Arrange
	before := otel.GetTracerProvider()

	// Act
	shutdown, err := Init(context.Background(), "", "url-shortener")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestInit_Enabled(t *testing.T) {
	// Arrange
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	// Act
	shutdown, err := Init(context.Background(), "localhost:4317", "url-shortener")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	// Коллектора нет, ошибка экспорта при остановке допустима
	_ = shutdown(ctx)
}
