package observability

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
)

func TestNewConsoleMetricsExporter(t *testing.T) {
	shutdown, err := NewConsoleMetricsExporter(
		100*time.Millisecond,
		50*time.Millisecond,
		stdoutmetric.WithWriter(io.Discard),
	)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}

func TestNewPrometheusMetricsExporter(t *testing.T) {
	shutdown, err := NewPrometheusMetricsExporter()
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}
