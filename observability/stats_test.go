package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/xfitlib/xfit/lib/tree"
)

func TestInitIndexStats(t *testing.T) {
	reader := metric.NewManualReader()
	mp := metric.NewMeterProvider(metric.WithReader(reader))
	otel.SetMeterProvider(mp)
	defer func() {
		_ = mp.Shutdown(context.Background())
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	InitIndexStats(ctx, "ut")

	var root *tree.Block
	for i := uint64(1); i <= 8; i++ {
		root = tree.Insert(root, &tree.Block{}, i<<4)
	}

	rm := metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Equal(t, "xfit/index/ut", rm.ScopeMetrics[0].Scope.Name)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)
	require.Equal(t, "index.free_blocks.owned", rm.ScopeMetrics[0].Metrics[0].Name)

	sum, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	// tree.NumNodes observes 0 unless built with the alloctrack tag.
	require.Equal(t, tree.NumNodes(), sum.DataPoints[0].Value)
	tree.Release(root)
}
