package observability

import (
	"context"
	"strings"
	"sync"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/xfitlib/xfit/lib/tree"
)

var (
	once sync.Once
)

type indexStats struct {
	ctx              context.Context
	shutdownCallback func(ctx context.Context) error
	ownedBlocks      metric.Int64ObservableUpDownCounter
}

func (stats *indexStats) waitForShutdown() {
	if stats == nil || stats.shutdownCallback == nil {
		return
	}
	go func() {
		<-stats.ctx.Done()
		_ = stats.shutdownCallback(context.Background())
	}()
}

// InitIndexStats registers the free-block index metrics on the global meter
// provider. Without the alloctrack build tag the owned-block count observes
// as a constant 0.
func InitIndexStats(ctx context.Context, name string) {
	once.Do(func() {
		builder := &strings.Builder{}
		builder.WriteString("xfit/index")
		if len(strings.TrimSpace(name)) > 0 {
			builder.Write([]byte("/"))
			builder.WriteString(name)
		} else {
			builder.Write([]byte("/"))
			builder.WriteString("default")
		}
		name = builder.String()
		stats := &indexStats{
			ctx: ctx,
			ownedBlocks: lo.Must[metric.Int64ObservableUpDownCounter](otel.Meter(
				name,
			).Int64ObservableUpDownCounter(
				"index.free_blocks.owned",
				metric.WithDescription(`The number of blocks currently owned by the free-block index.`),
				metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
					ob.Observe(tree.NumNodes())
					return nil
				}),
			),
			),
		}
		stats.waitForShutdown()
	})
}
