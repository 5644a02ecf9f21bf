package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/vitrineshop/vitrine/internal/core/domain"
	"github.com/vitrineshop/vitrine/internal/core/port"
)

// FeedSink is one delivery target for new-order events.
type FeedSink struct {
	Name     string
	Notifier port.Notifier
}

// OrderFeed watches the order store and raises exactly one notification per
// order created after the subscription started. Creation timestamps are
// compared at seconds granularity; two orders inside the same second do not
// both notify.
type OrderFeed struct {
	watcher port.OrderWatcher
	sinks   []FeedSink
	metrics port.Metrics
	logger  *zap.Logger
	limit   int
}

func NewOrderFeed(watcher port.OrderWatcher, sinks []FeedSink,
	metrics port.Metrics, logger *zap.Logger, limit int) (*OrderFeed, error) {
	return &OrderFeed{
		watcher: watcher,
		sinks:   sinks,
		metrics: metrics,
		logger:  logger,
		limit:   limit,
	}, nil
}

// Run consumes the watch subscription until the context is cancelled or the
// stream closes. The first snapshot only establishes the watermark: anything
// already present when the session starts is known, not new.
func (f *OrderFeed) Run(ctx context.Context) error {
	snapshots, err := f.watcher.WatchRecentOrders(ctx, f.limit)
	if err != nil {
		return fmt.Errorf("watch recent orders: %w", err)
	}

	var watermark time.Time
	baseline := false

	for snapshot := range snapshots {
		if snapshot.Err != nil {
			f.metrics.FeedError()
			f.logger.Error("Order watch", zap.Error(snapshot.Err))
			continue
		}

		added := addedByCreation(snapshot.Changes)

		if !baseline {
			for _, order := range added {
				if t := order.CreatedAt.Truncate(time.Second); t.After(watermark) {
					watermark = t
				}
			}
			baseline = true
			continue
		}

		for _, order := range added {
			created := order.CreatedAt.Truncate(time.Second)
			if !created.After(watermark) {
				// Already seen, or a transport redelivery.
				continue
			}
			watermark = created
			f.emit(ctx, order)
		}
	}

	return nil
}

// addedByCreation filters the "added" records and orders them by creation
// time, so transport reordering inside a snapshot cannot reorder emissions.
func addedByCreation(changes []domain.OrderChange) []domain.Order {
	orders := make([]domain.Order, 0, len(changes))
	for _, change := range changes {
		if change.Kind == domain.ChangeKindAdded {
			orders = append(orders, change.Order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
	return orders
}

// emit delivers best-effort: a failed delivery is logged and never retried,
// and it does not block detection of later orders.
func (f *OrderFeed) emit(ctx context.Context, order domain.Order) {
	f.metrics.OrderNotified()
	f.logger.Info("New order detected",
		zap.String("order", order.ID), zap.String("number", order.Number))

	notification := port.Notification{Kind: port.NotificationNewOrder, Order: order}
	for _, sink := range f.sinks {
		if err := sink.Notifier.Send(ctx, notification); err != nil {
			f.metrics.NotificationFailed(sink.Name)
			f.logger.Warn("New order notification",
				zap.String("sink", sink.Name), zap.String("order", order.ID), zap.Error(err))
		}
	}
}
