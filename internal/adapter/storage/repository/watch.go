package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vitrineshop/vitrine/internal/core/domain"
)

// OrderWatch turns the orders table into a change-ordered subscription: it
// polls the most recently created rows and reports per-order change kinds,
// the way a document store's snapshot listener would. Transport-level retry
// lives here; consumers only see snapshots and snapshot-level errors.
type recentOrderLister interface {
	ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error)
}

type OrderWatch struct {
	repo     recentOrderLister
	interval time.Duration
	logger   *zap.Logger
}

func NewOrderWatch(repo recentOrderLister, interval time.Duration, logger *zap.Logger) (*OrderWatch, error) {
	return &OrderWatch{
		repo:     repo,
		interval: interval,
		logger:   logger,
	}, nil
}

func (w *OrderWatch) WatchRecentOrders(ctx context.Context, limit int) (<-chan domain.OrderSnapshot, error) {
	out := make(chan domain.OrderSnapshot)
	go w.poll(ctx, limit, out)
	return out, nil
}

func (w *OrderWatch) poll(ctx context.Context, limit int, out chan<- domain.OrderSnapshot) {
	defer close(out)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	known := make(map[string]uint64)
	first := true

	for {
		snapshot, ok := w.snapshot(ctx, limit, known)
		// The first snapshot is always delivered, even when empty: it is
		// the consumer's baseline.
		if ok && (first || len(snapshot.Changes) > 0 || snapshot.Err != nil) {
			select {
			case out <- snapshot:
				first = false
			case <-ctx.Done():
				return
			}
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func (w *OrderWatch) snapshot(ctx context.Context, limit int, known map[string]uint64) (domain.OrderSnapshot, bool) {
	orders, err := w.repo.ListRecentOrders(ctx, limit)
	if err != nil {
		if ctx.Err() != nil {
			return domain.OrderSnapshot{}, false
		}
		return domain.OrderSnapshot{Err: err}, true
	}

	changes := make([]domain.OrderChange, 0, len(orders))
	current := make(map[string]uint64, len(orders))

	for _, order := range orders {
		current[order.ID] = order.Version
		version, seen := known[order.ID]
		switch {
		case !seen:
			changes = append(changes, domain.OrderChange{Kind: domain.ChangeKindAdded, Order: *order})
		case version != order.Version:
			changes = append(changes, domain.OrderChange{Kind: domain.ChangeKindModified, Order: *order})
		}
	}

	for id := range known {
		if _, ok := current[id]; !ok {
			changes = append(changes, domain.OrderChange{Kind: domain.ChangeKindRemoved, Order: domain.Order{ID: id}})
			delete(known, id)
		}
	}
	for id, version := range current {
		known[id] = version
	}

	return domain.OrderSnapshot{Changes: changes}, true
}
