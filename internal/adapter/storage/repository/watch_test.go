package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/vitrineshop/vitrine/internal/core/domain"
)

// scriptedLister replays a sequence of listing results, one per poll.
type scriptedLister struct {
	results [][]*domain.Order
	errs    []error
	calls   int
}

func (s *scriptedLister) ListRecentOrders(_ context.Context, _ int) ([]*domain.Order, error) {
	i := s.calls
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	s.calls++
	if s.errs != nil && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	return s.results[i], nil
}

func order(id string, version uint64) *domain.Order {
	return &domain.Order{ID: id, Version: version, CreatedAt: time.Now()}
}

func collect(t *testing.T, lister *scriptedLister, want int) []domain.OrderSnapshot {
	t.Helper()

	logger, _ := zap.NewProduction()
	watch, err := NewOrderWatch(lister, time.Millisecond, logger)
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stream, err := watch.WatchRecentOrders(ctx, 5)
	assert.NoError(t, err)

	snapshots := make([]domain.OrderSnapshot, 0, want)
	for snapshot := range stream {
		if len(snapshots) < want {
			snapshots = append(snapshots, snapshot)
		}
		if len(snapshots) == want {
			cancel()
		}
	}
	assert.Len(t, snapshots, want)
	return snapshots
}

func kinds(snapshot domain.OrderSnapshot) map[string]domain.ChangeKind {
	out := make(map[string]domain.ChangeKind, len(snapshot.Changes))
	for _, change := range snapshot.Changes {
		out[change.Order.ID] = change.Kind
	}
	return out
}

func TestOrderWatch_FirstSnapshotIsBaseline(t *testing.T) {
	lister := &scriptedLister{results: [][]*domain.Order{
		{order("o1", 1), order("o2", 1)},
	}}

	snapshots := collect(t, lister, 1)

	assert.Equal(t, map[string]domain.ChangeKind{
		"o1": domain.ChangeKindAdded,
		"o2": domain.ChangeKindAdded,
	}, kinds(snapshots[0]))
}

func TestOrderWatch_EmptyFirstSnapshotStillDelivered(t *testing.T) {
	lister := &scriptedLister{results: [][]*domain.Order{
		{},
		{order("o1", 1)},
	}}

	snapshots := collect(t, lister, 2)

	assert.Empty(t, snapshots[0].Changes)
	assert.Equal(t, map[string]domain.ChangeKind{"o1": domain.ChangeKindAdded}, kinds(snapshots[1]))
}

func TestOrderWatch_DiffKinds(t *testing.T) {
	lister := &scriptedLister{results: [][]*domain.Order{
		{order("o1", 1), order("o2", 1)},
		// o1 bumped its version, o2 fell out of the window, o3 arrived.
		{order("o1", 2), order("o3", 1)},
	}}

	snapshots := collect(t, lister, 2)

	assert.Equal(t, map[string]domain.ChangeKind{
		"o1": domain.ChangeKindModified,
		"o2": domain.ChangeKindRemoved,
		"o3": domain.ChangeKindAdded,
	}, kinds(snapshots[1]))
}

func TestOrderWatch_QuietPollsSuppressed(t *testing.T) {
	lister := &scriptedLister{results: [][]*domain.Order{
		{order("o1", 1)},
		{order("o1", 1)}, // repeated polls with no change
		{order("o1", 2)},
	}}

	snapshots := collect(t, lister, 2)

	assert.Equal(t, map[string]domain.ChangeKind{"o1": domain.ChangeKindAdded}, kinds(snapshots[0]))
	assert.Equal(t, map[string]domain.ChangeKind{"o1": domain.ChangeKindModified}, kinds(snapshots[1]))
}

func TestOrderWatch_ListErrorSurfacesAndPollingContinues(t *testing.T) {
	listErr := errors.New("connection reset")
	lister := &scriptedLister{
		results: [][]*domain.Order{
			{order("o1", 1)},
			nil,
			{order("o1", 1), order("o2", 1)},
		},
		errs: []error{nil, listErr, nil},
	}

	snapshots := collect(t, lister, 3)

	assert.ErrorIs(t, snapshots[1].Err, listErr)
	assert.Equal(t, map[string]domain.ChangeKind{"o2": domain.ChangeKindAdded}, kinds(snapshots[2]))
}
