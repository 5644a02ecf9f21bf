package port

import (
	"context"

	"github.com/vitrineshop/vitrine/internal/core/domain"
)

type NotificationKind string

const (
	NotificationNewOrder     NotificationKind = "new_order"
	NotificationStatusUpdate NotificationKind = "status_update"
)

type Notification struct {
	Kind  NotificationKind
	Order domain.Order
}

// Notifier delivers a notification best-effort. Errors are reported for the
// caller to log; delivery is never retried.
//
//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
