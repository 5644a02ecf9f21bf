package port

import (
	"context"

	"github.com/vitrineshop/vitrine/internal/core/domain"
)

// Inventory adjusts product stock counters. Inside UpdateOrderInTx the
// implementation shares the transaction of the order write.
type Inventory interface {
	AdjustStock(ctx context.Context, productID string, delta int) error
}

// UpdateOrderFn mutates an order inside a store transaction. Returning
// domain.ErrNoUpdatedData commits nothing and surfaces the order as-is;
// any other error rolls the transaction back.
type UpdateOrderFn func(order *domain.Order, inventory Inventory) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error)
	// UpdateOrderInTx re-reads the order, applies fn and writes it back with
	// a version compare-and-set. A concurrent write surfaces as
	// domain.ErrConflictingData; the caller retries from the read.
	UpdateOrderInTx(ctx context.Context, orderID string, fn UpdateOrderFn) (*domain.Order, error)

	// Product
	ReadProduct(ctx context.Context, productID string) (*domain.Product, error)

	// PaymentTransaction
	CreatePaymentTransaction(ctx context.Context, tx *domain.PaymentTransaction) error
	ReadPaymentTransaction(ctx context.Context, transactionID string) (*domain.PaymentTransaction, error)
	DeletePaymentTransaction(ctx context.Context, transactionID string) error
	ListPaymentTransactions(ctx context.Context) ([]*domain.PaymentTransaction, error)
}

// OrderWatcher is a live subscription over the most recently created orders.
// Delivery is at-least-once and may reorder records within a snapshot.
type OrderWatcher interface {
	WatchRecentOrders(ctx context.Context, limit int) (<-chan domain.OrderSnapshot, error)
}
