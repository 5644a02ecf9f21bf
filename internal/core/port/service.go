package port

import (
	"context"

	"github.com/vitrineshop/vitrine/internal/core/domain"
)

type CheckoutItem struct {
	ProductID string
	Quantity  int
}

type CheckoutRequest struct {
	Items    []CheckoutItem
	Customer domain.Customer
}

type CheckoutResult struct {
	Order    *domain.Order
	Redirect *domain.PaymentRedirect
}

type Service interface {
	PlaceOrder(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	InitiatePayment(ctx context.Context, order *domain.Order) (*domain.PaymentRedirect, error)
	ReconcilePayment(ctx context.Context, transactionID string) (*domain.Settlement, error)

	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error)
	CancelOrder(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateDeliveryDetails(ctx context.Context, orderID string, details string) (*domain.Order, error)
}
