package port

import (
	"context"

	"github.com/govalues/decimal"

	"github.com/vitrineshop/vitrine/internal/core/domain"
)

type PaymentRequest struct {
	TransactionID string
	UserID        string
	Amount        decimal.Decimal
	Customer      domain.Customer
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	CreatePayment(ctx context.Context, req PaymentRequest) (*domain.PaymentRedirect, error)
	PaymentStatus(ctx context.Context, transactionID string) (*domain.Settlement, error)
}

// PaymentScheduler queues a merchant transaction for background settlement
// polling.
type PaymentScheduler interface {
	SchedulePaymentCheck(transactionID string)
}

// PaymentReconciler is the service-side hook the status poll workers drive.
type PaymentReconciler interface {
	ReconcilePayment(ctx context.Context, transactionID string) (*domain.Settlement, error)
}
