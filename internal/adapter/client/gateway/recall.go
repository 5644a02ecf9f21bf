package gateway

import (
	"context"

	"github.com/vitrineshop/vitrine/internal/core/port"
)

// RecallPendingPayments re-queues every persisted payment transaction for a
// status check. Run at startup: transactions left behind by a redirect
// round-trip or a process restart get reconciled instead of stranded.
func RecallPendingPayments(ctx context.Context, repo port.Repository, scheduler port.PaymentScheduler) error {
	transactions, err := repo.ListPaymentTransactions(ctx)
	if err != nil {
		return err
	}
	for _, tx := range transactions {
		scheduler.SchedulePaymentCheck(tx.MerchantTransactionID)
	}

	return nil
}
