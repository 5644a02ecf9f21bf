package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// Terminal reports whether the settlement status admits no further transition.
func (s PaymentStatus) Terminal() bool {
	return s != PaymentStatusPending && s != ""
}

type SettlementState string

const (
	SettlementPending SettlementState = "PENDING"
	SettlementSuccess SettlementState = "SUCCESS"
	SettlementFailed  SettlementState = "FAILED"
)

// Settlement is the gateway's report for one merchant transaction.
type Settlement struct {
	TransactionID string
	State         SettlementState
	Raw           string
}

// PaymentTransaction tracks one checkout attempt across the redirect
// round-trip. The order document stays the system of record.
type PaymentTransaction struct {
	MerchantTransactionID string
	MerchantUserID        string
	OrderID               string
	Amount                decimal.Decimal
	CreatedAt             time.Time
}

type PaymentRedirect struct {
	TransactionID string
	RedirectURL   string
}
