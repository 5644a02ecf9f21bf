package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int
	Price     decimal.Decimal
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type Order struct {
	ID              string
	Number          string
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	Customer        Customer
	DeliveryDetails string
	CreatedAt       time.Time
	Version         uint64
}

// Terminal reports whether the order admits no further mutation.
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusCancelled
}

// Paid reports whether funds were captured for the order.
func (o *Order) Paid() bool {
	return o.PaymentStatus == PaymentStatusCompleted
}

type ChangeKind string

const (
	ChangeKindAdded    ChangeKind = "added"
	ChangeKindModified ChangeKind = "modified"
	ChangeKindRemoved  ChangeKind = "removed"
)

type OrderChange struct {
	Kind  ChangeKind
	Order Order
}

// OrderSnapshot is one delivery from the order watch subscription. Either
// Changes or Err is set; a snapshot-level error does not end the stream.
type OrderSnapshot struct {
	Changes []OrderChange
	Err     error
}
