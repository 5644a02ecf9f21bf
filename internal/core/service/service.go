package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/vitrineshop/vitrine/internal/core/domain"
	"github.com/vitrineshop/vitrine/internal/core/port"
)

// updateRetries bounds re-runs of a read-modify-write that lost a version
// race. Each retry re-reads the order, so the loop always observes the
// winner's write.
const updateRetries = 3

type Service struct {
	repo      port.Repository
	gateway   port.PaymentGateway
	scheduler port.PaymentScheduler
	metrics   port.Metrics
	logger    *zap.Logger
}

func NewService(repo port.Repository, gateway port.PaymentGateway,
	scheduler port.PaymentScheduler, metrics port.Metrics, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:      repo,
		gateway:   gateway,
		scheduler: scheduler,
		metrics:   metrics,
		logger:    logger,
	}, nil
}

func (s *Service) PlaceOrder(ctx context.Context, req port.CheckoutRequest) (*port.CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if req.Customer.Phone == "" {
		return nil, domain.ErrPhoneRequired
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	total := decimal.Zero
	for _, it := range req.Items {
		product, err := s.repo.ReadProduct(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		qty, err := decimal.New(int64(it.Quantity), 0)
		if err != nil {
			return nil, fmt.Errorf("math error: %w", err)
		}
		line, err := product.Price.Mul(qty)
		if err != nil {
			return nil, fmt.Errorf("math error: %w", err)
		}
		total, err = total.Add(line)
		if err != nil {
			return nil, fmt.Errorf("math error: %w", err)
		}
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  it.Quantity,
			Price:     product.Price,
		})
	}

	order := &domain.Order{
		Number:        fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		Items:         items,
		TotalAmount:   total,
		Customer:      req.Customer,
	}

	order, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	redirect, err := s.InitiatePayment(ctx, order)
	if err != nil {
		return nil, err
	}

	return &port.CheckoutResult{Order: order, Redirect: redirect}, nil
}

// InitiatePayment starts one checkout attempt against the gateway. A retry
// of the same logical checkout is a new attempt with a fresh transaction id.
func (s *Service) InitiatePayment(ctx context.Context, order *domain.Order) (*domain.PaymentRedirect, error) {
	if order.TotalAmount.Cmp(decimal.Zero) <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if order.Customer.Phone == "" {
		return nil, domain.ErrPhoneRequired
	}

	transactionID := uuid.NewString()

	redirect, err := s.gateway.CreatePayment(ctx, port.PaymentRequest{
		TransactionID: transactionID,
		UserID:        "MUID-" + order.ID,
		Amount:        order.TotalAmount,
		Customer:      order.Customer,
	})
	if err != nil {
		s.logger.Error("Create payment", zap.String("order", order.ID), zap.Error(err))
		return nil, err
	}
	if redirect.RedirectURL == "" {
		return nil, domain.ErrGatewayResponse
	}

	// Persisted only after the gateway accepted the attempt, so a rejected
	// checkout leaves no local state behind.
	err = s.repo.CreatePaymentTransaction(ctx, &domain.PaymentTransaction{
		MerchantTransactionID: transactionID,
		MerchantUserID:        "MUID-" + order.ID,
		OrderID:               order.ID,
		Amount:                order.TotalAmount,
		CreatedAt:             time.Now(),
	})
	if err != nil {
		s.logger.Error("Persist payment transaction", zap.Error(err))
		return nil, err
	}

	go s.scheduler.SchedulePaymentCheck(transactionID)

	return redirect, nil
}

// ReconcilePayment polls the gateway for a settlement and applies a terminal
// result to the order. Safe to call repeatedly for the same transaction: the
// terminal-state guard in applySettlement keeps side effects single-shot.
func (s *Service) ReconcilePayment(ctx context.Context, transactionID string) (*domain.Settlement, error) {
	ptx, err := s.repo.ReadPaymentTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	settlement, err := s.gateway.PaymentStatus(ctx, transactionID)
	if err != nil {
		s.metrics.ReconcileResult("error")
		return nil, fmt.Errorf("payment status for %s: %w", transactionID, err)
	}

	switch settlement.State {
	case domain.SettlementPending:
		s.metrics.ReconcileResult("pending")
		return settlement, nil
	case domain.SettlementSuccess:
		_, err = s.applySettlement(ctx, ptx.OrderID, domain.PaymentStatusCompleted)
	case domain.SettlementFailed:
		_, err = s.applySettlement(ctx, ptx.OrderID, domain.PaymentStatusFailed)
	default:
		s.metrics.ReconcileResult("error")
		return nil, fmt.Errorf("settlement state %q: %w", settlement.State, domain.ErrGatewayResponse)
	}
	if err != nil {
		s.metrics.ReconcileResult("error")
		return nil, err
	}

	// The transaction record only exists to survive the redirect round-trip.
	if err := s.repo.DeletePaymentTransaction(ctx, transactionID); err != nil {
		s.logger.Warn("Discard payment transaction", zap.String("transaction", transactionID), zap.Error(err))
	}

	s.metrics.ReconcileResult(string(settlement.State))
	return settlement, nil
}

// applySettlement moves the payment status to a terminal value and, on
// capture, confirms the order and commits its stock. An order that already
// reached a terminal state is left untouched.
func (s *Service) applySettlement(ctx context.Context, orderID string, status domain.PaymentStatus) (*domain.Order, error) {
	return s.updateOrder(ctx, orderID, func(o *domain.Order, inventory port.Inventory) error {
		if o.Terminal() || o.PaymentStatus.Terminal() {
			return domain.ErrNoUpdatedData
		}
		o.PaymentStatus = status
		if status != domain.PaymentStatusCompleted {
			return nil
		}
		o.Status = domain.OrderStatusConfirmed
		for _, item := range o.Items {
			err := inventory.AdjustStock(ctx, item.ProductID, -item.Quantity)
			if err != nil {
				if errors.Is(err, domain.ErrDataNotFound) {
					s.logger.Warn("Product missing on stock commit",
						zap.String("order", o.ID), zap.String("product", item.ProductID))
					continue
				}
				return err
			}
		}
		return nil
	})
}

// CancelOrder cancels the order and, when funds were captured, restores the
// stock of every item in the same store transaction. Cancelling an already
// cancelled order is a no-op success.
func (s *Service) CancelOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.updateOrder(ctx, orderID, func(o *domain.Order, inventory port.Inventory) error {
		if o.Terminal() {
			return domain.ErrNoUpdatedData
		}
		paid := o.Paid()
		o.Status = domain.OrderStatusCancelled
		if !paid {
			return nil
		}
		o.PaymentStatus = domain.PaymentStatusCancelled
		for _, item := range o.Items {
			err := inventory.AdjustStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				if errors.Is(err, domain.ErrDataNotFound) {
					// Inventory data quality is a separate concern from
					// order terminality.
					s.logger.Warn("Product missing on stock restore",
						zap.String("order", o.ID), zap.String("product", item.ProductID))
					continue
				}
				return err
			}
		}
		return nil
	})
}

func (s *Service) updateOrder(ctx context.Context, orderID string, fn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order
	var err error
	for attempt := 0; attempt < updateRetries; attempt++ {
		order, err = s.repo.UpdateOrderInTx(ctx, orderID, fn)
		if !errors.Is(err, domain.ErrConflictingData) {
			return order, err
		}
		s.metrics.ConflictRetry()
		s.logger.Debug("Retrying order update after version conflict",
			zap.String("order", orderID), zap.Int("attempt", attempt+1))
	}
	return nil, err
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Read order", zap.Error(err))
		}
		return nil, err
	}
	return order, nil
}

func (s *Service) ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error) {
	list, err := s.repo.ListRecentOrders(ctx, limit)
	if err != nil {
		s.logger.Error("List recent orders", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// UpdateDeliveryDetails is an admin action independent of the payment and
// cancellation flow; it stays allowed on terminal orders.
func (s *Service) UpdateDeliveryDetails(ctx context.Context, orderID string, details string) (*domain.Order, error) {
	return s.updateOrder(ctx, orderID, func(o *domain.Order, _ port.Inventory) error {
		if o.DeliveryDetails == details {
			return domain.ErrNoUpdatedData
		}
		o.DeliveryDetails = details
		return nil
	})
}
