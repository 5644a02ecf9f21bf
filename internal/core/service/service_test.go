package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/vitrineshop/vitrine/internal/adapter/metrics"
	"github.com/vitrineshop/vitrine/internal/core/domain"
	"github.com/vitrineshop/vitrine/internal/core/port"
	"github.com/vitrineshop/vitrine/internal/core/port/mock"
	"github.com/vitrineshop/vitrine/internal/core/service"
)

func mustDec(s string) decimal.Decimal {
	d, err := decimal.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestService(t *testing.T, repo port.Repository, gateway port.PaymentGateway,
	scheduler port.PaymentScheduler) *service.Service {
	t.Helper()

	logger, _ := zap.NewProduction()
	mtr := metrics.MustNewMetrics(prometheus.NewRegistry())

	s, err := service.NewService(repo, gateway, scheduler, mtr, logger)
	assert.NoError(t, err)
	return s
}

// stubInventory records stock adjustments the way the store transaction
// would apply them.
type stubInventory struct {
	stock   map[string]int
	missing map[string]bool
	calls   int
}

func (s *stubInventory) AdjustStock(_ context.Context, productID string, delta int) error {
	s.calls++
	if s.missing[productID] {
		return domain.ErrDataNotFound
	}
	s.stock[productID] += delta
	return nil
}

func cloneOrder(o *domain.Order) *domain.Order {
	clone := *o
	clone.Items = append([]domain.OrderItem(nil), o.Items...)
	return &clone
}

// applyUpdate emulates Repository.UpdateOrderInTx against an in-memory
// order: fn runs against a fresh copy and a successful run bumps the
// version, like the conditional write would.
func applyUpdate(state **domain.Order, inv port.Inventory) func(context.Context, string, port.UpdateOrderFn) (*domain.Order, error) {
	return func(_ context.Context, _ string, fn port.UpdateOrderFn) (*domain.Order, error) {
		order := cloneOrder(*state)
		err := fn(order, inv)
		if errors.Is(err, domain.ErrNoUpdatedData) {
			return cloneOrder(*state), nil
		}
		if err != nil {
			return nil, err
		}
		order.Version++
		*state = order
		return cloneOrder(order), nil
	}
}

func pendingPaidOrder() *domain.Order {
	return &domain.Order{
		ID:            "o1",
		Number:        "ORD-1",
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusCompleted,
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Mug", Quantity: 2, Price: mustDec("10.00")},
		},
		TotalAmount: mustDec("20.00"),
		Customer:    domain.Customer{Name: "Ann", Email: "ann@example.com", Phone: "+100"},
		CreatedAt:   time.Now(),
		Version:     3,
	}
}

func TestService_InitiatePayment_Validation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		order    *domain.Order
		expError error
	}{
		{
			name: "zero amount rejected before gateway call",
			order: &domain.Order{
				ID:          "o1",
				TotalAmount: decimal.Zero,
				Customer:    domain.Customer{Phone: "+100"},
			},
			expError: domain.ErrInvalidAmount,
		},
		{
			name: "missing phone rejected before gateway call",
			order: &domain.Order{
				ID:          "o1",
				TotalAmount: mustDec("20.00"),
			},
			expError: domain.ErrPhoneRequired,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			gateway := mock.NewMockPaymentGateway(mockCtrl)
			scheduler := mock.NewMockPaymentScheduler(mockCtrl)
			// No expectations on the gateway: any call fails the test.

			s := newTestService(t, repo, gateway, scheduler)

			redirect, err := s.InitiatePayment(context.Background(), test.order)

			assert.Nil(t, redirect)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_InitiatePayment_Success(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	gateway := mock.NewMockPaymentGateway(mockCtrl)
	scheduler := mock.NewMockPaymentScheduler(mockCtrl)

	order := pendingPaidOrder()
	order.PaymentStatus = domain.PaymentStatusPending

	var persisted *domain.PaymentTransaction
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req port.PaymentRequest) (*domain.PaymentRedirect, error) {
			assert.Equal(t, "+100", req.Customer.Phone)
			return &domain.PaymentRedirect{
				TransactionID: req.TransactionID,
				RedirectURL:   "https://pay.example.com/" + req.TransactionID,
			}, nil
		})
	repo.EXPECT().CreatePaymentTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *domain.PaymentTransaction) error {
			persisted = tx
			return nil
		})

	scheduled := make(chan struct{})
	scheduler.EXPECT().SchedulePaymentCheck(gomock.Any()).Do(func(string) {
		close(scheduled)
	})

	s := newTestService(t, repo, gateway, scheduler)

	redirect, err := s.InitiatePayment(context.Background(), order)

	assert.NoError(t, err)
	assert.NotNil(t, redirect)
	assert.NotEmpty(t, redirect.TransactionID)
	assert.Contains(t, redirect.RedirectURL, redirect.TransactionID)

	assert.NotNil(t, persisted)
	assert.Equal(t, redirect.TransactionID, persisted.MerchantTransactionID)
	assert.Equal(t, "o1", persisted.OrderID)

	select {
	case <-scheduled:
	case <-time.After(time.Second):
		t.Fatal("payment check was not scheduled")
	}
}

func TestService_InitiatePayment_GatewayFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := pendingPaidOrder()
	order.PaymentStatus = domain.PaymentStatusPending

	tests := []struct {
		name     string
		redirect *domain.PaymentRedirect
		err      error
		expError error
	}{
		{
			name:     "adapter error propagates",
			err:      domain.ErrGatewayUnavailable,
			expError: domain.ErrGatewayUnavailable,
		},
		{
			name:     "missing redirect url",
			redirect: &domain.PaymentRedirect{TransactionID: "t1"},
			expError: domain.ErrGatewayResponse,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			gateway := mock.NewMockPaymentGateway(mockCtrl)
			scheduler := mock.NewMockPaymentScheduler(mockCtrl)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(test.redirect, test.err)
			// No expectation on CreatePaymentTransaction: a failed attempt
			// must leave no local state.

			s := newTestService(t, repo, gateway, scheduler)

			redirect, err := s.InitiatePayment(context.Background(), order)

			assert.Nil(t, redirect)
			assert.ErrorIs(t, err, test.expError)
		})
	}
}

func TestService_ReconcilePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ptx := &domain.PaymentTransaction{
		MerchantTransactionID: "t1",
		OrderID:               "o1",
		Amount:                mustDec("20.00"),
	}

	t.Run("success settles the order and commits stock", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		order := pendingPaidOrder()
		order.PaymentStatus = domain.PaymentStatusPending
		inv := &stubInventory{stock: map[string]int{"p1": 5}}

		repo.EXPECT().ReadPaymentTransaction(gomock.Any(), "t1").Return(ptx, nil)
		gateway.EXPECT().PaymentStatus(gomock.Any(), "t1").Return(
			&domain.Settlement{TransactionID: "t1", State: domain.SettlementSuccess}, nil)
		repo.EXPECT().UpdateOrderInTx(gomock.Any(), "o1", gomock.Any()).DoAndReturn(applyUpdate(&order, inv))
		repo.EXPECT().DeletePaymentTransaction(gomock.Any(), "t1").Return(nil)

		s := newTestService(t, repo, gateway, scheduler)

		settlement, err := s.ReconcilePayment(context.Background(), "t1")

		assert.NoError(t, err)
		assert.Equal(t, domain.SettlementSuccess, settlement.State)
		assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
		assert.Equal(t, domain.PaymentStatusCompleted, order.PaymentStatus)
		assert.Equal(t, 3, inv.stock["p1"])
	})

	t.Run("pending settlement mutates nothing", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		repo.EXPECT().ReadPaymentTransaction(gomock.Any(), "t1").Return(ptx, nil)
		gateway.EXPECT().PaymentStatus(gomock.Any(), "t1").Return(
			&domain.Settlement{TransactionID: "t1", State: domain.SettlementPending}, nil)

		s := newTestService(t, repo, gateway, scheduler)

		settlement, err := s.ReconcilePayment(context.Background(), "t1")

		assert.NoError(t, err)
		assert.Equal(t, domain.SettlementPending, settlement.State)
	})

	t.Run("failed settlement marks payment failed without stock effect", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		order := pendingPaidOrder()
		order.PaymentStatus = domain.PaymentStatusPending
		inv := &stubInventory{stock: map[string]int{"p1": 5}}

		repo.EXPECT().ReadPaymentTransaction(gomock.Any(), "t1").Return(ptx, nil)
		gateway.EXPECT().PaymentStatus(gomock.Any(), "t1").Return(
			&domain.Settlement{TransactionID: "t1", State: domain.SettlementFailed}, nil)
		repo.EXPECT().UpdateOrderInTx(gomock.Any(), "o1", gomock.Any()).DoAndReturn(applyUpdate(&order, inv))
		repo.EXPECT().DeletePaymentTransaction(gomock.Any(), "t1").Return(nil)

		s := newTestService(t, repo, gateway, scheduler)

		settlement, err := s.ReconcilePayment(context.Background(), "t1")

		assert.NoError(t, err)
		assert.Equal(t, domain.SettlementFailed, settlement.State)
		assert.Equal(t, domain.PaymentStatusFailed, order.PaymentStatus)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		assert.Equal(t, 5, inv.stock["p1"])
		assert.Zero(t, inv.calls)
	})

	t.Run("second reconcile is a no-op on a settled order", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		order := pendingPaidOrder() // paymentStatus already COMPLETED
		inv := &stubInventory{stock: map[string]int{"p1": 3}}

		repo.EXPECT().ReadPaymentTransaction(gomock.Any(), "t1").Return(ptx, nil)
		gateway.EXPECT().PaymentStatus(gomock.Any(), "t1").Return(
			&domain.Settlement{TransactionID: "t1", State: domain.SettlementSuccess}, nil)
		repo.EXPECT().UpdateOrderInTx(gomock.Any(), "o1", gomock.Any()).DoAndReturn(applyUpdate(&order, inv))
		repo.EXPECT().DeletePaymentTransaction(gomock.Any(), "t1").Return(nil)

		s := newTestService(t, repo, gateway, scheduler)

		_, err := s.ReconcilePayment(context.Background(), "t1")

		assert.NoError(t, err)
		assert.Zero(t, inv.calls)
		assert.Equal(t, 3, inv.stock["p1"])
	})

	t.Run("transient gateway error is retryable", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		repo.EXPECT().ReadPaymentTransaction(gomock.Any(), "t1").Return(ptx, nil)
		gateway.EXPECT().PaymentStatus(gomock.Any(), "t1").Return(nil, domain.ErrGatewayUnavailable)

		s := newTestService(t, repo, gateway, scheduler)

		settlement, err := s.ReconcilePayment(context.Background(), "t1")

		assert.Nil(t, settlement)
		assert.True(t, domain.IsRetryable(err))
	})

	t.Run("unknown transaction", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		repo.EXPECT().ReadPaymentTransaction(gomock.Any(), "tX").Return(nil, domain.ErrDataNotFound)

		s := newTestService(t, repo, gateway, scheduler)

		_, err := s.ReconcilePayment(context.Background(), "tX")

		assert.ErrorIs(t, err, domain.ErrDataNotFound)
	})
}

func TestService_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("paid order restores stock once", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		order := pendingPaidOrder()
		inv := &stubInventory{stock: map[string]int{"p1": 5}}

		repo.EXPECT().UpdateOrderInTx(gomock.Any(), "o1", gomock.Any()).
			DoAndReturn(applyUpdate(&order, inv)).Times(2)

		s := newTestService(t, repo, gateway, scheduler)

		cancelled, err := s.CancelOrder(context.Background(), "o1")
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)
		assert.Equal(t, domain.PaymentStatusCancelled, cancelled.PaymentStatus)
		assert.Equal(t, 7, inv.stock["p1"])

		// Second cancellation is a no-op success.
		again, err := s.CancelOrder(context.Background(), "o1")
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, again.Status)
		assert.Equal(t, 7, inv.stock["p1"])
	})

	t.Run("unpaid order restores nothing", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		order := pendingPaidOrder()
		order.PaymentStatus = domain.PaymentStatusPending
		inv := &stubInventory{stock: map[string]int{"p1": 5}}

		repo.EXPECT().UpdateOrderInTx(gomock.Any(), "o1", gomock.Any()).DoAndReturn(applyUpdate(&order, inv))

		s := newTestService(t, repo, gateway, scheduler)

		cancelled, err := s.CancelOrder(context.Background(), "o1")

		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)
		assert.Equal(t, domain.PaymentStatusPending, cancelled.PaymentStatus)
		assert.Equal(t, 5, inv.stock["p1"])
		assert.Zero(t, inv.calls)
	})

	t.Run("missing product does not abort the cancellation", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		order := pendingPaidOrder()
		order.Items = append(order.Items,
			domain.OrderItem{ProductID: "ghost", Name: "Gone", Quantity: 1, Price: mustDec("5.00")})
		inv := &stubInventory{
			stock:   map[string]int{"p1": 5},
			missing: map[string]bool{"ghost": true},
		}

		repo.EXPECT().UpdateOrderInTx(gomock.Any(), "o1", gomock.Any()).DoAndReturn(applyUpdate(&order, inv))

		s := newTestService(t, repo, gateway, scheduler)

		cancelled, err := s.CancelOrder(context.Background(), "o1")

		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)
		assert.Equal(t, 7, inv.stock["p1"])
	})

	t.Run("version conflict retries the whole read-modify-write", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		order := pendingPaidOrder()
		inv := &stubInventory{stock: map[string]int{"p1": 5}}

		repo.EXPECT().UpdateOrderInTx(gomock.Any(), "o1", gomock.Any()).
			Return(nil, domain.ErrConflictingData)
		repo.EXPECT().UpdateOrderInTx(gomock.Any(), "o1", gomock.Any()).
			DoAndReturn(applyUpdate(&order, inv))

		s := newTestService(t, repo, gateway, scheduler)

		cancelled, err := s.CancelOrder(context.Background(), "o1")

		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)
		assert.Equal(t, 7, inv.stock["p1"])
	})

	t.Run("persistent conflict surfaces after bounded retries", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		repo.EXPECT().UpdateOrderInTx(gomock.Any(), "o1", gomock.Any()).
			Return(nil, domain.ErrConflictingData).Times(3)

		s := newTestService(t, repo, gateway, scheduler)

		_, err := s.CancelOrder(context.Background(), "o1")

		assert.ErrorIs(t, err, domain.ErrConflictingData)
	})

	t.Run("order not found", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		repo.EXPECT().UpdateOrderInTx(gomock.Any(), "oX", gomock.Any()).
			Return(nil, domain.ErrDataNotFound)

		s := newTestService(t, repo, gateway, scheduler)

		_, err := s.CancelOrder(context.Background(), "oX")

		assert.ErrorIs(t, err, domain.ErrDataNotFound)
	})
}

func TestService_PlaceOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name     string
			req      port.CheckoutRequest
			expError error
		}{
			{
				name:     "no items",
				req:      port.CheckoutRequest{Customer: domain.Customer{Phone: "+100"}},
				expError: domain.ErrEmptyOrder,
			},
			{
				name: "no phone",
				req: port.CheckoutRequest{
					Items: []port.CheckoutItem{{ProductID: "p1", Quantity: 1}},
				},
				expError: domain.ErrPhoneRequired,
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				repo := mock.NewMockRepository(mockCtrl)
				gateway := mock.NewMockPaymentGateway(mockCtrl)
				scheduler := mock.NewMockPaymentScheduler(mockCtrl)

				s := newTestService(t, repo, gateway, scheduler)

				result, err := s.PlaceOrder(context.Background(), test.req)

				assert.Nil(t, result)
				assert.Equal(t, test.expError, err)
			})
		}
	})

	t.Run("prices the order from the catalog and redirects", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		repo.EXPECT().ReadProduct(gomock.Any(), "p1").Return(
			&domain.Product{ID: "p1", Name: "Mug", Price: mustDec("10.00"), Stock: 5}, nil)
		repo.EXPECT().ReadProduct(gomock.Any(), "p2").Return(
			&domain.Product{ID: "p2", Name: "Plate", Price: mustDec("7.50"), Stock: 9}, nil)
		repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				order.ID = "o1"
				order.CreatedAt = time.Now()
				order.Version = 1
				return order, nil
			})
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req port.PaymentRequest) (*domain.PaymentRedirect, error) {
				assert.Zero(t, req.Amount.Cmp(mustDec("27.50")))
				return &domain.PaymentRedirect{TransactionID: req.TransactionID, RedirectURL: "https://pay.example.com/x"}, nil
			})
		repo.EXPECT().CreatePaymentTransaction(gomock.Any(), gomock.Any()).Return(nil)

		scheduled := make(chan struct{})
		scheduler.EXPECT().SchedulePaymentCheck(gomock.Any()).Do(func(string) {
			close(scheduled)
		})

		s := newTestService(t, repo, gateway, scheduler)

		result, err := s.PlaceOrder(context.Background(), port.CheckoutRequest{
			Items: []port.CheckoutItem{
				{ProductID: "p1", Quantity: 2},
				{ProductID: "p2", Quantity: 1},
			},
			Customer: domain.Customer{Name: "Ann", Email: "ann@example.com", Phone: "+100"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "o1", result.Order.ID)
		assert.Equal(t, domain.OrderStatusPending, result.Order.Status)
		assert.Equal(t, domain.PaymentStatusPending, result.Order.PaymentStatus)
		assert.Zero(t, result.Order.TotalAmount.Cmp(mustDec("27.50")))
		assert.Len(t, result.Order.Items, 2)
		assert.NotEmpty(t, result.Redirect.RedirectURL)

		select {
		case <-scheduled:
		case <-time.After(time.Second):
			t.Fatal("payment check was not scheduled")
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		scheduler := mock.NewMockPaymentScheduler(mockCtrl)

		repo.EXPECT().ReadProduct(gomock.Any(), "ghost").Return(nil, domain.ErrDataNotFound)

		s := newTestService(t, repo, gateway, scheduler)

		result, err := s.PlaceOrder(context.Background(), port.CheckoutRequest{
			Items:    []port.CheckoutItem{{ProductID: "ghost", Quantity: 1}},
			Customer: domain.Customer{Phone: "+100"},
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrDataNotFound)
	})
}

func TestService_UpdateDeliveryDetails(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	gateway := mock.NewMockPaymentGateway(mockCtrl)
	scheduler := mock.NewMockPaymentScheduler(mockCtrl)

	order := pendingPaidOrder()
	inv := &stubInventory{stock: map[string]int{}}

	repo.EXPECT().UpdateOrderInTx(gomock.Any(), "o1", gomock.Any()).
		DoAndReturn(applyUpdate(&order, inv)).Times(2)

	s := newTestService(t, repo, gateway, scheduler)

	updated, err := s.UpdateDeliveryDetails(context.Background(), "o1", "Courier after 6pm")
	assert.NoError(t, err)
	assert.Equal(t, "Courier after 6pm", updated.DeliveryDetails)

	// Same value again: no write, same result.
	same, err := s.UpdateDeliveryDetails(context.Background(), "o1", "Courier after 6pm")
	assert.NoError(t, err)
	assert.Equal(t, "Courier after 6pm", same.DeliveryDetails)
	assert.Equal(t, updated.Version, same.Version)
}
