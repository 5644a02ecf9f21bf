package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vitrineshop/vitrine/internal/core/domain"
	"github.com/vitrineshop/vitrine/internal/core/port"
)

type CheckoutHandler struct {
	Handler
	service port.Service
}

func NewCheckoutHandler(service port.Service, logger *zap.Logger) (*CheckoutHandler, error) {
	return &CheckoutHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type checkoutItemReq struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type checkoutRequest struct {
	Items    []checkoutItemReq `json:"items" binding:"required"`
	Customer struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Phone string `json:"phone"`
	} `json:"customer" binding:"required"`
}

type checkoutResponse struct {
	OrderID       string `json:"orderId"`
	OrderNumber   string `json:"orderNumber"`
	TotalAmount   string `json:"totalAmount"`
	TransactionID string `json:"transactionId"`
	RedirectURL   string `json:"redirectUrl"`
}

// Checkout creates the order and starts the payment attempt. The client is
// responsible for following the returned redirect.
func (ch *CheckoutHandler) Checkout(ctx *gin.Context) {
	var req checkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	checkout := port.CheckoutRequest{
		Customer: domain.Customer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
	}
	for _, item := range req.Items {
		checkout.Items = append(checkout.Items, port.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	result, err := ch.service.PlaceOrder(ctx, checkout)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, checkoutResponse{
		OrderID:       result.Order.ID,
		OrderNumber:   result.Order.Number,
		TotalAmount:   result.Order.TotalAmount.String(),
		TransactionID: result.Redirect.TransactionID,
		RedirectURL:   result.Redirect.RedirectURL,
	})
}

type settlementResponse struct {
	TransactionID string `json:"transactionId"`
	State         string `json:"state"`
}

// PaymentStatus reconciles one transaction on demand, typically when the
// customer lands back from the gateway redirect.
func (ch *CheckoutHandler) PaymentStatus(ctx *gin.Context) {
	transactionID := ctx.Param("transactionID")

	settlement, err := ch.service.ReconcilePayment(ctx, transactionID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, settlementResponse{
		TransactionID: settlement.TransactionID,
		State:         string(settlement.State),
	})
}
