package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vitrineshop/vitrine/internal/core/domain"
	"github.com/vitrineshop/vitrine/internal/core/port"
)

type OrderHandler struct {
	Handler
	service  port.Service
	notifier port.Notifier
}

func NewOrderHandler(service port.Service, notifier port.Notifier, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler:  *NewHandler(logger),
		service:  service,
		notifier: notifier,
	}, nil
}

type orderItemResp struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type orderResp struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	Items           []orderItemResp `json:"items"`
	TotalAmount     string          `json:"totalAmount"`
	CustomerName    string          `json:"customerName"`
	DeliveryDetails string          `json:"deliveryDetails,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func toOrderResp(o *domain.Order) orderResp {
	items := make([]orderItemResp, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResp{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
		})
	}
	return orderResp{
		ID:              o.ID,
		Number:          o.Number,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		Items:           items,
		TotalAmount:     o.TotalAmount.String(),
		CustomerName:    o.Customer.Name,
		DeliveryDetails: o.DeliveryDetails,
		CreatedAt:       o.CreatedAt,
	}
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, toOrderResp(order))
}

func (oh *OrderHandler) ListRecentOrders(ctx *gin.Context) {
	limit := 20
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			oh.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
		limit = parsed
	}

	list, err := oh.service.ListRecentOrders(ctx, limit)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, order := range list {
		result = append(result, toOrderResp(order))
	}

	oh.handleSuccess(ctx, result)
}

// CancelOrder cancels and then notifies the customer best-effort. The
// business result does not depend on the notification outcome.
func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	order, err := oh.service.CancelOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	err = oh.notifier.Send(ctx, port.Notification{
		Kind:  port.NotificationStatusUpdate,
		Order: *order,
	})
	if err != nil {
		oh.logger.Warn("Cancellation notification",
			zap.String("order", order.ID), zap.Error(err))
	}

	oh.handleSuccess(ctx, toOrderResp(order))
}

type deliveryRequest struct {
	Details string `json:"details" binding:"required"`
}

func (oh *OrderHandler) UpdateDelivery(ctx *gin.Context) {
	var req deliveryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.UpdateDeliveryDetails(ctx, ctx.Param("id"), req.Details)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, toOrderResp(order))
}
