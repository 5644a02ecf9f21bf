package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vitrineshop/vitrine/internal/core/port"
)

const feedWriteTimeout = 5 * time.Second

// FeedHandler pushes new-order events to connected admin consoles over
// websocket. It implements port.Notifier, so the order feed treats it like
// any other sink.
type FeedHandler struct {
	Handler
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewFeedHandler(logger *zap.Logger) (*FeedHandler, error) {
	return &FeedHandler{
		Handler: *NewHandler(logger),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The route sits behind the admin token check.
				return true
			},
		},
		conns: make(map[*websocket.Conn]struct{}),
	}, nil
}

func (fh *FeedHandler) Subscribe(ctx *gin.Context) {
	conn, err := fh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		fh.logger.Warn("Feed upgrade", zap.Error(err))
		return
	}

	fh.mu.Lock()
	fh.conns[conn] = struct{}{}
	fh.mu.Unlock()

	// Reader goroutine: the client sends nothing meaningful, but reading is
	// what surfaces the close handshake.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				fh.drop(conn)
				return
			}
		}
	}()
}

func (fh *FeedHandler) drop(conn *websocket.Conn) {
	fh.mu.Lock()
	delete(fh.conns, conn)
	fh.mu.Unlock()
	_ = conn.Close()
}

type feedEvent struct {
	Kind        string    `json:"kind"`
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Send broadcasts to every connected console. A slow or gone client is
// dropped, never waited on; push delivery is best-effort by contract.
func (fh *FeedHandler) Send(_ context.Context, n port.Notification) error {
	event := feedEvent{
		Kind:        string(n.Kind),
		OrderID:     n.Order.ID,
		OrderNumber: n.Order.Number,
		Status:      string(n.Order.Status),
		TotalAmount: n.Order.TotalAmount.String(),
		CreatedAt:   n.Order.CreatedAt,
	}

	fh.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(fh.conns))
	for conn := range fh.conns {
		conns = append(conns, conn)
	}
	fh.mu.Unlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
		if err := conn.WriteJSON(event); err != nil {
			fh.logger.Debug("Feed write failed, dropping client", zap.Error(err))
			fh.drop(conn)
		}
	}

	return nil
}
