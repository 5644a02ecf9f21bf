package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vitrineshop/vitrine/internal/adapter/config"
	"github.com/vitrineshop/vitrine/internal/core/port"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	checkoutHandler *CheckoutHandler,
	orderHandler *OrderHandler,
	adminHandler *AdminHandler,
	feedHandler *FeedHandler) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/checkout", checkoutHandler.Checkout)
		api.GET("/payments/:transactionID", checkoutHandler.PaymentStatus)

		admin := api.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)

			orders := admin.Group("/orders")
			{
				orders.Use(authCheck(tokenService))
				orders.GET("", orderHandler.ListRecentOrders)
				orders.GET("/feed", feedHandler.Subscribe)
				orders.GET("/:id", orderHandler.GetOrder)
				orders.POST("/:id/cancel", orderHandler.CancelOrder)
				orders.PATCH("/:id/delivery", orderHandler.UpdateDelivery)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
