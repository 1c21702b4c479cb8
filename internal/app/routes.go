package app

import (
	"github.com/gin-gonic/gin"
	"github.com/devmarrez/payment-relay/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.PaymentHandler) {
	app := a.Router.Group("/payments")
	app.POST("", h.CreatePayment)
	app.GET("/:id/deliveries", h.ListFailedDeliveries)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
