package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/devmarrez/payment-relay/internal/models/dto"
)

type IntakeService interface {
	Accept(ctx context.Context, req *dto.PaymentRequest) (*dto.AcceptedResponse, []string, error)
}

// DeliveryLogReader exposes the persisted webhook failures for a payment.
type DeliveryLogReader interface {
	FailedDeliveries(ctx context.Context, paymentID string) ([]models.WebhookDeliveryLog, error)
}

type PaymentHandler struct {
	Service    IntakeService
	Deliveries DeliveryLogReader
}

func NewPaymentHandler(s IntakeService, deliveries DeliveryLogReader) *PaymentHandler {
	return &PaymentHandler{Service: s, Deliveries: deliveries}
}

// POST /payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, fieldErrs, err := h.Service.Accept(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// GET /payments/:id/deliveries
func (h *PaymentHandler) ListFailedDeliveries(c *gin.Context) {
	if h.Deliveries == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "delivery log not enabled"})
		return
	}

	entries, err := h.Deliveries.FailedDeliveries(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deliveries": entries})
}
