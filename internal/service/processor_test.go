package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/devmarrez/payment-relay/internal/gateway"
	gatewaymocks "github.com/devmarrez/payment-relay/internal/gateway/mocks"
	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/devmarrez/payment-relay/internal/service"
	"github.com/devmarrez/payment-relay/internal/service/mocks"
	"github.com/devmarrez/payment-relay/internal/subscriber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func statusDelivery(t *testing.T, record *models.PaymentStatusRecord) subscriber.Delivery {
	t.Helper()
	body, err := json.Marshal(record)
	assert.NoError(t, err)
	return subscriber.Delivery{
		Topic:         models.PaymentStatusTopic,
		Key:           "msg-1",
		Value:         body,
		DeliveryCount: 1,
	}
}

func validatedStatus() *models.PaymentStatusRecord {
	return &models.PaymentStatusRecord{
		PaymentID:  "payment-123",
		OrderID:    "order-456",
		CustomerID: "customer-789",
		Amount:     99.99,
		Currency:   models.CurrencyUSD,
		FraudScore: 20,
		Status:     models.StatusValidated,
	}
}

func TestHandleStatus_Validated_ChargeSuccess_PublishesCompletedEvent(t *testing.T) {
	mockGateway := gatewaymocks.NewMockGatewayClient(t)
	mockPublisher := mocks.NewMockPublisher(t)
	processor := service.NewProcessorService(mockGateway, service.NewEventPublisher(mockPublisher))

	ctx := context.Background()
	record := validatedStatus()

	mockGateway.EXPECT().
		Charge(ctx, record.PaymentID, record.Amount, record.Currency).
		Return(&gateway.ChargeResult{
			Success:       true,
			TransactionID: "txn_abc",
			ResponseCode:  "00",
			Message:       "Approved",
		}, nil).
		Once()

	mockPublisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(e *models.PaymentEvent) bool {
			return e.EventType == models.EventPaymentCompleted &&
				e.PaymentID == record.PaymentID &&
				e.OrderID == record.OrderID &&
				e.TransactionID == "txn_abc" &&
				e.Status == models.StatusCompleted &&
				e.EventID != "" &&
				e.EventID != e.PaymentID
		})).
		Return(nil).
		Once()

	disp := processor.HandleStatus(ctx, statusDelivery(t, record))

	assert.Equal(t, subscriber.OutcomeComplete, disp.Outcome)
}

func TestHandleStatus_Validated_Declined_PublishesFailedEvent(t *testing.T) {
	mockGateway := gatewaymocks.NewMockGatewayClient(t)
	mockPublisher := mocks.NewMockPublisher(t)
	processor := service.NewProcessorService(mockGateway, service.NewEventPublisher(mockPublisher))

	ctx := context.Background()
	record := validatedStatus()

	mockGateway.EXPECT().
		Charge(ctx, record.PaymentID, record.Amount, record.Currency).
		Return(&gateway.ChargeResult{
			Success:      false,
			ResponseCode: "51",
			Message:      "Insufficient funds",
		}, nil).
		Once()

	mockPublisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(e *models.PaymentEvent) bool {
			return e.EventType == models.EventPaymentFailed &&
				e.TransactionID == "" &&
				e.Status == models.StatusFailed &&
				e.Data["response_code"] == "51"
		})).
		Return(nil).
		Once()

	disp := processor.HandleStatus(ctx, statusDelivery(t, record))

	assert.Equal(t, subscriber.OutcomeComplete, disp.Outcome)
}

func TestHandleStatus_GatewayUnavailable_Abandons(t *testing.T) {
	mockGateway := gatewaymocks.NewMockGatewayClient(t)
	mockPublisher := mocks.NewMockPublisher(t)
	processor := service.NewProcessorService(mockGateway, service.NewEventPublisher(mockPublisher))

	ctx := context.Background()
	record := validatedStatus()

	mockGateway.EXPECT().
		Charge(ctx, record.PaymentID, record.Amount, record.Currency).
		Return(nil, fmt.Errorf("charging: %w", gateway.ErrGatewayUnavailable)).
		Once()

	disp := processor.HandleStatus(ctx, statusDelivery(t, record))

	assert.Equal(t, subscriber.OutcomeAbandon, disp.Outcome)
	mockPublisher.AssertNotCalled(t, "PublishEvent", mock.Anything, mock.Anything)
}

func TestHandleStatus_NonValidated_NeverChargesGateway(t *testing.T) {
	skipped := []models.PaymentState{
		models.StatusValidationFailed,
		models.StatusFraudReview,
		models.StatusProcessing,
		models.StatusCompleted,
		models.StatusFailed,
		models.StatusRefunded,
		models.StatusOnHold,
	}

	for _, state := range skipped {
		t.Run(string(state), func(t *testing.T) {
			mockGateway := gatewaymocks.NewMockGatewayClient(t)
			mockPublisher := mocks.NewMockPublisher(t)
			processor := service.NewProcessorService(mockGateway, service.NewEventPublisher(mockPublisher))

			record := validatedStatus()
			record.Status = state
			record.FraudScore = 90
			record.FraudFlagged = true

			disp := processor.HandleStatus(context.Background(), statusDelivery(t, record))

			assert.Equal(t, subscriber.OutcomeComplete, disp.Outcome)
			mockGateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			mockPublisher.AssertNotCalled(t, "PublishEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleStatus_UnknownStatus_DeadLetters(t *testing.T) {
	mockGateway := gatewaymocks.NewMockGatewayClient(t)
	mockPublisher := mocks.NewMockPublisher(t)
	processor := service.NewProcessorService(mockGateway, service.NewEventPublisher(mockPublisher))

	record := validatedStatus()
	record.Status = "MYSTERY"

	disp := processor.HandleStatus(context.Background(), statusDelivery(t, record))

	assert.Equal(t, subscriber.OutcomeDeadLetter, disp.Outcome)
	assert.Equal(t, models.ReasonHandlerRejected, disp.Reason)
}

func TestHandleStatus_MalformedBody_DeadLetters(t *testing.T) {
	mockGateway := gatewaymocks.NewMockGatewayClient(t)
	mockPublisher := mocks.NewMockPublisher(t)
	processor := service.NewProcessorService(mockGateway, service.NewEventPublisher(mockPublisher))

	disp := processor.HandleStatus(context.Background(), subscriber.Delivery{
		Topic:         models.PaymentStatusTopic,
		Value:         []byte("%%%"),
		DeliveryCount: 1,
	})

	assert.Equal(t, subscriber.OutcomeDeadLetter, disp.Outcome)
	assert.Equal(t, models.ReasonDeserializationFailed, disp.Reason)
}

func TestHandleStatus_EventPublishError_Abandons(t *testing.T) {
	mockGateway := gatewaymocks.NewMockGatewayClient(t)
	mockPublisher := mocks.NewMockPublisher(t)
	processor := service.NewProcessorService(mockGateway, service.NewEventPublisher(mockPublisher))

	ctx := context.Background()
	record := validatedStatus()

	mockGateway.EXPECT().
		Charge(ctx, record.PaymentID, record.Amount, record.Currency).
		Return(&gateway.ChargeResult{Success: true, TransactionID: "txn_x", ResponseCode: "00"}, nil).
		Once()

	mockPublisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*models.PaymentEvent")).
		Return(fmt.Errorf("kafka publish error")).
		Once()

	disp := processor.HandleStatus(ctx, statusDelivery(t, record))

	assert.Equal(t, subscriber.OutcomeAbandon, disp.Outcome)
}
