package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/devmarrez/payment-relay/internal/models/dto"
	"github.com/devmarrez/payment-relay/internal/service"
	"github.com/devmarrez/payment-relay/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validDTO() *dto.PaymentRequest {
	return &dto.PaymentRequest{
		OrderID:    "order-456",
		CustomerID: "customer-789",
		Amount:     99.99,
		Currency:   "usd",
		Method: dto.PaymentMethod{
			CardNumber:  "4111 1111 1111 1111",
			ExpiryMonth: 12,
			ExpiryYear:  2030,
			CVV:         "123",
			HolderName:  "Jane Doe",
		},
	}
}

func TestAccept_ValidRequest_EnqueuesAndReturnsReceipt(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	intake := service.NewIntakeService(mockPublisher)

	ctx := context.Background()

	mockPublisher.EXPECT().
		PublishRequest(ctx, mock.MatchedBy(func(req *models.PaymentRequest) bool {
			return req.PaymentID != "" &&
				req.OrderID == "order-456" &&
				req.Currency == models.CurrencyUSD &&
				req.Method.CardNumber == "4111111111111111" &&
				!req.RequestedAt.IsZero()
		})).
		Return(nil).
		Once()

	resp, fieldErrs, err := intake.Accept(ctx, validDTO())

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.NotNil(t, resp)
	assert.NotEmpty(t, resp.PaymentID)
	assert.Equal(t, "received", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestAccept_MissingFields_RejectedWithErrorList(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	intake := service.NewIntakeService(mockPublisher)

	req := &dto.PaymentRequest{
		Amount:   -5,
		Currency: "XX",
		Method: dto.PaymentMethod{
			ExpiryMonth: 13,
			ExpiryYear:  1999,
			CVV:         "1",
		},
	}

	resp, fieldErrs, err := intake.Accept(context.Background(), req)

	assert.NoError(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, fieldErrs, "order_id is required")
	assert.Contains(t, fieldErrs, "customer_id is required")
	assert.Contains(t, fieldErrs, "amount must be greater than zero")
	assert.Contains(t, fieldErrs, "payment_method.expiry_month must be between 1 and 12")
	assert.Contains(t, fieldErrs, "payment_method.cvv must be at least 3 digits")
	mockPublisher.AssertNotCalled(t, "PublishRequest", mock.Anything, mock.Anything)
}

func TestAccept_PublisherError_Surfaced(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	intake := service.NewIntakeService(mockPublisher)

	ctx := context.Background()
	expectedError := errors.New("kafka publish error")

	mockPublisher.EXPECT().
		PublishRequest(ctx, mock.AnythingOfType("*models.PaymentRequest")).
		Return(expectedError).
		Once()

	resp, fieldErrs, err := intake.Accept(ctx, validDTO())

	assert.Nil(t, resp)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, expectedError, err)
}
