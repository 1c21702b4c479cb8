package posgrest

import (
	"context"

	"github.com/devmarrez/payment-relay/internal/models"
	"gorm.io/gorm"
)

// WebhookStore persists the webhook endpoint registry and the log of
// deliveries that exhausted their retries or failed terminally. Payment
// records themselves are never stored here; the pipeline state lives on
// the topics.
type WebhookStore struct {
	db *gorm.DB
}

// NewWebhookStore creates a store backed by the provided GORM connection.
func NewWebhookStore(db *gorm.DB) *WebhookStore {
	return &WebhookStore{
		db,
	}
}

// Migrate creates or updates the endpoint registry and delivery log tables.
func (s *WebhookStore) Migrate() error {
	return s.db.AutoMigrate(&models.WebhookEndpoint{}, &models.WebhookDeliveryLog{})
}

// ActiveEndpoints returns the registered endpoints currently enabled for
// delivery. Disabled endpoints stay in the table for audit purposes.
func (s *WebhookStore) ActiveEndpoints(ctx context.Context) ([]models.WebhookEndpoint, error) {
	var endpoints []models.WebhookEndpoint
	if err := s.db.WithContext(ctx).Where("active = ?", true).Find(&endpoints).Error; err != nil {
		return nil, err
	}
	return endpoints, nil
}

// SaveEndpoint upserts a registry entry by name.
func (s *WebhookStore) SaveEndpoint(ctx context.Context, endpoint *models.WebhookEndpoint) error {
	return s.db.WithContext(ctx).Save(endpoint).Error
}

// Create appends a finished delivery that needs operator attention.
func (s *WebhookStore) Create(ctx context.Context, entry *models.WebhookDeliveryLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

// FailedDeliveries returns the logged deliveries for a payment, newest
// first, for manual redelivery.
func (s *WebhookStore) FailedDeliveries(ctx context.Context, paymentID string) ([]models.WebhookDeliveryLog, error) {
	var entries []models.WebhookDeliveryLog
	err := s.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
