package repository

import (
	"gorm.io/gorm"

	"school-payments-api/internal/models"
)

type WebhookLogRepository struct {
	db *gorm.DB
}

func NewWebhookLogRepository(db *gorm.DB) *WebhookLogRepository {
	return &WebhookLogRepository{db: db}
}

func (r *WebhookLogRepository) Append(payload []byte) error {
	return r.db.Create(&models.WebhookLog{Payload: string(payload)}).Error
}
