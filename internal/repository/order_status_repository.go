package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"school-payments-api/internal/models"
)

type OrderStatusRepository struct {
	db *gorm.DB
}

func NewOrderStatusRepository(db *gorm.DB) *OrderStatusRepository {
	return &OrderStatusRepository{db: db}
}

// Upsert replaces the status document for status.CollectID, inserting it
// if absent. A single INSERT ... ON CONFLICT DO UPDATE keeps concurrent
// deliveries for the same collect_id convergent without a read-modify-write.
func (r *OrderStatusRepository) Upsert(status *models.OrderStatus) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "collect_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"order_amount", "transaction_amount", "payment_mode",
			"payment_details", "bank_reference", "payment_message",
			"status", "error_message", "payment_time", "updated_at",
		}),
	}).Create(status).Error
}

func (r *OrderStatusRepository) FindByCollectID(collectID string) (*models.OrderStatus, error) {
	var status models.OrderStatus
	if err := r.db.Where("collect_id = ?", collectID).First(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &status, nil
}
