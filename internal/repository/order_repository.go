package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"school-payments-api/internal/models"
)

var ErrMissingSchoolID = errors.New("school_id is required")

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(order *models.Order) error {
	if order.SchoolID == "" {
		return ErrMissingSchoolID
	}
	return r.db.Create(order).Error
}

func (r *OrderRepository) FindByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// UpdateSchool mutates only the school_id column. Writing the same value
// again is a no-op, so redelivered webhooks are safe.
func (r *OrderRepository) UpdateSchool(id, schoolID string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).
		Update("school_id", schoolID).Error
}

// EnsureExists inserts the order unless a row with the same id already
// exists. Two concurrent webhooks for the same unseen order both land
// here; the insert is a single conditional write, so exactly one row
// wins and the loser proceeds with the stored copy.
func (r *OrderRepository) EnsureExists(order *models.Order) (*models.Order, error) {
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(order).Error; err != nil {
		return nil, err
	}
	return r.FindByID(order.ID)
}
