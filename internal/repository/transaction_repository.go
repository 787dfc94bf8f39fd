package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"school-payments-api/internal/models"
)

// sortColumns whitelists the projection fields a caller may sort on and
// maps them to their joined SQL columns. Anything else falls back to
// insertion order rather than erroring.
var sortColumns = map[string]string{
	"collect_id":         "order_statuses.collect_id",
	"school_id":          "orders.school_id",
	"gateway":            "orders.gateway_name",
	"order_amount":       "order_statuses.order_amount",
	"transaction_amount": "order_statuses.transaction_amount",
	"status":             "order_statuses.status",
	"custom_order_id":    "orders.id",
	"payment_time":       "order_statuses.payment_time",
	"created_at":         "order_statuses.created_at",
}

type transactionRow struct {
	CollectID         string
	SchoolID          string
	Gateway           string
	OrderAmount       float64
	TransactionAmount float64
	Status            string
	CustomOrderID     string
	PaymentTime       time.Time
	CreatedAt         time.Time
	StudentName       string
	StudentID         string
	StudentEmail      string
}

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) joined() *gorm.DB {
	return r.db.Table("order_statuses").
		Select(`order_statuses.collect_id,
			orders.school_id,
			orders.gateway_name AS gateway,
			order_statuses.order_amount,
			order_statuses.transaction_amount,
			order_statuses.status,
			orders.id AS custom_order_id,
			order_statuses.payment_time,
			order_statuses.created_at,
			orders.student_name,
			orders.student_id,
			orders.student_email`).
		Joins("JOIN orders ON orders.id = order_statuses.collect_id")
}

// List returns one sorted page of the joined set plus the total count of
// joined rows. Statuses whose order is missing are excluded by the inner
// join.
func (r *TransactionRepository) List(sortField, sortOrder string, offset, limit int) ([]models.Transaction, int64, error) {
	var total int64
	if err := r.db.Table("order_statuses").
		Joins("JOIN orders ON orders.id = order_statuses.collect_id").
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.joined()
	if column, ok := sortColumns[sortField]; ok {
		direction := "DESC"
		if sortOrder == "asc" {
			direction = "ASC"
		}
		query = query.Order(fmt.Sprintf("%s %s", column, direction))
	} else {
		query = query.Order("order_statuses.collect_id ASC")
	}

	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []transactionRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return projectRows(rows, false), total, nil
}

// ListBySchool returns the full joined set for one school, newest first,
// including student info. No pagination: this mirrors the external
// contract of the scoped endpoint.
func (r *TransactionRepository) ListBySchool(schoolID string) ([]models.Transaction, error) {
	var rows []transactionRow
	err := r.joined().
		Where("orders.school_id = ?", schoolID).
		Order("order_statuses.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return projectRows(rows, true), nil
}

func projectRows(rows []transactionRow, withStudent bool) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		transaction := models.Transaction{
			CollectID:         row.CollectID,
			SchoolID:          row.SchoolID,
			Gateway:           row.Gateway,
			OrderAmount:       row.OrderAmount,
			TransactionAmount: row.TransactionAmount,
			Status:            row.Status,
			CustomOrderID:     row.CustomOrderID,
			PaymentTime:       row.PaymentTime,
			CreatedAt:         row.CreatedAt,
		}
		if withStudent {
			transaction.StudentInfo = &models.StudentInfo{
				Name:  row.StudentName,
				ID:    row.StudentID,
				Email: row.StudentEmail,
			}
		}
		transactions = append(transactions, transaction)
	}
	return transactions
}
