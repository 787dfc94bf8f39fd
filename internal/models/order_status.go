package models

import "time"

// OrderStatus holds the latest reconciled payment state for one order.
// There is at most one row per collect_id: every webhook for the same
// order replaces the previous document wholesale.
type OrderStatus struct {
	CollectID         string    `gorm:"type:varchar(64);primary_key" json:"collect_id"`
	OrderAmount       float64   `json:"order_amount"`
	TransactionAmount float64   `json:"transaction_amount"`
	PaymentMode       string    `json:"payment_mode"`
	PaymentDetails    string    `json:"payment_details"`
	BankReference     string    `json:"bank_reference"`
	PaymentMessage    string    `json:"payment_message"`
	Status            string    `gorm:"index;default:'pending'" json:"status"`
	ErrorMessage      string    `gorm:"default:'NA'" json:"error_message"`
	PaymentTime       time.Time `gorm:"index" json:"payment_time"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
