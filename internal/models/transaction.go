package models

import "time"

// Transaction is the denormalized projection of an OrderStatus joined to
// its owning Order. StudentInfo is only populated in the school-scoped
// view; the cross-school listing never carries student PII.
type Transaction struct {
	CollectID         string       `json:"collect_id"`
	SchoolID          string       `json:"school_id"`
	Gateway           string       `json:"gateway"`
	OrderAmount       float64      `json:"order_amount"`
	TransactionAmount float64      `json:"transaction_amount"`
	Status            string       `json:"status"`
	CustomOrderID     string       `json:"custom_order_id"`
	PaymentTime       time.Time    `json:"payment_time"`
	CreatedAt         time.Time    `json:"created_at"`
	StudentInfo       *StudentInfo `json:"student_info,omitempty"`
}
