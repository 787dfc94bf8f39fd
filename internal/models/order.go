package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentInfo struct {
	Name  string `gorm:"column:student_name" json:"name"`
	ID    string `gorm:"column:student_id" json:"id"`
	Email string `gorm:"column:student_email" json:"email"`
}

type Order struct {
	ID          string      `gorm:"type:varchar(64);primary_key" json:"order_id"`
	SchoolID    string      `gorm:"not null;index" json:"school_id"`
	TrusteeID   string      `json:"trustee_id"`
	StudentInfo StudentInfo `gorm:"embedded" json:"student_info"`
	GatewayName string      `json:"gateway_name"`
	OrderAmount float64     `json:"order_amount"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (order *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	return
}
