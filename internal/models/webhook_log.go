package models

import "time"

// WebhookLog is the append-only raw capture of every inbound gateway
// notification, written before validation so malformed payloads are
// still available for replay. Never read by the reconciler.
type WebhookLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}
