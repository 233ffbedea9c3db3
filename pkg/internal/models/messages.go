package models

import "time"

// Message is immutable once created except IsRead, which only ever
// transitions from false to true.
type Message struct {
	BaseModel

	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at" gorm:"autoCreateTime;index"`
	IsRead bool      `json:"is_read" gorm:"default:false"`

	SenderID uint    `json:"sender_id" gorm:"index"`
	Sender   Account `json:"sender"`

	RecipientID uint    `json:"recipient_id" gorm:"index"`
	Recipient   Account `json:"recipient"`
}
