package models

type NotificationObjectKind = string

const (
	NotificationObjectMessage = NotificationObjectKind("message")
	NotificationObjectComment = NotificationObjectKind("comment")
)

// Notification addresses exactly one recipient, computed once when the
// originating object is written and never recomputed on read.
type Notification struct {
	BaseModel

	RecipientID uint    `json:"recipient_id" gorm:"index"`
	Recipient   Account `json:"recipient"`

	ObjectKind NotificationObjectKind `json:"object_kind"`
	ObjectID   uint                   `json:"object_id"`

	IsRead bool `json:"is_read" gorm:"default:false"`
}
