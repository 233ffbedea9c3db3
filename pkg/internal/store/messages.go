package store

import (
	"context"

	"github.com/conclave-dev/conclave/pkg/internal/models"
)

// FetchMessages returns the viewer's full bidirectional history,
// most-recent-first, ready for the conversation grouper.
func (s *Gorm) FetchMessages(ctx context.Context, viewer uint) ([]models.Message, error) {
	var messages []models.Message
	if err := s.db.WithContext(ctx).
		Preload("Sender").Preload("Recipient").
		Where("sender_id = ? OR recipient_id = ?", viewer, viewer).
		Order("sent_at DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *Gorm) InsertMessage(ctx context.Context, message *models.Message) error {
	return s.db.WithContext(ctx).Create(message).Error
}

// MarkMessagesRead flips the read flag on rows addressed to the viewer.
// The flag only ever goes false to true; rows of other recipients are
// untouched no matter what ids are asked for.
func (s *Gorm) MarkMessagesRead(ctx context.Context, ids []uint, viewer uint) error {
	return s.db.WithContext(ctx).Model(&models.Message{}).
		Where("id IN ? AND recipient_id = ? AND is_read = ?", ids, viewer, false).
		Update("is_read", true).Error
}
