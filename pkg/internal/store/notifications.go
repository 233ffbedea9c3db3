package store

import (
	"context"

	"github.com/conclave-dev/conclave/pkg/internal/models"
)

func (s *Gorm) FetchNotifications(ctx context.Context, viewer uint, unreadOnly bool) ([]models.Notification, error) {
	tx := s.db.WithContext(ctx).Where("recipient_id = ?", viewer)
	if unreadOnly {
		tx = tx.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := tx.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *Gorm) InsertNotification(ctx context.Context, notification *models.Notification) error {
	return s.db.WithContext(ctx).Create(notification).Error
}

func (s *Gorm) MarkNotificationsRead(ctx context.Context, ids []uint, viewer uint) error {
	return s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id IN ? AND recipient_id = ? AND is_read = ?", ids, viewer, false).
		Update("is_read", true).Error
}

// PurgeReadNotifications drops read rows older than the horizon; the cron
// cleanup calls this so the table does not grow without bound.
func (s *Gorm) PurgeReadNotifications(ctx context.Context, horizonDays int) (int64, error) {
	tx := s.db.WithContext(ctx).
		Where("is_read = ? AND created_at < NOW() - make_interval(days => ?)", true, horizonDays).
		Delete(&models.Notification{})
	return tx.RowsAffected, tx.Error
}
