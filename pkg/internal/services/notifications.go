package services

import (
	"context"
	"fmt"

	"github.com/conclave-dev/conclave/pkg/internal/models"
)

func (s *Service) GetNotifications(ctx context.Context, viewer uint, unreadOnly bool) ([]models.Notification, error) {
	notifications, err := s.facts.FetchNotifications(ctx, viewer, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("unable to load notifications: %v", err)
	}
	return notifications, nil
}

func (s *Service) ReadNotifications(ctx context.Context, ids []uint, viewer uint) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no notification ids given", ErrValidation)
	}
	return s.facts.MarkNotificationsRead(ctx, ids, viewer)
}
