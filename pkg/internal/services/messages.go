package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/conclave-dev/conclave/pkg/internal/bus"
	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/conclave-dev/conclave/pkg/internal/store"
	"github.com/conclave-dev/conclave/pkg/internal/views"
)

func (s *Service) GetConversations(ctx context.Context, viewer uint) ([]views.Conversation, error) {
	messages, err := s.facts.FetchMessages(ctx, viewer)
	if err != nil {
		return nil, fmt.Errorf("unable to load messages: %v", err)
	}
	return views.GroupConversations(viewer, messages), nil
}

// SendMessage writes the message and its notification row, then publishes
// both live events. Receipt is best-effort; the rows stay queryable as the
// catch-up path when a live event is dropped.
func (s *Service) SendMessage(ctx context.Context, sender uint, recipientUsername, body string) (models.Message, error) {
	if len(body) == 0 {
		return models.Message{}, fmt.Errorf("%w: message body is required", ErrValidation)
	}

	recipient, err := s.facts.FetchAccountByUsername(ctx, recipientUsername)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Message{}, fmt.Errorf("%w: account %q", ErrNotFound, recipientUsername)
		}
		return models.Message{}, err
	}

	message := models.Message{
		Body:        body,
		SenderID:    sender,
		RecipientID: recipient.ID,
	}
	if err := s.facts.InsertMessage(ctx, &message); err != nil {
		return message, fmt.Errorf("unable to send message: %v", err)
	}

	notification := models.Notification{
		RecipientID: message.RecipientID,
		ObjectKind:  models.NotificationObjectMessage,
		ObjectID:    message.ID,
	}
	if err := s.facts.InsertNotification(ctx, &notification); err != nil {
		return message, fmt.Errorf("unable to create notification: %v", err)
	}

	s.events.Publish(bus.TopicNewMessage, message)
	s.events.Publish(bus.TopicNewNotification, notification)

	return message, nil
}

func (s *Service) ReadMessages(ctx context.Context, ids []uint, viewer uint) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no message ids given", ErrValidation)
	}
	return s.facts.MarkMessagesRead(ctx, ids, viewer)
}
