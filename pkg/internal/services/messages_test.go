package services

import (
	"context"
	"testing"

	"github.com/conclave-dev/conclave/pkg/internal/bus"
	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageWritesThenPublishes(t *testing.T) {
	facts := newFakeFacts()
	facts.accounts["bob"] = models.Account{BaseModel: models.BaseModel{ID: 2}, Username: "bob"}

	events := bus.New(4)
	listener, cancel := events.Subscribe(bus.TopicNewMessage, bus.TopicNewNotification)
	defer cancel()

	srv := NewService(facts, events)
	message, err := srv.SendMessage(context.Background(), 1, "bob", "hello")
	require.NoError(t, err)

	assert.EqualValues(t, 1, message.SenderID)
	assert.EqualValues(t, 2, message.RecipientID)
	require.Len(t, facts.insertedMessages, 1)

	require.Len(t, facts.insertedNotifications, 1)
	notification := facts.insertedNotifications[0]
	assert.EqualValues(t, 2, notification.RecipientID)
	assert.Equal(t, models.NotificationObjectMessage, notification.ObjectKind)
	assert.Equal(t, message.ID, notification.ObjectID)

	// Message event first, its notification second.
	evt := <-listener.Events()
	assert.Equal(t, bus.TopicNewMessage, evt.Topic)
	assert.Equal(t, message, evt.Payload)

	evt = <-listener.Events()
	assert.Equal(t, bus.TopicNewNotification, evt.Topic)
	assert.Equal(t, notification, evt.Payload)
}

func TestSendMessageUnknownRecipient(t *testing.T) {
	srv := NewService(newFakeFacts(), bus.New(4))
	_, err := srv.SendMessage(context.Background(), 1, "nobody", "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSendMessageEmptyBody(t *testing.T) {
	srv := NewService(newFakeFacts(), bus.New(4))
	_, err := srv.SendMessage(context.Background(), 1, "bob", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReadMessagesRequiresIDs(t *testing.T) {
	srv := NewService(newFakeFacts(), bus.New(4))
	assert.ErrorIs(t, srv.ReadMessages(context.Background(), nil, 1), ErrValidation)
}
