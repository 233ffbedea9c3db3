package views

import (
	"testing"
	"time"

	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sentMessage(id, sender, recipient uint, sentAt time.Time) models.Message {
	return models.Message{
		BaseModel:   models.BaseModel{ID: id},
		SenderID:    sender,
		RecipientID: recipient,
		SentAt:      sentAt,
	}
}

func TestGroupConversationsByCounterpart(t *testing.T) {
	const viewer = uint(10)
	now := time.Now()

	// Most-recent-first history: latest exchange is with counterpart 20.
	messages := []models.Message{
		sentMessage(3, 20, viewer, now),
		sentMessage(2, viewer, 30, now.Add(-time.Minute)),
		sentMessage(1, viewer, 20, now.Add(-2*time.Minute)),
	}

	conversations := GroupConversations(viewer, messages)
	require.Len(t, conversations, 2)

	assert.EqualValues(t, 20, conversations[0].CounterpartID)
	require.Len(t, conversations[0].Messages, 2)
	assert.EqualValues(t, 3, conversations[0].Messages[0].ID)
	assert.EqualValues(t, 1, conversations[0].Messages[1].ID)

	assert.EqualValues(t, 30, conversations[1].CounterpartID)
	require.Len(t, conversations[1].Messages, 1)
	assert.EqualValues(t, 2, conversations[1].Messages[0].ID)
}

func TestGroupConversationsMergesBothDirections(t *testing.T) {
	const viewer = uint(10)
	now := time.Now()

	messages := []models.Message{
		sentMessage(2, viewer, 20, now),
		sentMessage(1, 20, viewer, now.Add(-time.Minute)),
	}

	conversations := GroupConversations(viewer, messages)
	require.Len(t, conversations, 1)
	assert.EqualValues(t, 20, conversations[0].CounterpartID)
	assert.Len(t, conversations[0].Messages, 2)
}

func TestGroupConversationsEmpty(t *testing.T) {
	assert.Empty(t, GroupConversations(10, nil))
}
