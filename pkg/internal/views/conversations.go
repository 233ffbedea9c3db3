package views

import (
	"github.com/conclave-dev/conclave/pkg/internal/models"
)

type Conversation struct {
	CounterpartID uint             `json:"counterpart_id"`
	Messages      []models.Message `json:"messages"`
}

// GroupConversations partitions the viewer's bidirectional message history
// into per-counterpart buckets. The history arrives most-recent-first, so
// first-seen bucket order doubles as most-recent-activity order and each
// bucket stays internally most-recent-first. The index map keeps the whole
// pass O(n) regardless of how many conversations the viewer has.
func GroupConversations(viewerID uint, messages []models.Message) []Conversation {
	var conversations []Conversation
	index := make(map[uint]int)

	for _, message := range messages {
		counterpart := message.SenderID
		if counterpart == viewerID {
			counterpart = message.RecipientID
		}

		at, ok := index[counterpart]
		if !ok {
			at = len(conversations)
			index[counterpart] = at
			conversations = append(conversations, Conversation{CounterpartID: counterpart})
		}
		conversations[at].Messages = append(conversations[at].Messages, message)
	}

	return conversations
}
