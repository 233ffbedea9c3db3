package gateway

import (
	"testing"

	"github.com/conclave-dev/conclave/pkg/internal/bus"
	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/conclave-dev/conclave/pkg/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticVerifier resolves tokens from a fixed table; anything unknown is
// unauthenticated.
type staticVerifier struct {
	accounts map[string]uint
}

func (v staticVerifier) Verify(token string) security.Identity {
	id, ok := v.accounts[token]
	return security.Identity{Authenticated: ok, AccountID: id}
}

func newTestGateway() (*Gateway, *bus.Bus) {
	events := bus.New(8)
	verifier := staticVerifier{accounts: map[string]uint{
		"alice": 1,
		"bob":   2,
	}}
	return New(events, verifier), events
}

func TestMessageDeliveredToRecipientOnly(t *testing.T) {
	gw, events := newTestGateway()

	alice := gw.Connect("alice")
	defer alice.Close()
	bob := gw.Connect("bob")
	defer bob.Close()

	message := models.Message{SenderID: 1, RecipientID: 2, Body: "hello"}
	events.Publish(bus.TopicNewMessage, message)

	evt := <-bob.Events()
	envelope, ok := bob.Admit(evt)
	require.True(t, ok)
	assert.Equal(t, "Message", envelope.Type)
	assert.Equal(t, message, envelope.Payload)

	evt = <-alice.Events()
	_, ok = alice.Admit(evt)
	assert.False(t, ok)
}

func TestNotificationDeliveredToRecipientOnly(t *testing.T) {
	gw, events := newTestGateway()

	alice := gw.Connect("alice")
	defer alice.Close()
	bob := gw.Connect("bob")
	defer bob.Close()

	notification := models.Notification{RecipientID: 1, ObjectKind: "comment", ObjectID: 7}
	events.Publish(bus.TopicNewNotification, notification)

	evt := <-alice.Events()
	envelope, ok := alice.Admit(evt)
	require.True(t, ok)
	assert.Equal(t, "Notification", envelope.Type)
	assert.Equal(t, notification, envelope.Payload)

	evt = <-bob.Events()
	_, ok = bob.Admit(evt)
	assert.False(t, ok)
}

func TestUnauthenticatedConnectionAdmitsNothing(t *testing.T) {
	gw, events := newTestGateway()

	guest := gw.Connect("forged-token")
	defer guest.Close()
	assert.False(t, guest.Authenticated())

	events.Publish(bus.TopicNewMessage, models.Message{RecipientID: 0})
	evt := <-guest.Events()
	_, ok := guest.Admit(evt)
	assert.False(t, ok)
}

func TestAdmitRejectsMalformedPayload(t *testing.T) {
	gw, _ := newTestGateway()

	alice := gw.Connect("alice")
	defer alice.Close()

	_, ok := alice.Admit(bus.Event{Topic: bus.TopicNewMessage, Payload: "not a message"})
	assert.False(t, ok)

	_, ok = alice.Admit(bus.Event{Topic: bus.Topic("UNKNOWN"), Payload: models.Message{RecipientID: 1}})
	assert.False(t, ok)
}

func TestDeliveryKeepsPublishOrder(t *testing.T) {
	gw, events := newTestGateway()

	alice := gw.Connect("alice")
	defer alice.Close()

	first := models.Notification{RecipientID: 1, ObjectKind: "message", ObjectID: 1}
	second := models.Notification{RecipientID: 1, ObjectKind: "comment", ObjectID: 2}
	events.Publish(bus.TopicNewNotification, first)
	events.Publish(bus.TopicNewNotification, second)

	envelope, ok := alice.Admit(<-alice.Events())
	require.True(t, ok)
	assert.Equal(t, first, envelope.Payload)

	envelope, ok = alice.Admit(<-alice.Events())
	require.True(t, ok)
	assert.Equal(t, second, envelope.Payload)
}
