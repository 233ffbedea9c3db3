package gateway

import (
	"github.com/conclave-dev/conclave/pkg/internal/bus"
	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/conclave-dev/conclave/pkg/internal/security"
)

// Envelope is the wire shape of a delivered event.
type Envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Gateway maps live viewer connections onto the event bus. Each connection
// owns one bounded delivery queue; events are authorized per topic against
// the connection's identity before they are written out, so a shared
// publish reaches exactly the viewers it addresses.
type Gateway struct {
	events   *bus.Bus
	verifier security.Verifier
}

func New(events *bus.Bus, verifier security.Verifier) *Gateway {
	return &Gateway{events: events, verifier: verifier}
}

type Connection struct {
	identity security.Identity
	sub      *bus.Subscriber
	cancel   func()
}

// Connect verifies the presented credential and registers a delivery
// channel. A connection that fails verification is still admitted, it is
// just marked unauthenticated and thereby fails every predicate, so it
// stays open and receives nothing.
func (g *Gateway) Connect(token string) *Connection {
	sub, cancel := g.events.Subscribe(bus.TopicNewMessage, bus.TopicNewNotification)
	return &Connection{
		identity: g.verifier.Verify(token),
		sub:      sub,
		cancel:   cancel,
	}
}

func (c *Connection) Authenticated() bool {
	return c.identity.Authenticated
}

// Events exposes the connection's delivery queue. Within it, order matches
// publish order.
func (c *Connection) Events() <-chan bus.Event {
	return c.sub.Events()
}

// Close deregisters the connection immediately; no further predicate
// evaluation or delivery happens for it.
func (c *Connection) Close() {
	c.cancel()
}

// Admit runs the per-topic authorization predicate and shapes the event
// for delivery. Message events go to their recipient only, notification
// events to the recipient computed at write time.
func (c *Connection) Admit(evt bus.Event) (Envelope, bool) {
	if !c.identity.Authenticated {
		return Envelope{}, false
	}

	switch evt.Topic {
	case bus.TopicNewMessage:
		message, ok := evt.Payload.(models.Message)
		if !ok || message.RecipientID != c.identity.AccountID {
			return Envelope{}, false
		}
		return Envelope{Type: "Message", Payload: message}, true
	case bus.TopicNewNotification:
		notification, ok := evt.Payload.(models.Notification)
		if !ok || notification.RecipientID != c.identity.AccountID {
			return Envelope{}, false
		}
		return Envelope{Type: "Notification", Payload: notification}, true
	}

	return Envelope{}, false
}
