package bus

import (
	"sync"

	"github.com/rs/zerolog/log"
)

type Topic string

const (
	TopicNewMessage      = Topic("NEW_MESSAGE")
	TopicNewNotification = Topic("NEW_NOTIFICATION")
)

type Event struct {
	Topic   Topic `json:"topic"`
	Payload any   `json:"payload"`
}

// Subscriber receives the events of its topics on a bounded channel. When
// the channel is full the next event for it is dropped; the durable rows
// behind the events remain queryable, the live event is only a nudge.
type Subscriber struct {
	events chan Event
	topics map[Topic]struct{}
}

func (s *Subscriber) Events() <-chan Event {
	return s.events
}

// Bus is the process-wide broadcast primitive for domain events. It is
// constructed explicitly and handed to whoever publishes or subscribes,
// there is no package-level instance. The registry mutex covers both
// registration and the publish iteration, so a connect or disconnect can
// never race a fan-out.
type Bus struct {
	mu        sync.Mutex
	queueSize int
	subs      map[*Subscriber]struct{}
}

func New(queueSize int) *Bus {
	if queueSize <= 0 {
		queueSize = 16
	}
	return &Bus{
		queueSize: queueSize,
		subs:      make(map[*Subscriber]struct{}),
	}
}

// Subscribe registers a listener for the given topics and returns it along
// with its cancel function. Cancel deregisters immediately; no further
// events are delivered afterwards.
func (b *Bus) Subscribe(topics ...Topic) (*Subscriber, func()) {
	sub := &Subscriber{
		events: make(chan Event, b.queueSize),
		topics: make(map[Topic]struct{}, len(topics)),
	}
	for _, topic := range topics {
		sub.topics[topic] = struct{}{}
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[sub]; !ok {
			return
		}
		delete(b.subs, sub)
		close(sub.events)
	}

	return sub, cancel
}

// Publish fans the payload out to every current subscriber of the topic.
// It never blocks: a subscriber whose queue is full simply misses this
// event. A payload nobody listens for is dropped, not queued.
func (b *Bus) Publish(topic Topic, payload any) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Str("topic", string(topic)).
				Msg("Recovered from a panic during event fan-out.")
		}
	}()

	evt := Event{Topic: topic, Payload: payload}

	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs {
		if _, ok := sub.topics[topic]; !ok {
			continue
		}
		select {
		case sub.events <- evt:
		default:
			// skip if the queue is full
		}
	}
}
