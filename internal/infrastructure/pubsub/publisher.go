package pubsub

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cloud.google.com/go/pubsub"
	"github.com/andreyxaxa/Background-Remover/internal/entity"
)

const attributeEventID = "event_id"

// EventPublisher sends processing events to Pub/Sub. Message headers become
// attributes, so schema-version reaches the push envelope unchanged.
type EventPublisher struct {
	client *pubsub.Client

	lock   sync.Mutex
	topics map[string]*pubsub.Topic
}

func NewEventPublisher(client *pubsub.Client) *EventPublisher {
	return &EventPublisher{
		client: client,
		topics: make(map[string]*pubsub.Topic),
	}
}

// Publish returns once the server acknowledged the message.
func (p *EventPublisher) Publish(ctx context.Context, topic string, msg entity.Message) error {
	res := p.topic(topic).Publish(ctx, toPubSubMessage(msg.Payload, msg.Headers))

	if _, err := res.Get(ctx); err != nil {
		return fmt.Errorf("EventPublisher - Publish - res.Get: %w", err)
	}

	return nil
}

// SendEvents relays outbox rows. The batch fails if any row failed; rows that
// did go out are sent again on retry.
func (p *EventPublisher) SendEvents(ctx context.Context, events []*entity.OutboxEvent) error {
	results := make([]*pubsub.PublishResult, 0, len(events))

	for _, event := range events {
		msg := toPubSubMessage(event.Payload, event.Headers)
		msg.Attributes[attributeEventID] = event.ID.String()

		results = append(results, p.topic(event.Topic).Publish(ctx, msg))
	}

	var errList []error
	for _, res := range results {
		if _, err := res.Get(ctx); err != nil {
			errList = append(errList, err)
		}
	}

	if err := errors.Join(errList...); err != nil {
		return fmt.Errorf("EventPublisher - SendEvents - res.Get: %w", err)
	}

	return nil
}

// Close flushes pending messages and closes the client.
func (p *EventPublisher) Close() error {
	p.lock.Lock()
	for _, t := range p.topics {
		t.Stop()
	}
	p.topics = make(map[string]*pubsub.Topic)
	p.lock.Unlock()

	if err := p.client.Close(); err != nil {
		return fmt.Errorf("EventPublisher - Close - p.client.Close: %w", err)
	}

	return nil
}

func (p *EventPublisher) topic(name string) *pubsub.Topic {
	p.lock.Lock()
	defer p.lock.Unlock()

	t, ok := p.topics[name]
	if !ok {
		t = p.client.Topic(name)
		p.topics[name] = t
	}

	return t
}

func toPubSubMessage(payload []byte, headers map[string]string) *pubsub.Message {
	attrs := make(map[string]string, len(headers)+1)
	for k, v := range headers {
		attrs[k] = v
	}

	return &pubsub.Message{Data: payload, Attributes: attrs}
}
