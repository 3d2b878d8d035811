package kafka

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Background-Remover/internal/entity"
	"github.com/andreyxaxa/Background-Remover/pkg/kafka/producer"
	"github.com/segmentio/kafka-go"
)

const headerEventID = "event_id"

type EventProducer struct {
	*producer.Producer
}

func NewEventProducer(producer *producer.Producer) *EventProducer {
	return &EventProducer{producer}
}

// Publish writes one message and returns once the brokers acknowledged it.
func (ep *EventProducer) Publish(ctx context.Context, topic string, msg entity.Message) error {
	err := ep.Writer.WriteMessages(ctx, toKafkaMessage(topic, msg.Key, msg.Payload, msg.Headers))
	if err != nil {
		return fmt.Errorf("EventProducer - Publish - ep.Writer.WriteMessages: %w", err)
	}

	return nil
}

// SendEvents relays outbox rows; each row carries its own topic.
func (ep *EventProducer) SendEvents(ctx context.Context, events []*entity.OutboxEvent) error {
	msgsToSend := make([]kafka.Message, 0, len(events))

	for _, event := range events {
		msg := toKafkaMessage(event.Topic, event.AggregateID.String(), event.Payload, event.Headers)
		msg.Headers = append(msg.Headers, kafka.Header{Key: headerEventID, Value: []byte(event.ID.String())})

		msgsToSend = append(msgsToSend, msg)
	}

	if len(msgsToSend) == 0 {
		return nil
	}

	err := ep.Writer.WriteMessages(ctx, msgsToSend...)
	if err != nil {
		return fmt.Errorf("EventProducer - SendEvents - ep.Writer.WriteMessages: %w", err)
	}

	return nil
}

func (ep *EventProducer) Close() error {
	err := ep.Producer.Close()
	if err != nil {
		return fmt.Errorf("EventProducer - Close: %w", err)
	}

	return nil
}

func toKafkaMessage(topic, key string, payload []byte, headers map[string]string) kafka.Message {
	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	}

	for k, v := range headers {
		msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	return msg
}

// Header returns the first value of header key, or "".
func Header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}

	return ""
}
