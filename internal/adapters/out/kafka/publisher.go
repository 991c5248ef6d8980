// Package kafka publishes order events from the outbox to a Kafka topic.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

const writeTimeout = 10 * time.Second

var _ ports.OrderEventPublisher = (*OrderEventPublisher)(nil)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// OrderEventPublisher writes every event as one message keyed by the order
// number, so all events of an order land on the same partition in order.
type OrderEventPublisher struct {
	writer messageWriter
}

func NewOrderEventPublisher(brokers []string, topic string) (*OrderEventPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka: at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("kafka: topic is required")
	}

	return &OrderEventPublisher{
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkago.Hash{},
			RequiredAcks:           kafkago.RequireAll,
			AllowAutoTopicCreation: true,
			WriteTimeout:           writeTimeout,
		},
	}, nil
}

func newOrderEventPublisher(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

func (p *OrderEventPublisher) Publish(ctx context.Context, events ...ports.OrderEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafkago.Message, 0, len(events))
	for _, event := range events {
		messages = append(messages, kafkago.Message{
			Key:   []byte(event.OrderNumber),
			Value: event.Payload,
			Time:  event.CreatedAt,
			Headers: []kafkago.Header{
				{Key: "event_id", Value: []byte(event.ID.String())},
				{Key: "event_type", Value: []byte(event.Type)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("kafka: write %d order events: %w", len(messages), err)
	}
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
