package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/a4co/transportista-service/internal/core/domain"
)

const DefaultStatusTopic = "shipment.status_changed"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// StatusPublisher writes status changes to Kafka keyed by tracking number,
// so every change of one shipment lands on the same partition.
type StatusPublisher struct {
	w     messageWriter
	topic string
}

// NewStatusPublisher creates a publisher for the given brokers and topic.
func NewStatusPublisher(brokers []string, topic string) *StatusPublisher {
	if topic == "" {
		topic = DefaultStatusTopic
	}
	return newStatusPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}, topic)
}

func newStatusPublisherWithWriter(w messageWriter, topic string) *StatusPublisher {
	return &StatusPublisher{w: w, topic: topic}
}

func (p *StatusPublisher) PublishStatusChanged(ctx context.Context, change domain.StatusChange) error {
	value, err := json.Marshal(newStatusChangedMessage(change))
	if err != nil {
		return fmt.Errorf("encode status change: %w", err)
	}

	if err := p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(change.TrackingNumber),
		Value: value,
	}); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer when it supports it.
func (p *StatusPublisher) Close() error {
	if c, ok := p.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
