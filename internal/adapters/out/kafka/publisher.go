// Package kafka publishes order events from the outbox to Kafka.
package kafka

import (
	"context"
	"errors"
	"fmt"

	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"

	"github.com/Shopify/sarama"
)

const eventTypeHeader = "event_type"

var _ ports.EventPublisher = (*OrderEventPublisher)(nil)

// OrderEventPublisher sends outbox messages to one topic. The message key is
// the order id, so all events of an order land on the same partition in order.
type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewSyncProducer connects a producer that waits for all in-sync replicas.
func NewSyncProducer(host string) (sarama.SyncProducer, error) {
	if host == "" {
		return nil, errs.NewValueIsRequiredError("kafka host")
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer([]string{host}, config)
	if err != nil {
		return nil, fmt.Errorf("connect kafka producer: %w", err)
	}
	return producer, nil
}

func NewOrderEventPublisher(producer sarama.SyncProducer, topic string) (*OrderEventPublisher, error) {
	if producer == nil {
		return nil, errs.NewValueIsRequiredError("producer")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	return &OrderEventPublisher{producer: producer, topic: topic}, nil
}

// Publish sends the whole batch and fails if any message was not acknowledged.
func (p *OrderEventPublisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := p.producer.SendMessages(toProducerMessages(p.topic, messages)); err != nil {
		var producerErrs sarama.ProducerErrors
		if errors.As(err, &producerErrs) && len(producerErrs) > 0 {
			return fmt.Errorf("publish %d of %d order events: %w", len(producerErrs), len(messages), producerErrs[0].Err)
		}
		return fmt.Errorf("publish order events: %w", err)
	}
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.producer.Close()
}

func toProducerMessages(topic string, messages []ports.OutboxMessage) []*sarama.ProducerMessage {
	result := make([]*sarama.ProducerMessage, 0, len(messages))
	for _, message := range messages {
		result = append(result, &sarama.ProducerMessage{
			Topic: topic,
			Key:   sarama.StringEncoder(message.AggregateID.String()),
			Value: sarama.ByteEncoder(message.Payload),
			Headers: []sarama.RecordHeader{
				{Key: []byte(eventTypeHeader), Value: []byte(message.EventType)},
			},
			Timestamp: message.OccurredAt,
		})
	}
	return result
}
