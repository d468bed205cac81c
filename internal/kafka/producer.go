package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agnesederberg/Final-project-2/internal/events"
	"github.com/agnesederberg/Final-project-2/pkg/logger"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	auditWriter *kafka.Writer
}

// NewProducer creates a Kafka producer for the audit topic.
func NewProducer(brokers []string) *Producer {
	auditWriter := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        events.AuditTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	return &Producer{auditWriter: auditWriter}
}

// PublishAuditEvent publishes one audit event. Callers treat failures
// as log-only: an audit gap never fails the originating request.
func (p *Producer) PublishAuditEvent(ctx context.Context, event *events.AuditEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to marshal audit event")
		return err
	}

	message := kafka.Message{
		Key:   []byte(event.EntityID),
		Value: value,
		Time:  event.Timestamp,
	}

	if err := p.auditWriter.WriteMessages(ctx, message); err != nil {
		logger.Log.Error().Err(err).Str("eventType", event.EventType).Msg("Failed to publish audit event")
		return err
	}
	return nil
}

func (p *Producer) Close() error {
	return p.auditWriter.Close()
}
