package kafka

import (
	"context"
	"encoding/json"

	"github.com/agnesederberg/Final-project-2/internal/events"
	"github.com/agnesederberg/Final-project-2/pkg/logger"

	"github.com/segmentio/kafka-go"
)

// Handler processes one decoded audit event.
type Handler func(event events.AuditEvent) error

type Consumer struct {
	reader   *kafka.Reader
	handlers map[string]Handler
}

func NewConsumer(brokers []string, groupID string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   events.AuditTopic,
	})
	return &Consumer{
		reader:   reader,
		handlers: make(map[string]Handler),
	}
}

// RegisterHandler binds a handler to an event type. Events without a
// handler are skipped.
func (c *Consumer) RegisterHandler(eventType string, handler Handler) {
	c.handlers[eventType] = handler
}

// Start consumes until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	for {
		message, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Log.Error().Err(err).Msg("Failed to read audit message")
			continue
		}

		var event events.AuditEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			logger.Log.Error().Err(err).Msg("Failed to decode audit event")
			continue
		}

		handler, ok := c.handlers[event.EventType]
		if !ok {
			continue
		}
		if err := handler(event); err != nil {
			logger.Log.Error().Err(err).Str("eventType", event.EventType).Msg("Audit handler failed")
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
