// The consumer tails the audit topic and writes an activity log. It is
// the destination of every audit event the server publishes.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/agnesederberg/Final-project-2/internal/config"
	"github.com/agnesederberg/Final-project-2/internal/events"
	"github.com/agnesederberg/Final-project-2/internal/kafka"
	"github.com/agnesederberg/Final-project-2/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	logger.InitLogger()

	cfg := config.Load()
	consumer := kafka.NewConsumer(cfg.KafkaBrokers, "audit-logger")

	for _, eventType := range []string{
		events.UserRegistered,
		events.UserProfileUpdated,
		events.UserPasswordChanged,
		events.UserDeleted,
		events.FolderCreated,
		events.FolderDeleted,
		events.NoteCreated,
		events.NoteDeleted,
	} {
		consumer.RegisterHandler(eventType, logAuditEvent)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go consumer.Start(ctx)

	log.Println("Audit consumer started. Press Ctrl+C to exit.")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down consumer...")
	cancel()
	consumer.Close()
}

func logAuditEvent(event events.AuditEvent) error {
	logger.Log.Info().
		Str("eventType", event.EventType).
		Str("entityType", event.EntityType).
		Str("entityId", event.EntityID).
		Str("actorId", event.ActorID).
		Time("at", event.Timestamp).
		Msg("Audit event")
	return nil
}
