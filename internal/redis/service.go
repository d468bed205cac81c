package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/agnesederberg/Final-project-2/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Service is the Redis-backed session store. Session records carry the
// owning user ID and expire with the session's lifetime, so "remember
// me" sessions simply get a longer TTL.
type Service struct {
	client *redis.Client
}

// NewService connects to Redis and verifies the connection.
func NewService(addr, password string, db int) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Log.Info().Str("addr", addr).Msg("Connected to Redis")
	return &Service{client: client}, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *Service) Save(ctx context.Context, sessionID string, userID uuid.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(sessionID), userID.String(), ttl).Err()
}

func (s *Service) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Service) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

func (s *Service) Close() error {
	return s.client.Close()
}
