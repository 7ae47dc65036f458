// File: services/scheduler/session_store.go
package scheduler

import (
	"context"
	"encoding/json"
	"fmt"

	"classgrid/models"
	"classgrid/utils"

	"github.com/go-redis/redis/v8"
)

// redisSessionStore keeps reschedule sessions in Redis with a TTL, so an
// abandoned drag expires on its own.
type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore returns a SessionStore backed by the session cache
// client.
func NewRedisSessionStore() SessionStore {
	return &redisSessionStore{client: utils.GetSessionCacheClient()}
}

func sessionKey(sessionID string) string {
	return utils.SessionCachePrefix + sessionID
}

func (s *redisSessionStore) Save(ctx context.Context, session *models.RescheduleSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal reschedule session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, utils.SessionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store reschedule session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.RescheduleSession, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("reschedule session not found or expired: %w", err)
	}
	var session models.RescheduleSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse reschedule session: %w", err)
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}
