// File: services/intelligence/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"innkeeper/models"

	"github.com/go-redis/redis/v8"
)

const statePrefix = "agent:state:"

// RedisStateStore keeps ConversationState in Redis under a TTL so abandoned
// flows expire on their own.
type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{client: client, ttl: ttl}
}

// Get loads a user's state. A missing key yields a fresh zero state.
func (s *RedisStateStore) Get(ctx context.Context, userID string) (*models.ConversationState, error) {
	key := statePrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ConversationState{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	var state models.ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisStateStore) Save(ctx context.Context, state *models.ConversationState) error {
	state.UpdatedAt = time.Now().UTC()
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, statePrefix+state.UserID, b, s.ttl).Err()
}

// Clear drops a user's state. Deleting a missing key is a no-op.
func (s *RedisStateStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, statePrefix+userID).Err()
}
