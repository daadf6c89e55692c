package state

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// stateTTL auto-expires abandoned flows.
const stateTTL = 24 * time.Hour

// RedisManager keeps user state in Redis so flows survive restarts.
type RedisManager struct {
	client *redis.Client
}

func NewRedisManager(host, port string) (*RedisManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisManager{client: client}, nil
}

func (m *RedisManager) SetUserState(userID int64, state string) {
	m.client.Set(context.Background(), stateKey(userID), state, stateTTL)
}

func (m *RedisManager) GetUserState(userID int64) string {
	result := m.client.Get(context.Background(), stateKey(userID))
	if result.Err() != nil {
		return None
	}
	return result.Val()
}

func (m *RedisManager) ClearUserState(userID int64) {
	m.client.Del(context.Background(), stateKey(userID))
}

func (m *RedisManager) SetTempData(userID int64, key, value string) {
	m.client.HSet(context.Background(), tempKey(userID), key, value)
	m.client.Expire(context.Background(), tempKey(userID), stateTTL)
}

func (m *RedisManager) GetTempData(userID int64, key string) (string, bool) {
	result := m.client.HGet(context.Background(), tempKey(userID), key)
	if result.Err() != nil {
		return "", false
	}
	return result.Val(), true
}

func (m *RedisManager) ClearTempData(userID int64) {
	m.client.Del(context.Background(), tempKey(userID))
}

// Close closes the Redis connection.
func (m *RedisManager) Close() error {
	return m.client.Close()
}

func stateKey(userID int64) string {
	return fmt.Sprintf("user:%d:state", userID)
}

func tempKey(userID int64) string {
	return fmt.Sprintf("user:%d:temp", userID)
}
