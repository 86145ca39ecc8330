package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"gift_shop/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// RedisStore — сессии в redis; визарды переживают рестарт бота.
// Включается конфигом SESSION_BACKEND=redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, userID int64) (entity.Session, error) {
	raw, err := s.client.Get(ctx, redisKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Session{}, nil
	}
	if err != nil {
		return entity.Session{}, fmt.Errorf("redis.Get: %w", err)
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return entity.Session{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return session, nil
}

func (s *RedisStore) Put(ctx context.Context, userID int64, session entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.client.Set(ctx, redisKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, redisKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis.Del: %w", err)
	}

	return nil
}

func redisKey(userID int64) string {
	return "session:" + strconv.FormatInt(userID, 10)
}
