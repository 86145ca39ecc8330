package session

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"gift_shop/internal/domain/entity"
)

// MemoryStore — сессии в памяти процесса. TTL ограничивает жизнь
// брошенного визарда, при рестарте всё теряется.
type MemoryStore struct {
	values *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		values: cache.New(ttl, ttl),
	}
}

func (s *MemoryStore) Get(_ context.Context, userID int64) (entity.Session, error) {
	v, found := s.values.Get(memoryKey(userID))
	if !found {
		return entity.Session{}, nil
	}

	return v.(entity.Session), nil
}

func (s *MemoryStore) Put(_ context.Context, userID int64, session entity.Session) error {
	s.values.Set(memoryKey(userID), session, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID int64) error {
	s.values.Delete(memoryKey(userID))
	return nil
}

func memoryKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
