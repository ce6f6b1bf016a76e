package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key scheme: cart:{session} -> JSON cart
const keyCart = "cart:%s"

// TTLCart bounds how long an abandoned session cart survives.
var TTLCart = 24 * time.Hour

// RedisStore persists session carts in Redis so they survive server
// restarts for the lifetime of the session cookie.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func NewRedisStoreWithClient(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	raw, err := s.rdb.Get(ctx, fmt.Sprintf(keyCart, sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode stored cart: %w", err)
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return &c, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, c *Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.rdb.Set(ctx, fmt.Sprintf(keyCart, sessionID), raw, TTLCart).Err(); err != nil {
		return fmt.Errorf("redis save cart: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, fmt.Sprintf(keyCart, sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete cart: %w", err)
	}
	return nil
}
