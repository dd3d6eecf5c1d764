package kv

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis keeps records as plain string values on a redis server.
type Redis struct {
	conn *redis.Client
}

func NewRedis(addr string) *Redis {
	return &Redis{conn: redis.NewClient(&redis.Options{Addr: addr})}
}

func NewRedisWithClient(conn *redis.Client) *Redis {
	return &Redis{conn: conn}
}

func (s *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.conn.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *Redis) Set(ctx context.Context, key string, value []byte) error {
	return s.conn.Set(ctx, key, value, 0).Err()
}

func (s *Redis) Delete(ctx context.Context, key string) error {
	return s.conn.Del(ctx, key).Err()
}
