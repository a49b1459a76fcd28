package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"tido/internal/config"
	"tido/internal/task"
)

// RedisStore keeps the task list as one JSON blob under a single
// Redis key.
type RedisStore struct {
	rdb *redis.Client
	key string
}

// NewRedisStore creates a store over an existing client.
func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	return &RedisStore{rdb: rdb, key: key}
}

// OpenRedisStore connects to Redis using the store configuration and
// verifies the connection with a ping.
func OpenRedisStore(ctx context.Context, cfg config.StoreConfig) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisStore(rdb, cfg.RedisKey), nil
}

// Load implements Store. An absent key means no tasks yet.
func (s *RedisStore) Load(ctx context.Context) ([]task.Task, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: key %s: %v", ErrCorrupt, s.key, err)
	}
	return tasks, nil
}

// Save implements Store. The value has no TTL; it survives until the
// next Save overwrites it.
func (s *RedisStore) Save(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key, data, 0).Err()
}

// Close implements Store.
func (s *RedisStore) Close() error { return s.rdb.Close() }
