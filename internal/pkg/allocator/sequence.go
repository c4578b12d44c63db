package allocator

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisSequence keeps counters in redis, serialized across processes by a redsync mutex.
type RedisSequence struct {
	client *redis.Client
	rs     *redsync.Redsync
	expiry time.Duration
}

func NewRedisSequence(client *redis.Client) *RedisSequence {
	return &RedisSequence{
		client: client,
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: 5 * time.Second,
	}
}

func (s *RedisSequence) Next(ctx context.Context, key string, floor int) (int, error) {
	mutex := s.rs.NewMutex("lock:"+key, redsync.WithExpiry(s.expiry), redsync.WithTries(16))
	if err := mutex.LockContext(ctx); err != nil {
		return 0, err
	}
	defer mutex.UnlockContext(ctx)

	current, err := s.client.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		return 0, err
	}

	next := current
	if floor > next {
		next = floor
	}
	next++

	if err := s.client.Set(ctx, key, next, 0).Err(); err != nil {
		return 0, err
	}
	return next, nil
}
