package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	rdb *redis.Client
}

func New(addr, password string, db int) *Store {
	return &Store{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// IncrWindow bumps a fixed-window rate counter and returns the new count.
// The key expires when the window rolls over, so the first increment of a
// window sets the TTL.
func (s *Store) IncrWindow(ctx context.Context, scope, key string, window time.Duration) (int64, error) {
	bucket := time.Now().Unix() / int64(window.Seconds())
	k := fmt.Sprintf("rl:%s:%s:%d", scope, key, bucket)

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (s *Store) Close() error {
	return s.rdb.Close()
}
