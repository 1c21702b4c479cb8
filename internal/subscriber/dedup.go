package subscriber

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDeduper claims message ids with SET NX so redelivered duplicates are
// skipped. Keys are scoped per consumer group; every subscription keeps its
// own dedup state.
type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisDeduper{client: client, ttl: ttl}
}

func (d *RedisDeduper) Seen(ctx context.Context, group, messageID string) (bool, error) {
	key := "relay:dedup:" + group + ":" + messageID
	set, err := d.client.SetNX(ctx, key, "1", d.ttl).Result()
	if err != nil {
		return false, err
	}
	return !set, nil
}
