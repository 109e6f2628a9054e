package stats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "speechlens:stats:"

// RedisRepository stores user stats as JSON blobs in Redis, one key
// per user. Record uses a watch transaction so concurrent appends do
// not lose history entries.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository connects to Redis and verifies the connection.
func NewRedisRepository(ctx context.Context, addr string) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("stats: failed to connect to redis: %w", err)
	}
	return &RedisRepository{client: client}, nil
}

func redisKey(userID string) string { return redisKeyPrefix + userID }

func (r *RedisRepository) Get(ctx context.Context, userID string) (*UserStats, error) {
	raw, err := r.client.Get(ctx, redisKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("stats: redis get: %w", err)
	}

	var u UserStats
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("stats: corrupt stats for %s: %w", userID, err)
	}
	return &u, nil
}

func (r *RedisRepository) Record(ctx context.Context, userID string, s Summary) error {
	key := redisKey(userID)

	return r.client.Watch(ctx, func(tx *redis.Tx) error {
		u := UserStats{UserID: userID}
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("stats: redis get: %w", err)
		}
		if err == nil {
			if uerr := json.Unmarshal(raw, &u); uerr != nil {
				return fmt.Errorf("stats: corrupt stats for %s: %w", userID, uerr)
			}
		}

		u.Append(s)
		out, err := json.Marshal(&u)
		if err != nil {
			return fmt.Errorf("stats: marshal stats: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		return err
	}, key)
}

// Close releases the underlying Redis connection.
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
