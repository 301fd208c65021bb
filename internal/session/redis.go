package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisDirectory stores sessions in Redis so they survive process
// restarts. Redis key TTLs provide the eviction.
type RedisDirectory struct {
	client *redis.Client
	opts   Options
}

var _ Directory = (*RedisDirectory)(nil)

// NewRedisDirectory wraps an existing Redis client.
func NewRedisDirectory(client *redis.Client, opts Options) *RedisDirectory {
	return &RedisDirectory{client: client, opts: opts.withDefaults()}
}

func (d *RedisDirectory) Create(ctx context.Context, identity Identity) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	if err := d.client.Set(ctx, redisKeyPrefix+token, payload, d.opts.TTL).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (d *RedisDirectory) Resolve(ctx context.Context, token string) (*Identity, error) {
	key := redisKeyPrefix + token
	raw, err := d.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrInvalid
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	var identity Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if d.opts.Sliding {
		// Best effort: a failed refresh only shortens the session.
		_ = d.client.Expire(ctx, key, d.opts.TTL).Err()
	}
	return &identity, nil
}

func (d *RedisDirectory) Revoke(ctx context.Context, token string) error {
	if err := d.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
