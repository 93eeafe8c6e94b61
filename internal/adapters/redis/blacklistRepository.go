package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const blacklistKeyPrefix = "jwt:blacklist:"

// BlacklistRepositoryRedis stores revoked token ids with a TTL matching the
// token's remaining lifetime, so revocation survives restarts and is shared
// across instances.
type BlacklistRepositoryRedis struct {
	Client *redis.Client
}

func NewBlacklistRepositoryRedis(client *redis.Client) *BlacklistRepositoryRedis {
	return &BlacklistRepositoryRedis{
		Client: client,
	}
}

func (r *BlacklistRepositoryRedis) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return r.Client.Set(ctx, blacklistKeyPrefix+jti, "1", ttl).Err()
}

func (r *BlacklistRepositoryRedis) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.Client.Exists(ctx, blacklistKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
