package resources

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis-backed repository with the default key prefix
func NewRedis(client redis.UniversalClient, ttl time.Duration) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client: client,
		TTL:    ttl,
	})
}
