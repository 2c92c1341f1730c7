package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Tw1zzzzz/CisBot2/internal/config"
)

// LikedYouTTL bounds how long a cached incoming-like counter survives
// without being read or written.
const LikedYouTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes the Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// KeyForLikedYou generates the Redis key for a user's incoming-like count.
func (c *RedisCache) KeyForLikedYou(userID int64) string {
	return fmt.Sprintf("liked_you:count:%d", userID)
}

// GetLikedYouCount reads the cached counter. The second return value is
// false on a cache miss.
func (c *RedisCache) GetLikedYouCount(ctx context.Context, userID int64) (int64, bool, error) {
	key := c.KeyForLikedYou(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil // treat garbage as a miss
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, LikedYouTTL).Err()
	return n, true, nil
}

// SetLikedYouCount stores the counter with a fresh TTL.
func (c *RedisCache) SetLikedYouCount(ctx context.Context, userID, count int64) error {
	return c.Client.Set(ctx, c.KeyForLikedYou(userID), count, LikedYouTTL).Err()
}

// IncrLikedYouCount bumps the counter if it is cached; a missing key is
// left missing so the next read repopulates from the store.
func (c *RedisCache) IncrLikedYouCount(ctx context.Context, userID int64) error {
	key := c.KeyForLikedYou(userID)
	exists, err := c.Client.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return err
	}
	if err := c.Client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, LikedYouTTL).Err()
}
