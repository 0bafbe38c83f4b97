package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clipstream/domain/dto"
	"clipstream/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	topCreatorsKey      = "discovery:top_creators"
	trendingHashtagsKey = "discovery:trending_hashtags"
)

// ErrCacheMiss is returned when the key is absent or the cache is disabled.
var ErrCacheMiss = errors.New("cache miss")

// DiscoveryCache stores the discovery read-models in Redis as JSON blobs.
// A nil client disables the cache (every read is a miss, writes are no-ops).
type DiscoveryCache struct {
	client *redis.Client
}

func NewDiscoveryCache(client *redis.Client) repository.IDiscoveryCache {
	return &DiscoveryCache{client: client}
}

func (c *DiscoveryCache) GetTopCreators(ctx context.Context) ([]dto.CreatorAggregate, error) {
	var out []dto.CreatorAggregate
	if err := c.get(ctx, topCreatorsKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DiscoveryCache) SetTopCreators(ctx context.Context, creators []dto.CreatorAggregate, ttl time.Duration) error {
	return c.set(ctx, topCreatorsKey, creators, ttl)
}

func (c *DiscoveryCache) GetTrendingHashtags(ctx context.Context) ([]dto.HashtagStat, error) {
	var out []dto.HashtagStat
	if err := c.get(ctx, trendingHashtagsKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DiscoveryCache) SetTrendingHashtags(ctx context.Context, tags []dto.HashtagStat, ttl time.Duration) error {
	return c.set(ctx, trendingHashtagsKey, tags, ttl)
}

func (c *DiscoveryCache) get(ctx context.Context, key string, out interface{}) error {
	if c.client == nil {
		return ErrCacheMiss
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (c *DiscoveryCache) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}
