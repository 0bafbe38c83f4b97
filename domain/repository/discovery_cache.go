package repository

import (
	"context"
	"time"

	"clipstream/domain/dto"
)

// IDiscoveryCache is a short-TTL read-through cache for the discovery
// read-models. Aggregates stay pure functions of the source sets; the cache
// only shortcuts recomputation.
type IDiscoveryCache interface {
	GetTopCreators(ctx context.Context) ([]dto.CreatorAggregate, error)
	SetTopCreators(ctx context.Context, creators []dto.CreatorAggregate, ttl time.Duration) error
	GetTrendingHashtags(ctx context.Context) ([]dto.HashtagStat, error)
	SetTrendingHashtags(ctx context.Context, tags []dto.HashtagStat, ttl time.Duration) error
}
