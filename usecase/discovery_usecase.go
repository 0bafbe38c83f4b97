package usecase

import (
	"context"
	"time"

	"clipstream/domain/dto"
	"clipstream/domain/repository"
	"clipstream/infrastructure/logger"
)

const discoveryCacheTTL = 60 * time.Second

type IDiscoveryUsecase interface {
	// TopCreators returns the public top-5 listing with viewer-relative
	// IsFollowing. viewerID may be empty.
	TopCreators(ctx context.Context, viewerID string) []dto.CreatorAggregate
	// TrendingHashtags returns the top-10 hashtags by weight.
	TrendingHashtags(ctx context.Context) []dto.HashtagStat
}

type discoveryUsecase struct {
	videoRepo  repository.IVideo
	followRepo repository.IFollow
	cache      repository.IDiscoveryCache
}

func NewDiscoveryUsecase(videoRepo repository.IVideo, followRepo repository.IFollow, cache repository.IDiscoveryCache) IDiscoveryUsecase {
	return &discoveryUsecase{videoRepo: videoRepo, followRepo: followRepo, cache: cache}
}

// TopCreators degrades to an empty listing when the upstream fetch fails;
// the consuming view renders an empty state, not an error.
func (u *discoveryUsecase) TopCreators(ctx context.Context, viewerID string) []dto.CreatorAggregate {
	ranking := u.rankedCreators(ctx)
	if len(ranking) > TopCreatorsListSize {
		ranking = ranking[:TopCreatorsListSize]
	}
	if viewerID == "" {
		return ranking
	}
	// IsFollowing is per-viewer and therefore applied outside the cache.
	follows, err := u.followRepo.ListFollowsFor(ctx, viewerID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to load viewer follows - returning listing without follow flags")
		return ranking
	}
	following := make(map[string]struct{}, len(follows))
	for _, f := range follows {
		following[f.FollowingID] = struct{}{}
	}
	for i := range ranking {
		_, ok := following[ranking[i].CreatorID]
		ranking[i].IsFollowing = ok
	}
	return ranking
}

// rankedCreators returns the cached top-10 score table, recomputing it on a
// cache miss. Cached rows never carry viewer-relative flags.
func (u *discoveryUsecase) rankedCreators(ctx context.Context) []dto.CreatorAggregate {
	if cached, err := u.cache.GetTopCreators(ctx); err == nil {
		return cached
	}
	videos, err := u.videoRepo.ListVideos(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Video fetch failed - top creators degrade to empty")
		return []dto.CreatorAggregate{}
	}
	follows, err := u.followRepo.ListAll(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Follow fetch failed - computing top creators without follower counts")
		follows = nil
	}
	ranking := ComputeTopCreators(videos, follows, "")
	if err := u.cache.SetTopCreators(ctx, ranking, discoveryCacheTTL); err != nil {
		logger.GetLogger().WithField("error", err).Debug("Failed to cache top creators")
	}
	return ranking
}

func (u *discoveryUsecase) TrendingHashtags(ctx context.Context) []dto.HashtagStat {
	if cached, err := u.cache.GetTrendingHashtags(ctx); err == nil {
		return cached
	}
	videos, err := u.videoRepo.ListVideos(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Video fetch failed - trending hashtags degrade to empty")
		return []dto.HashtagStat{}
	}
	tags := ComputeTrendingHashtags(videos)
	if err := u.cache.SetTrendingHashtags(ctx, tags, discoveryCacheTTL); err != nil {
		logger.GetLogger().WithField("error", err).Debug("Failed to cache trending hashtags")
	}
	return tags
}
