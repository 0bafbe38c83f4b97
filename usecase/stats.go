package usecase

import (
	"regexp"
	"sort"
	"strings"

	"clipstream/domain/dto"
	"clipstream/domain/model"
)

const (
	// TopCreatorsRankSize is the ranking cut; the public listing narrows it
	// further to TopCreatorsListSize as the last step.
	TopCreatorsRankSize = 10
	TopCreatorsListSize = 5

	TrendingHashtagsSize = 10
)

// ComputeTopCreators folds the video corpus into per-creator aggregates and
// ranks them by weighted score. Creators with no videos never appear. The
// viewerID is optional; when empty, IsFollowing is false for every entry.
func ComputeTopCreators(videos []model.Video, follows []model.Follow, viewerID string) []dto.CreatorAggregate {
	byCreator := make(map[string]*dto.CreatorAggregate)
	order := make([]string, 0)
	for i := range videos {
		v := &videos[i]
		agg, ok := byCreator[v.OwnerID]
		if !ok {
			agg = &dto.CreatorAggregate{CreatorID: v.OwnerID}
			byCreator[v.OwnerID] = agg
			order = append(order, v.OwnerID)
		}
		agg.VideoCount++
		agg.TotalViews += v.Views
		agg.TotalLikes += int64(v.LikeCount())
		agg.TotalComments += int64(v.CommentCount())
	}

	for _, f := range follows {
		if agg, ok := byCreator[f.FollowingID]; ok {
			agg.FollowerCount++
			if viewerID != "" && f.FollowerID == viewerID {
				agg.IsFollowing = true
			}
		}
	}

	out := make([]dto.CreatorAggregate, 0, len(order))
	for _, id := range order {
		agg := byCreator[id]
		agg.Score = agg.TotalViews + 5*agg.TotalLikes + 3*agg.TotalComments + 10*agg.FollowerCount
		out = append(out, *agg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > TopCreatorsRankSize {
		out = out[:TopCreatorsRankSize]
	}
	return out
}

var hashtagPattern = regexp.MustCompile(`#\w+`)

// ComputeTrendingHashtags scans descriptions for #word tokens and the
// structured tags column, grouping case-insensitively. Each occurrence
// increments the tag's count and adds the video's view count to its weight.
// A tag present in both the description and the tags column of the same
// video is counted once per source; keeping that double count is a product
// decision, not an accident.
func ComputeTrendingHashtags(videos []model.Video) []dto.HashtagStat {
	byTag := make(map[string]*dto.HashtagStat)
	order := make([]string, 0)
	bump := func(tag string, views int64) {
		stat, ok := byTag[tag]
		if !ok {
			stat = &dto.HashtagStat{Tag: tag}
			byTag[tag] = stat
			order = append(order, tag)
		}
		stat.Count++
		stat.Weight += views
	}

	for i := range videos {
		v := &videos[i]
		for _, m := range hashtagPattern.FindAllString(v.Description, -1) {
			bump(strings.ToLower(m), v.Views)
		}
		for _, t := range v.TagList() {
			t = strings.ToLower(t)
			if !strings.HasPrefix(t, "#") {
				t = "#" + t
			}
			bump(t, v.Views)
		}
	}

	out := make([]dto.HashtagStat, 0, len(order))
	for _, tag := range order {
		out = append(out, *byTag[tag])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight > out[j].Weight
	})
	if len(out) > TrendingHashtagsSize {
		out = out[:TrendingHashtagsSize]
	}
	return out
}
