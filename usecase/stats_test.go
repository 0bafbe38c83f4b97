package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipstream/domain/model"
	"clipstream/usecase"
)

func creatorVideo(owner string, views int64, likes, comments int) model.Video {
	v := model.Video{ID: owner + "-v", OwnerID: owner, Views: views}
	for i := 0; i < likes; i++ {
		v.Likes = append(v.Likes, model.Like{VideoID: v.ID})
	}
	for i := 0; i < comments; i++ {
		v.Comments = append(v.Comments, model.Comment{VideoID: v.ID})
	}
	return v
}

func TestComputeTopCreators_ScoreFormula(t *testing.T) {
	videos := []model.Video{
		creatorVideo("nadia", 100, 4, 2),
	}
	follows := []model.Follow{
		{FollowerID: "omar", FollowingID: "nadia"},
		{FollowerID: "pat", FollowingID: "nadia"},
	}

	out := usecase.ComputeTopCreators(videos, follows, "")
	require.Len(t, out, 1)

	// views + 5*likes + 3*comments + 10*followers
	assert.Equal(t, int64(100+5*4+3*2+10*2), out[0].Score)
	assert.Equal(t, 1, out[0].VideoCount)
	assert.Equal(t, int64(2), out[0].FollowerCount)
	assert.False(t, out[0].IsFollowing)
}

func TestComputeTopCreators_CreatorsWithoutVideosAbsent(t *testing.T) {
	videos := []model.Video{
		creatorVideo("nadia", 10, 0, 0),
	}
	// pat has followers but no videos
	follows := []model.Follow{
		{FollowerID: "omar", FollowingID: "pat"},
	}

	out := usecase.ComputeTopCreators(videos, follows, "")
	require.Len(t, out, 1)
	assert.Equal(t, "nadia", out[0].CreatorID)
}

func TestComputeTopCreators_ViewerFollowFlag(t *testing.T) {
	videos := []model.Video{
		creatorVideo("nadia", 10, 0, 0),
		creatorVideo("omar", 10, 0, 0),
	}
	follows := []model.Follow{
		{FollowerID: "pat", FollowingID: "nadia"},
		{FollowerID: "quinn", FollowingID: "omar"},
	}

	out := usecase.ComputeTopCreators(videos, follows, "pat")
	require.Len(t, out, 2)
	byID := map[string]bool{}
	for _, agg := range out {
		byID[agg.CreatorID] = agg.IsFollowing
	}
	assert.True(t, byID["nadia"])
	assert.False(t, byID["omar"])
}

func TestComputeTopCreators_RankCut(t *testing.T) {
	videos := make([]model.Video, 0, 12)
	for i := 0; i < 12; i++ {
		videos = append(videos, creatorVideo(string(rune('a'+i)), int64(i*10), 0, 0))
	}

	out := usecase.ComputeTopCreators(videos, nil, "")
	assert.Len(t, out, usecase.TopCreatorsRankSize)
	// highest score first
	assert.Equal(t, "l", out[0].CreatorID)
}

func TestComputeTrendingHashtags_CaseFolding(t *testing.T) {
	videos := []model.Video{
		{ID: "a", Description: "warmup #fun times", Views: 5},
		{ID: "b", Description: "more #FUN here", Views: 7},
	}

	out := usecase.ComputeTrendingHashtags(videos)
	require.Len(t, out, 1)
	assert.Equal(t, "#fun", out[0].Tag)
	assert.Equal(t, 2, out[0].Count)
	assert.Equal(t, int64(12), out[0].Weight)
}

func TestComputeTrendingHashtags_DescriptionAndTagsBothCount(t *testing.T) {
	// The same tag in both the description and the tags column of one video
	// counts once per source.
	videos := []model.Video{
		{ID: "a", Description: "big #jump compilation", Tags: "jump, outdoors", Views: 3},
	}

	out := usecase.ComputeTrendingHashtags(videos)
	byTag := map[string]int{}
	for _, s := range out {
		byTag[s.Tag] = s.Count
	}
	assert.Equal(t, 2, byTag["#jump"])
	assert.Equal(t, 1, byTag["#outdoors"])
}

func TestComputeTrendingHashtags_OrderedByWeight(t *testing.T) {
	videos := []model.Video{
		{ID: "a", Description: "#quiet clip", Views: 1},
		{ID: "b", Description: "#viral clip", Views: 1000},
		{ID: "c", Description: "#mid clip", Views: 50},
	}

	out := usecase.ComputeTrendingHashtags(videos)
	require.Len(t, out, 3)
	assert.Equal(t, "#viral", out[0].Tag)
	assert.Equal(t, "#mid", out[1].Tag)
	assert.Equal(t, "#quiet", out[2].Tag)
}

func TestComputeTrendingHashtags_TopTenCut(t *testing.T) {
	videos := make([]model.Video, 0, 15)
	for i := 0; i < 15; i++ {
		videos = append(videos, model.Video{
			ID:          string(rune('a' + i)),
			Description: "#tag" + string(rune('a'+i)),
			Views:       int64(i),
		})
	}

	out := usecase.ComputeTrendingHashtags(videos)
	assert.Len(t, out, usecase.TrendingHashtagsSize)
}

func TestComputeTrendingHashtags_NoTags(t *testing.T) {
	videos := []model.Video{
		{ID: "a", Description: "a plain description", Views: 9},
	}

	out := usecase.ComputeTrendingHashtags(videos)
	assert.Empty(t, out)
}
