package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipstream/domain/model"
	"clipstream/usecase"
)

func videoWithLikes(id, title string, likes int) model.Video {
	v := model.Video{ID: id, Title: title, OwnerID: "creator-" + id}
	for i := 0; i < likes; i++ {
		v.Likes = append(v.Likes, model.Like{VideoID: id})
	}
	return v
}

func TestRankLeaderboard_LikesDescIsMonotonic(t *testing.T) {
	videos := []model.Video{
		videoWithLikes("a", "Alpha", 2),
		videoWithLikes("b", "Bravo", 7),
		videoWithLikes("c", "Charlie", 0),
		videoWithLikes("d", "Delta", 7),
	}

	ranked, err := usecase.RankLeaderboard(videos, usecase.RankOptions{Sort: usecase.SortLikesDesc})
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].LikeCount(), ranked[i].LikeCount())
	}
	// ties keep input order under the stable sort
	assert.Equal(t, "b", ranked[0].ID)
	assert.Equal(t, "d", ranked[1].ID)
}

func TestRankLeaderboard_DefaultSortIsLikesDesc(t *testing.T) {
	videos := []model.Video{
		videoWithLikes("a", "Alpha", 1),
		videoWithLikes("b", "Bravo", 3),
	}

	ranked, err := usecase.RankLeaderboard(videos, usecase.RankOptions{})
	require.NoError(t, err)
	assert.Equal(t, "b", ranked[0].ID)
}

func TestRankLeaderboard_InvalidSortMode(t *testing.T) {
	_, err := usecase.RankLeaderboard([]model.Video{videoWithLikes("a", "Alpha", 1)}, usecase.RankOptions{Sort: "views_desc"})
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrInvalidSortMode)
}

func TestRankLeaderboard_TitleAscIgnoresCase(t *testing.T) {
	videos := []model.Video{
		{ID: "a", Title: "banana stunt"},
		{ID: "b", Title: "Apple drop"},
		{ID: "c", Title: "cliff dive"},
	}

	ranked, err := usecase.RankLeaderboard(videos, usecase.RankOptions{Sort: usecase.SortTitleAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

func TestRankLeaderboard_CategoryAllEqualsNoFilter(t *testing.T) {
	videos := []model.Video{
		{ID: "a", Title: "Alpha", Category: "comedy"},
		{ID: "b", Title: "Bravo", Category: "sports"},
	}

	all, err := usecase.RankLeaderboard(videos, usecase.RankOptions{Category: "all"})
	require.NoError(t, err)
	none, err := usecase.RankLeaderboard(videos, usecase.RankOptions{})
	require.NoError(t, err)
	assert.Equal(t, none, all)

	sports, err := usecase.RankLeaderboard(videos, usecase.RankOptions{Category: "sports"})
	require.NoError(t, err)
	require.Len(t, sports, 1)
	assert.Equal(t, "b", sports[0].ID)
}

func TestRankLeaderboard_QueryMatchesAnyField(t *testing.T) {
	videos := []model.Video{
		{ID: "a", Title: "Skate run", Description: "downtown", OwnerID: "nadia"},
		{ID: "b", Title: "Cooking", Description: "skate park snacks", OwnerID: "omar"},
		{ID: "c", Title: "Unrelated", Description: "nothing", OwnerID: "skater99"},
		{ID: "d", Title: "Quiet", Description: "calm", OwnerID: "pat"},
	}

	ranked, err := usecase.RankLeaderboard(videos, usecase.RankOptions{Query: "SKATE"})
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	for _, v := range ranked {
		assert.NotEqual(t, "d", v.ID)
	}
}

func TestRankLeaderboard_EmptyInput(t *testing.T) {
	ranked, err := usecase.RankLeaderboard(nil, usecase.RankOptions{Sort: usecase.SortLikesAsc})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankLeaderboard_DoesNotMutateInput(t *testing.T) {
	videos := []model.Video{
		videoWithLikes("a", "Alpha", 0),
		videoWithLikes("b", "Bravo", 5),
	}

	_, err := usecase.RankLeaderboard(videos, usecase.RankOptions{Sort: usecase.SortLikesDesc})
	require.NoError(t, err)
	assert.Equal(t, "a", videos[0].ID)
	assert.Equal(t, "b", videos[1].ID)
}

func TestTopN(t *testing.T) {
	videos := []model.Video{
		videoWithLikes("a", "Alpha", 3),
		videoWithLikes("b", "Bravo", 2),
		videoWithLikes("c", "Charlie", 1),
	}

	assert.Len(t, usecase.TopN(videos, 2), 2)
	assert.Len(t, usecase.TopN(videos, 10), 3)
	assert.Empty(t, usecase.TopN(videos, 0))
}
