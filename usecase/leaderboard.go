package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"clipstream/domain/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode is the closed set of leaderboard orderings.
type SortMode string

const (
	SortLikesDesc  SortMode = "likes_desc"
	SortLikesAsc   SortMode = "likes_asc"
	SortTitleAsc   SortMode = "title_asc"
	SortCreatorAsc SortMode = "creator_asc"
)

// ErrInvalidSortMode is returned for an unrecognized sort key. There is no
// silent fallback.
var ErrInvalidSortMode = errors.New("invalid sort mode")

var collator = collate.New(language.English, collate.IgnoreCase)

// lessFunc orders a before b. Like-count modes compare counts only; ties keep
// their prior relative order under the stable sort, which is the fetch
// (insertion) order, not recency of like.
type lessFunc func(a, b *model.Video) bool

var comparators = map[SortMode]lessFunc{
	SortLikesDesc: func(a, b *model.Video) bool { return a.LikeCount() > b.LikeCount() },
	SortLikesAsc:  func(a, b *model.Video) bool { return a.LikeCount() < b.LikeCount() },
	SortTitleAsc:  func(a, b *model.Video) bool { return collator.CompareString(a.Title, b.Title) < 0 },
	SortCreatorAsc: func(a, b *model.Video) bool {
		return collator.CompareString(a.OwnerID, b.OwnerID) < 0
	},
}

// RankOptions are the leaderboard filter and ordering parameters.
type RankOptions struct {
	Query    string   // free text, substring, OR across title/description/creator
	Category string   // exact match; "all" or empty disables the filter
	Sort     SortMode // empty defaults to likes_desc
}

// RankLeaderboard filters then orders the given videos. It is a pure function
// of its inputs: the input slice is not mutated and an empty input yields an
// empty result.
func RankLeaderboard(videos []model.Video, opts RankOptions) ([]model.Video, error) {
	mode := opts.Sort
	if mode == "" {
		mode = SortLikesDesc
	}
	less, ok := comparators[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortMode, string(mode))
	}

	out := make([]model.Video, 0, len(videos))
	for i := range videos {
		if matchesCategory(&videos[i], opts.Category) && matchesQuery(&videos[i], opts.Query) {
			out = append(out, videos[i])
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j])
	})
	return out, nil
}

// TopN truncates a ranked list for the compact "up next" view.
func TopN(videos []model.Video, n int) []model.Video {
	if n < 0 {
		n = 0
	}
	if len(videos) <= n {
		return videos
	}
	return videos[:n]
}

func matchesCategory(v *model.Video, category string) bool {
	if category == "" || category == "all" {
		return true
	}
	return v.Category == category
}

func matchesQuery(v *model.Video, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(v.Title), q) ||
		strings.Contains(strings.ToLower(v.Description), q) ||
		strings.Contains(strings.ToLower(v.OwnerID), q)
}
