package dto

// CreatorAggregate is a derived per-creator summary; never persisted.
// Score = totalViews + 5*totalLikes + 3*totalComments + 10*followerCount.
type CreatorAggregate struct {
	CreatorID     string `json:"creator_id"`
	VideoCount    int    `json:"video_count"`
	TotalViews    int64  `json:"total_views"`
	TotalLikes    int64  `json:"total_likes"`
	TotalComments int64  `json:"total_comments"`
	FollowerCount int64  `json:"follower_count"`
	IsFollowing   bool   `json:"is_following"`
	Score         int64  `json:"score"`
}

// HashtagStat is a derived per-tag summary. Weight is the sum of view counts
// of the videos mentioning the tag.
type HashtagStat struct {
	Tag    string `json:"tag"`
	Count  int    `json:"count"`
	Weight int64  `json:"weight"`
}
