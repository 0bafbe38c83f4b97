package dto

import "time"

// VideoListRequest carries the feed/leaderboard query parameters.
type VideoListRequest struct {
	Q        string `form:"q"`
	Category string `form:"category"` // exact match; "all" or empty disables the filter
	Sort     string `form:"sort"`     // likes_desc (default), likes_asc, title_asc, creator_asc
}

type VideoCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Tags        string `json:"tags"` // comma-separated
	Duration    int    `json:"duration"`
}

type CommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// VideoView is the API shape of a video: counts flattened, like/comment sets
// not exposed.
type VideoView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	Duration     int       `json:"duration"`
	Views        int64     `json:"views"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	OwnerID      string    `json:"owner_id"`
	Liked        bool      `json:"liked,omitempty"` // relative to the requesting user
	CreatedAt    time.Time `json:"created_at"`
}
