package repository

import (
	"context"

	"clipstream/domain/model"
)

type IFollow interface {
	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	// ListAll returns the full follow edge set for aggregate computation.
	ListAll(ctx context.Context) ([]model.Follow, error)
	ListFollowsFor(ctx context.Context, followerID string) ([]model.Follow, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
}

// IViewEventLog is the optional playback event sink (Mongo-backed).
type IViewEventLog interface {
	Record(ctx context.Context, event model.ViewEvent) error
	CountForVideo(ctx context.Context, videoID string) (int64, error)
}
