package repository

import (
	"context"

	"clipstream/domain/model"
)

type IVideo interface {
	// ListVideos returns the full corpus with like and comment sets preloaded.
	ListVideos(ctx context.Context) ([]model.Video, error)
	ListVideosByOwner(ctx context.Context, ownerID string) ([]model.Video, error)
	GetVideo(ctx context.Context, id string) (*model.Video, error)
	CreateVideo(ctx context.Context, video *model.Video) error
	DeleteVideo(ctx context.Context, id, ownerID string) error
	IncrementViews(ctx context.Context, id string) error

	AddLike(ctx context.Context, videoID, userID string) error
	RemoveLike(ctx context.Context, videoID, userID string) error

	ListComments(ctx context.Context, videoID string) ([]model.Comment, error)
	AddComment(ctx context.Context, comment *model.Comment) error
	DeleteComment(ctx context.Context, commentID int64, userID string) error
}
