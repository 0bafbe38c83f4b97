package persistence

import (
	"context"
	"errors"

	"clipstream/domain/model"
	"clipstream/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) repository.IVideo {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) ListVideos(ctx context.Context) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("Comments").
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

func (r *VideoRepository) ListVideosByOwner(ctx context.Context, ownerID string) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("Comments").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

func (r *VideoRepository) GetVideo(ctx context.Context, id string) (*model.Video, error) {
	var video model.Video
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("Comments").
		First(&video, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) CreateVideo(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *VideoRepository) DeleteVideo(ctx context.Context, id, ownerID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.Video{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Video{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// AddLike is idempotent: re-liking an already liked video is a no-op.
func (r *VideoRepository) AddLike(ctx context.Context, videoID, userID string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Like{UserID: userID, VideoID: videoID}).Error
}

func (r *VideoRepository) RemoveLike(ctx context.Context, videoID, userID string) error {
	return r.db.WithContext(ctx).
		Where("video_id = ? AND user_id = ?", videoID, userID).
		Delete(&model.Like{}).Error
}

func (r *VideoRepository) ListComments(ctx context.Context, videoID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *VideoRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *VideoRepository) DeleteComment(ctx context.Context, commentID int64, userID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", commentID, userID).Delete(&model.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
