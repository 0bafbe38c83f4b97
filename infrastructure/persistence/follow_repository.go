package persistence

import (
	"context"

	"clipstream/domain/model"
	"clipstream/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) repository.IFollow {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Follow(ctx context.Context, followerID, followingID string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Follow{FollowerID: followerID, FollowingID: followingID}).Error
}

func (r *FollowRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{}).Error
}

func (r *FollowRepository) ListAll(ctx context.Context) ([]model.Follow, error) {
	var follows []model.Follow
	err := r.db.WithContext(ctx).Find(&follows).Error
	return follows, err
}

func (r *FollowRepository) ListFollowsFor(ctx context.Context, followerID string) ([]model.Follow, error) {
	var follows []model.Follow
	err := r.db.WithContext(ctx).Where("follower_id = ?", followerID).Find(&follows).Error
	return follows, err
}

func (r *FollowRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("following_id = ?", userID).
		Count(&n).Error
	return n, err
}
