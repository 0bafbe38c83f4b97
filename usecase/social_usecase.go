package usecase

import (
	"context"
	"errors"

	"clipstream/domain/repository"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

type ISocialUsecase interface {
	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	FollowerCount(ctx context.Context, userID string) (int64, error)
}

type socialUsecase struct {
	followRepo repository.IFollow
}

func NewSocialUsecase(followRepo repository.IFollow) ISocialUsecase {
	return &socialUsecase{followRepo: followRepo}
}

func (u *socialUsecase) Follow(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return ErrSelfFollow
	}
	return u.followRepo.Follow(ctx, followerID, followingID)
}

func (u *socialUsecase) Unfollow(ctx context.Context, followerID, followingID string) error {
	return u.followRepo.Unfollow(ctx, followerID, followingID)
}

func (u *socialUsecase) FollowerCount(ctx context.Context, userID string) (int64, error) {
	return u.followRepo.CountFollowers(ctx, userID)
}
