package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clipstream/usecase"
)

func TestSocialUsecase_Follow(t *testing.T) {
	mockFollows := new(MockFollowRepository)
	mockFollows.On("Follow", mock.Anything, "pat", "nadia").Return(nil)
	uc := usecase.NewSocialUsecase(mockFollows)

	err := uc.Follow(context.Background(), "pat", "nadia")
	require.NoError(t, err)
	mockFollows.AssertExpectations(t)
}

func TestSocialUsecase_Follow_RejectsSelf(t *testing.T) {
	mockFollows := new(MockFollowRepository)
	uc := usecase.NewSocialUsecase(mockFollows)

	err := uc.Follow(context.Background(), "pat", "pat")
	assert.ErrorIs(t, err, usecase.ErrSelfFollow)
	mockFollows.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
}

func TestSocialUsecase_FollowerCount(t *testing.T) {
	mockFollows := new(MockFollowRepository)
	mockFollows.On("CountFollowers", mock.Anything, "nadia").Return(int64(3), nil)
	uc := usecase.NewSocialUsecase(mockFollows)

	count, err := uc.FollowerCount(context.Background(), "nadia")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
