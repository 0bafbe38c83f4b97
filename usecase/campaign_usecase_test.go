package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clipstream/domain/dto"
	"clipstream/domain/model"
	"clipstream/usecase"
)

type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) ListActiveCampaigns(ctx context.Context) ([]model.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) GetCampaignWithVideos(ctx context.Context, id string) (*model.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) CreateCampaign(ctx context.Context, campaign *model.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) AttachVideo(ctx context.Context, campaignID, videoID string) error {
	args := m.Called(ctx, campaignID, videoID)
	return args.Error(0)
}

func (m *MockCampaignRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestCampaignUsecase_CreateCampaign_RejectsInvertedDates(t *testing.T) {
	mockRepo := new(MockCampaignRepository)
	uc := usecase.NewCampaignUsecase(mockRepo, 3)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := uc.CreateCampaign(context.Background(), dto.CampaignCreateRequest{
		Name:      "Backwards",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, -1),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrInvalidDateRange)
	mockRepo.AssertNotCalled(t, "CreateCampaign", mock.Anything, mock.Anything)
}

func TestCampaignUsecase_CreateCampaign_DefaultsToActive(t *testing.T) {
	mockRepo := new(MockCampaignRepository)
	mockRepo.On("CreateCampaign", mock.Anything, mock.Anything).Return(nil)
	uc := usecase.NewCampaignUsecase(mockRepo, 3)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	campaign, err := uc.CreateCampaign(context.Background(), dto.CampaignCreateRequest{
		Name:      "Spring Jam",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 14),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, campaign.ID)
	assert.Equal(t, model.CampaignStatusActive, campaign.Status)
	mockRepo.AssertExpectations(t)
}

func TestCampaignUsecase_Leaderboard_PropagatesInvalidSort(t *testing.T) {
	mockRepo := new(MockCampaignRepository)
	mockRepo.On("GetCampaignWithVideos", mock.Anything, "c1").Return(&model.Campaign{
		ID:     "c1",
		Videos: []model.Video{videoWithLikes("a", "Alpha", 1)},
	}, nil)
	uc := usecase.NewCampaignUsecase(mockRepo, 3)

	_, err := uc.Leaderboard(context.Background(), "c1", usecase.RankOptions{Sort: "bogus"})
	assert.ErrorIs(t, err, usecase.ErrInvalidSortMode)
}

func TestCampaignUsecase_UpNext_CapsAtTen(t *testing.T) {
	videos := make([]model.Video, 0, 12)
	for i := 0; i < 12; i++ {
		videos = append(videos, videoWithLikes(string(rune('a'+i)), "Video", i))
	}
	mockRepo := new(MockCampaignRepository)
	mockRepo.On("GetCampaignWithVideos", mock.Anything, "c1").Return(&model.Campaign{
		ID:     "c1",
		Videos: videos,
	}, nil)
	uc := usecase.NewCampaignUsecase(mockRepo, 3)

	out, err := uc.UpNext(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, out, 10)
	assert.Equal(t, 11, out[0].LikeCount)
}

func TestCampaignUsecase_Announcements(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockRepo := new(MockCampaignRepository)
	mockRepo.On("ListActiveCampaigns", mock.Anything).Return([]model.Campaign{
		{ID: "c1", Name: "Only", Status: model.CampaignStatusActive, CreatedAt: now.AddDate(0, 0, -5), EndDate: now.AddDate(0, 0, 20)},
	}, nil)
	uc := usecase.NewCampaignUsecase(mockRepo, 3)

	entries, err := uc.Announcements(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, dto.AnnouncementNew, entries[0].Tag)
	mockRepo.AssertExpectations(t)
}
