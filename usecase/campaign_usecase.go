package usecase

import (
	"context"
	"errors"
	"time"

	"clipstream/domain/dto"
	"clipstream/domain/model"
	"clipstream/domain/repository"

	"github.com/google/uuid"
)

var ErrInvalidDateRange = errors.New("end_date must not be before start_date")

type ICampaignUsecase interface {
	ListCampaigns(ctx context.Context) ([]model.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*model.Campaign, error)
	CreateCampaign(ctx context.Context, req dto.CampaignCreateRequest) (*model.Campaign, error)
	AttachVideo(ctx context.Context, campaignID, videoID string) error
	// Leaderboard ranks a campaign's associated videos; no truncation.
	Leaderboard(ctx context.Context, campaignID string, opts RankOptions) ([]dto.VideoView, error)
	// UpNext is the compact top-10 cut of the likes_desc leaderboard.
	UpNext(ctx context.Context, campaignID string) ([]dto.VideoView, error)
	// Announcements derives the carousel rotation list for "now".
	Announcements(ctx context.Context, now time.Time) ([]dto.AnnouncementEntry, error)
}

type campaignUsecase struct {
	campaignRepo   repository.ICampaign
	endingSoonDays int
}

func NewCampaignUsecase(campaignRepo repository.ICampaign, endingSoonDays int) ICampaignUsecase {
	if endingSoonDays <= 0 {
		endingSoonDays = DefaultEndingSoonDays
	}
	return &campaignUsecase{campaignRepo: campaignRepo, endingSoonDays: endingSoonDays}
}

func (u *campaignUsecase) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	return u.campaignRepo.ListCampaigns(ctx)
}

func (u *campaignUsecase) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	return u.campaignRepo.GetCampaignWithVideos(ctx, id)
}

func (u *campaignUsecase) CreateCampaign(ctx context.Context, req dto.CampaignCreateRequest) (*model.Campaign, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDateRange
	}
	campaign := &model.Campaign{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      model.CampaignStatusActive,
	}
	if err := u.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (u *campaignUsecase) AttachVideo(ctx context.Context, campaignID, videoID string) error {
	return u.campaignRepo.AttachVideo(ctx, campaignID, videoID)
}

func (u *campaignUsecase) Leaderboard(ctx context.Context, campaignID string, opts RankOptions) ([]dto.VideoView, error) {
	campaign, err := u.campaignRepo.GetCampaignWithVideos(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	ranked, err := RankLeaderboard(campaign.Videos, opts)
	if err != nil {
		return nil, err
	}
	return toVideoViews(ranked, ""), nil
}

func (u *campaignUsecase) UpNext(ctx context.Context, campaignID string) ([]dto.VideoView, error) {
	campaign, err := u.campaignRepo.GetCampaignWithVideos(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	ranked, err := RankLeaderboard(campaign.Videos, RankOptions{Sort: SortLikesDesc})
	if err != nil {
		return nil, err
	}
	return toVideoViews(TopN(ranked, 10), ""), nil
}

func (u *campaignUsecase) Announcements(ctx context.Context, now time.Time) ([]dto.AnnouncementEntry, error) {
	campaigns, err := u.campaignRepo.ListActiveCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	return SelectAnnouncements(campaigns, now, u.endingSoonDays), nil
}
