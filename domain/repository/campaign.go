package repository

import (
	"context"

	"clipstream/domain/model"
)

type ICampaign interface {
	ListCampaigns(ctx context.Context) ([]model.Campaign, error)
	// ListActiveCampaigns returns campaigns with status Active; date-window
	// eligibility is the announcement selector's concern.
	ListActiveCampaigns(ctx context.Context) ([]model.Campaign, error)
	// GetCampaignWithVideos preloads the associated video set including
	// each video's like set.
	GetCampaignWithVideos(ctx context.Context, id string) (*model.Campaign, error)
	CreateCampaign(ctx context.Context, campaign *model.Campaign) error
	AttachVideo(ctx context.Context, campaignID, videoID string) error
	// DeactivateExpired flips past-end-date Active campaigns to Inactive
	// and reports how many rows changed.
	DeactivateExpired(ctx context.Context) (int64, error)
}
