package persistence

import (
	"context"
	"errors"
	"time"

	"clipstream/domain/model"
	"clipstream/domain/repository"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) repository.ICampaign {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	var campaigns []model.Campaign
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepository) ListActiveCampaigns(ctx context.Context) ([]model.Campaign, error) {
	var campaigns []model.Campaign
	err := r.db.WithContext(ctx).
		Where("status = ?", model.CampaignStatusActive).
		Order("created_at DESC").
		Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepository) GetCampaignWithVideos(ctx context.Context, id string) (*model.Campaign, error) {
	var campaign model.Campaign
	err := r.db.WithContext(ctx).
		Preload("Videos").
		Preload("Videos.Likes").
		First(&campaign, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *CampaignRepository) CreateCampaign(ctx context.Context, campaign *model.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *CampaignRepository) AttachVideo(ctx context.Context, campaignID, videoID string) error {
	campaign := model.Campaign{ID: campaignID}
	return r.db.WithContext(ctx).
		Model(&campaign).
		Association("Videos").
		Append(&model.Video{ID: videoID})
}

func (r *CampaignRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Campaign{}).
		Where("status = ? AND end_date < ?", model.CampaignStatusActive, time.Now().UTC()).
		Update("status", model.CampaignStatusInactive)
	return res.RowsAffected, res.Error
}
