package model

import "time"

const (
	CampaignStatusActive   = "Active"
	CampaignStatusInactive = "Inactive"
)

// Campaign is a time-boxed challenge associating a set of videos for ranking.
// EndDate >= StartDate is enforced at creation.
type Campaign struct {
	ID          string    `json:"id"          gorm:"primaryKey;size:36"`
	Name        string    `json:"name"        gorm:"size:255"`
	Description string    `json:"description" gorm:"type:text"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"    gorm:"index"`
	Status      string    `json:"status"      gorm:"size:16;index"`
	CreatedAt   time.Time `json:"created_at"  gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at"  gorm:"autoUpdateTime"`

	Videos []Video `json:"videos,omitempty" gorm:"many2many:campaign_videos"`
}

// IsActive reports whether the campaign is eligible for announcements:
// status Active and not yet past its end date.
func (c *Campaign) IsActive(now time.Time) bool {
	return c.Status == CampaignStatusActive && !c.EndDate.Before(now)
}
