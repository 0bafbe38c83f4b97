package dto

import "time"

type CampaignCreateRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

// AnnouncementTag classifies a campaign announcement entry.
type AnnouncementTag string

const (
	AnnouncementNew     AnnouncementTag = "new"
	AnnouncementEnding  AnnouncementTag = "ending"
	AnnouncementPopular AnnouncementTag = "popular"
)

// AnnouncementEntry is one slot of the promo carousel rotation list.
type AnnouncementEntry struct {
	CampaignID   string          `json:"campaign_id"`
	Name         string          `json:"name"`
	Tag          AnnouncementTag `json:"tag"`
	EndDate      time.Time       `json:"end_date"`
	DaysLeft     int             `json:"days_left"`
	EndingLabel  string          `json:"ending_label,omitempty"` // only for tag "ending"
}
