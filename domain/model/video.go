package model

import (
	"strings"
	"time"
)

// Video is the catalog record for an uploaded clip. Tags is stored as a raw
// comma-separated column; use TagList to get the split form.
type Video struct {
	ID          string    `json:"id"          gorm:"primaryKey;size:36"`
	Title       string    `json:"title"       gorm:"size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category"    gorm:"size:64;index"`
	Tags        string    `json:"tags"        gorm:"size:512"`
	Duration    int       `json:"duration"` // seconds
	Views       int64     `json:"views"`
	OwnerID     string    `json:"owner_id"    gorm:"size:128;index"`
	CreatedAt   time.Time `json:"created_at"  gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `json:"updated_at"  gorm:"autoUpdateTime"`

	Likes    []Like    `json:"likes,omitempty"    gorm:"foreignKey:VideoID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:VideoID"`
}

// LikeCount is the cardinality of the like set. There is no stored counter;
// a nil association counts as zero.
func (v *Video) LikeCount() int {
	if v == nil {
		return 0
	}
	return len(v.Likes)
}

func (v *Video) CommentCount() int {
	if v == nil {
		return 0
	}
	return len(v.Comments)
}

// TagList splits the raw tags column on commas, trimming whitespace and
// dropping empty entries.
func (v *Video) TagList() []string {
	if v == nil || v.Tags == "" {
		return nil
	}
	parts := strings.Split(v.Tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Like is a (user, video) pair; its presence is the fact.
type Like struct {
	ID        int64     `json:"id"         gorm:"primaryKey"`
	UserID    string    `json:"user_id"    gorm:"size:128;uniqueIndex:uq_like_user_video"`
	VideoID   string    `json:"video_id"   gorm:"size:36;uniqueIndex:uq_like_user_video"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type Comment struct {
	ID        int64     `json:"id"         gorm:"primaryKey"`
	VideoID   string    `json:"video_id"   gorm:"size:36;index"`
	UserID    string    `json:"user_id"    gorm:"size:128;index"`
	Body      string    `json:"body"       gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
