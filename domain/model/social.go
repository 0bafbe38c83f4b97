package model

import "time"

// Follow is a (follower, following) pair; its presence is the fact.
type Follow struct {
	ID          int64     `json:"id"           gorm:"primaryKey"`
	FollowerID  string    `json:"follower_id"  gorm:"size:128;uniqueIndex:uq_follow_pair"`
	FollowingID string    `json:"following_id" gorm:"size:128;uniqueIndex:uq_follow_pair;index"`
	CreatedAt   time.Time `json:"created_at"   gorm:"autoCreateTime"`
}

// ViewEvent is an append-only playback record kept in the optional Mongo
// store. The relational views counter stays authoritative.
type ViewEvent struct {
	VideoID string    `json:"video_id" bson:"video_id"`
	UserID  string    `json:"user_id"  bson:"user_id"`
	At      time.Time `json:"at"       bson:"at"`
}
