package model

import (
	"time"
)

// UsageRecord is an append-only row written once per successful conversion.
// UserID and MessageID are nulled at write time for opted-out users.
type UsageRecord struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	GuildID   string    `json:"guild_id" gorm:"type:varchar(32);index;not null"`
	UserID    *string   `json:"user_id" gorm:"type:varchar(32)"`
	VideoID   string    `json:"video_id" gorm:"type:varchar(32);not null"`
	MessageID *string   `json:"message_id" gorm:"type:varchar(32)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for UsageRecord
func (UsageRecord) TableName() string {
	return "usage_records"
}

// OptOut is a presence-only marker: a row means usage tracking must
// exclude that user.
type OptOut struct {
	UserID    string    `json:"user_id" gorm:"type:varchar(32);primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for OptOut
func (OptOut) TableName() string {
	return "opt_outs"
}
