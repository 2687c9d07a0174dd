package model

import (
	"time"
)

// ShortLink represents a short link entity. Each live entry maps exactly one
// underlying media resource URI to one slug.
type ShortLink struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug        string     `json:"slug" gorm:"type:varchar(16);uniqueIndex;not null"`
	ResourceURI string     `json:"resource_uri" gorm:"type:varchar(768);uniqueIndex;not null"`
	ShortURL    string     `json:"short_url" gorm:"type:varchar(256);not null"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	ExpiresAt   *time.Time `json:"expires_at" gorm:"index"`
}

// TableName returns the table name for ShortLink
func (ShortLink) TableName() string {
	return "short_links"
}

// IsLive checks if the short link is still valid. Entries without an
// expiry never go stale.
func (sl *ShortLink) IsLive() bool {
	if sl.ExpiresAt == nil {
		return true
	}
	return time.Now().Before(*sl.ExpiresAt)
}

// GenerateRequest represents the request to generate a short link
type GenerateRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// GenerateResponse represents the response of short link generation
type GenerateResponse struct {
	Slug      string `json:"slug"`
	Shortened string `json:"shortened"`
}
