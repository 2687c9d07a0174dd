package model

import (
	"time"
)

// Author represents the creator block of a video or music record
type Author struct {
	Nickname   string `json:"nickname"`
	AvatarURL  string `json:"avatar_url"`
	ProfileURL string `json:"profile_url"`
}

// Statistics represents the engagement counters of a video
type Statistics struct {
	PlayCount     int64 `json:"play_count"`
	LikeCount     int64 `json:"like_count"`
	CommentCount  int64 `json:"comment_count"`
	ShareCount    int64 `json:"share_count"`
	DownloadCount int64 `json:"download_count"`
}

// VideoRecord is the normalized video detail fetched from the upstream API.
// Constructed fresh per fetch and never cached across requests.
type VideoRecord struct {
	ID          string      `json:"id"`
	Author      Author      `json:"author"`
	Statistics  Statistics  `json:"statistics"`
	CreatedAt   time.Time   `json:"created_at"`
	MediaURL    string      `json:"media_url"`
	CoverURL    string      `json:"cover_url"`
	Description string      `json:"description"`
	Hashtags    []string    `json:"hashtags"`
	MusicID     string      `json:"music_id,omitempty"`
}

// PageURL returns the mobile page URL for the video
func (v *VideoRecord) PageURL() string {
	return "https://m.tiktok.com/v/" + v.ID
}

// MusicRecord is the normalized music detail fetched from the upstream API
type MusicRecord struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     Author `json:"author"`
	CoverURL   string `json:"cover_url"`
	PlayURL    string `json:"play_url"`
	VideoCount int64  `json:"video_count"`
}

// PageURL returns the song page URL for the music record
func (m *MusicRecord) PageURL() string {
	return "https://www.tiktok.com/music/song-" + m.ID
}
