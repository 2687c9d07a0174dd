package mq

import (
	"time"
)

// UsageMessage represents a usage event: one successful link conversion.
// UserID and MessageID are already nulled for opted-out users before the
// message is produced.
type UsageMessage struct {
	ID         string    `json:"id"`
	GuildID    string    `json:"guild_id"`
	UserID     string    `json:"user_id,omitempty"`
	VideoID    string    `json:"video_id"`
	MessageID  string    `json:"message_id,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}
