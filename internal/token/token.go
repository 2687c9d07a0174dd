// Package token encodes and decodes the opaque strings carried by UI
// controls. Tokens are generated only by this system, so anything that
// does not decode is treated as stale or tampered and ignored.
package token

import (
	"strings"
)

// Action identifies the action family a token belongs to
type Action int

const (
	// ActionIgnore means the token is unrecognized and must be dropped
	ActionIgnore Action = iota
	// ActionInfo requests the statistics card for a video
	ActionInfo
	// ActionAudio requests the music card for a music ID
	ActionAudio
	// ActionDelete requests deletion of the bot's reply message
	ActionDelete
)

// String returns a human readable name for the action
func (a Action) String() string {
	switch a {
	case ActionInfo:
		return "info"
	case ActionAudio:
		return "audio"
	case ActionDelete:
		return "delete"
	default:
		return "ignore"
	}
}

// Token prefixes. The first characters of the opaque string identify the
// action family, the remainder is the raw entity ID.
const (
	infoPrefix   = "v_id"
	audioPrefix  = "m_id"
	deletePrefix = "delete"
)

// Token is the decoded form of an opaque control string. For ActionInfo
// the ID is a video ID, for ActionAudio a music ID, for ActionDelete the
// ID of the original author (empty when the author must be derived from
// the referenced message).
type Token struct {
	Action Action
	ID     string
}

// EncodeInfo builds the opaque string for an info control on a video
func EncodeInfo(videoID string) string {
	return infoPrefix + videoID
}

// EncodeAudio builds the opaque string for an audio control on a music ID
func EncodeAudio(musicID string) string {
	return audioPrefix + musicID
}

// EncodeDelete builds the opaque string for a delete control. authorID may
// be empty, in which case authorization falls back to the referenced
// message's author.
func EncodeDelete(authorID string) string {
	return deletePrefix + authorID
}

// Decode parses an opaque control string. Unrecognized prefixes decode to
// ActionIgnore rather than an error.
func Decode(raw string) Token {
	switch {
	case strings.HasPrefix(raw, infoPrefix):
		return Token{Action: ActionInfo, ID: strings.TrimPrefix(raw, infoPrefix)}
	case strings.HasPrefix(raw, audioPrefix):
		return Token{Action: ActionAudio, ID: strings.TrimPrefix(raw, audioPrefix)}
	case strings.HasPrefix(raw, deletePrefix):
		return Token{Action: ActionDelete, ID: strings.TrimPrefix(raw, deletePrefix)}
	default:
		return Token{Action: ActionIgnore}
	}
}
