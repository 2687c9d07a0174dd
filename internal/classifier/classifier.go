package classifier

import (
	"errors"
	"regexp"

	"snaptok/internal/model"
)

// ErrNoLink is returned when the text contains no recognizable TikTok link
var ErrNoLink = errors.New("no tiktok link found")

// The three supported link families. Long form carries the numeric video
// identifier directly, short form carries an opaque redirect slug, medium
// form is the mobile URL with the numeric identifier.
var (
	longLinkRegex   = regexp.MustCompile(`(?:https?://)?(?:www\.)?tiktok\.com/@[^/\s]{1,24}/video/(\d{15,30})`)
	shortLinkRegex  = regexp.MustCompile(`(?:https?://)?\w{2}\.tiktok\.com/(\w{5,15})`)
	mediumLinkRegex = regexp.MustCompile(`(?:https?://)?m\.tiktok\.com/v/(\d{15,30})`)

	schemeRegex = regexp.MustCompile(`^https?://`)
)

// Classify scans free text for a TikTok link and returns a typed reference
// for the first pattern that matches, checked in fixed priority order:
// long, then short, then medium. Only one reference is ever returned even
// if the text contains several candidates. Returns ErrNoLink when nothing
// matches. Side-effect free.
func Classify(content string) (*model.LinkReference, error) {
	if m := longLinkRegex.FindStringSubmatch(content); m != nil {
		return newReference(model.LinkLong, m[1], m[0]), nil
	}
	if m := shortLinkRegex.FindStringSubmatch(content); m != nil {
		return newReference(model.LinkShort, m[1], m[0]), nil
	}
	if m := mediumLinkRegex.FindStringSubmatch(content); m != nil {
		return newReference(model.LinkMedium, m[1], m[0]), nil
	}
	return nil, ErrNoLink
}

// newReference builds a LinkReference, synthesizing the https scheme when
// the matched substring omitted one.
func newReference(kind model.LinkKind, rawID, matched string) *model.LinkReference {
	url := matched
	if !schemeRegex.MatchString(matched) {
		url = "https://" + matched
	}
	return &model.LinkReference{
		Kind:          kind,
		RawID:         rawID,
		NormalizedURL: url,
	}
}
