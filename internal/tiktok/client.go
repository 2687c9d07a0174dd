package tiktok

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"snaptok/internal/classifier"
	"snaptok/internal/model"
)

var (
	// ErrNoIdentifier is returned when a short link cannot be resolved to
	// a canonical numeric video identifier
	ErrNoIdentifier = errors.New("no video identifier found")
	// ErrMusicUnavailable is returned when the music detail endpoint
	// reports the audio as removed or otherwise unavailable
	ErrMusicUnavailable = errors.New("music not available")
)

const (
	// defaultCDNIndex selects the third entry of the play address list.
	// The upstream orders its mirrors, and index 2 is the default CDN.
	defaultCDNIndex = 2

	// statusMusicRemoved is the upstream status code for taken-down audio
	statusMusicRemoved = 10218
)

// Client talks to the upstream TikTok metadata API
type Client struct {
	videoBase  string
	musicBase  string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a Client. timeout applies to every request; redirects
// are never followed, the resolver reads Location headers directly.
func NewClient(videoBase, musicBase, userAgent string, timeout time.Duration) *Client {
	return &Client{
		videoBase: videoBase,
		musicBase: musicBase,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// ResolveVideoID follows a short link's redirect to obtain the canonical
// numeric video identifier. A missing or unrecognizable Location header
// yields ErrNoIdentifier; callers must treat that as "cannot process this
// link" and abort without side effects.
func (c *Client) ResolveVideoID(ctx context.Context, shortURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, shortURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build resolve request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to resolve short link: %w", err)
	}
	defer resp.Body.Close()

	location := resp.Header.Get("Location")
	if location == "" {
		return "", ErrNoIdentifier
	}

	ref, err := classifier.Classify(location)
	if err != nil {
		log.Debug().Str("location", location).Msg("Redirect target matches no known pattern")
		return "", ErrNoIdentifier
	}
	if ref.Kind == model.LinkShort {
		// A redirect to another short link cannot carry the numeric ID
		return "", ErrNoIdentifier
	}

	return ref.RawID, nil
}

// FetchVideo retrieves and normalizes the video detail for a canonical ID
func (c *Client) FetchVideo(ctx context.Context, videoID string) (*model.VideoRecord, error) {
	endpoint := fmt.Sprintf("%s/aweme/v1/aweme/detail/?aweme_id=%s", c.videoBase, url.QueryEscape(videoID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build video request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video detail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("video detail returned status %d", resp.StatusCode)
	}

	var body awemeDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode video detail: %w", err)
	}

	return body.AwemeDetail.toRecord()
}

// FetchMusic retrieves and normalizes the music detail for a music ID.
// Returns ErrMusicUnavailable on a non-200 status or on the upstream
// removed sentinel; callers render the video card without an audio section
// in that case.
func (c *Client) FetchMusic(ctx context.Context, musicID string) (*model.MusicRecord, error) {
	endpoint := fmt.Sprintf("%s/api/music/detail/?language=en&musicId=%s", c.musicBase, url.QueryEscape(musicID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build music request: %w", err)
	}
	// The music endpoint rejects default client User-Agents
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch music detail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Str("music_id", musicID).Msg("Music detail not available")
		return nil, ErrMusicUnavailable
	}

	var body musicDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode music detail: %w", err)
	}

	if body.StatusCode == statusMusicRemoved {
		return nil, ErrMusicUnavailable
	}

	return body.toRecord(), nil
}

// Upstream JSON shapes, validated once here at the API boundary.

type urlList struct {
	URLList []string `json:"url_list"`
}

func (u urlList) first() string {
	if len(u.URLList) == 0 {
		return ""
	}
	return u.URLList[0]
}

type awemeDetailResponse struct {
	AwemeDetail awemeDetail `json:"aweme_detail"`
}

type awemeDetail struct {
	AwemeID    string `json:"aweme_id"`
	Desc       string `json:"desc"`
	CreateTime int64  `json:"create_time"`
	Author     struct {
		Nickname    string  `json:"nickname"`
		UniqueID    string  `json:"unique_id"`
		AvatarThumb urlList `json:"avatar_thumb"`
	} `json:"author"`
	Statistics struct {
		PlayCount     int64 `json:"play_count"`
		DiggCount     int64 `json:"digg_count"`
		CommentCount  int64 `json:"comment_count"`
		ShareCount    int64 `json:"share_count"`
		DownloadCount int64 `json:"download_count"`
	} `json:"statistics"`
	Video struct {
		PlayAddr    urlList `json:"play_addr"`
		OriginCover urlList `json:"origin_cover"`
	} `json:"video"`
	Music struct {
		ID int64 `json:"id"`
	} `json:"music"`
	TextExtra []struct {
		HashtagName string `json:"hashtag_name"`
	} `json:"text_extra"`
}

func (d awemeDetail) toRecord() (*model.VideoRecord, error) {
	if d.AwemeID == "" {
		return nil, fmt.Errorf("video detail missing aweme_id")
	}
	if len(d.Video.PlayAddr.URLList) <= defaultCDNIndex {
		return nil, fmt.Errorf("video detail has %d play addresses, need at least %d",
			len(d.Video.PlayAddr.URLList), defaultCDNIndex+1)
	}

	var hashtags []string
	for _, extra := range d.TextExtra {
		if extra.HashtagName != "" {
			hashtags = append(hashtags, extra.HashtagName)
		}
	}

	rec := &model.VideoRecord{
		ID: d.AwemeID,
		Author: model.Author{
			Nickname:   d.Author.Nickname,
			AvatarURL:  d.Author.AvatarThumb.first(),
			ProfileURL: "https://www.tiktok.com/@" + d.Author.UniqueID,
		},
		Statistics: model.Statistics{
			PlayCount:     d.Statistics.PlayCount,
			LikeCount:     d.Statistics.DiggCount,
			CommentCount:  d.Statistics.CommentCount,
			ShareCount:    d.Statistics.ShareCount,
			DownloadCount: d.Statistics.DownloadCount,
		},
		CreatedAt:   time.Unix(d.CreateTime, 0),
		MediaURL:    d.Video.PlayAddr.URLList[defaultCDNIndex],
		CoverURL:    d.Video.OriginCover.first(),
		Description: d.Desc,
		Hashtags:    hashtags,
	}
	if d.Music.ID != 0 {
		rec.MusicID = strconv.FormatInt(d.Music.ID, 10)
	}
	return rec, nil
}

type musicDetailResponse struct {
	StatusCode int `json:"statusCode"`
	MusicInfo  struct {
		Music struct {
			ID         int64  `json:"id"`
			Title      string `json:"title"`
			PlayURL    string `json:"playUrl"`
			CoverLarge string `json:"coverLarge"`
		} `json:"music"`
		Author struct {
			ID          int64  `json:"id"`
			Nickname    string `json:"nickname"`
			UniqueID    string `json:"uniqueId"`
			AvatarThumb string `json:"avatarThumb"`
		} `json:"author"`
		Stats struct {
			VideoCount int64 `json:"videoCount"`
		} `json:"stats"`
	} `json:"musicInfo"`
}

func (m musicDetailResponse) toRecord() *model.MusicRecord {
	return &model.MusicRecord{
		ID:    strconv.FormatInt(m.MusicInfo.Music.ID, 10),
		Title: m.MusicInfo.Music.Title,
		Author: model.Author{
			Nickname:   m.MusicInfo.Author.Nickname,
			AvatarURL:  m.MusicInfo.Author.AvatarThumb,
			ProfileURL: "https://www.tiktok.com/@" + m.MusicInfo.Author.UniqueID,
		},
		CoverURL:   m.MusicInfo.Music.CoverLarge,
		PlayURL:    m.MusicInfo.Music.PlayURL,
		VideoCount: m.MusicInfo.Stats.VideoCount,
	}
}
