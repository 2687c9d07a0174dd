package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"snaptok/internal/model"
	"snaptok/internal/repository"
)

// ErrShortenerUnavailable is returned when the external shortening
// service rejects or fails the request
var ErrShortenerUnavailable = errors.New("shortening service unavailable")

// playPath is the media path whose query string is stripped down to the
// video_id parameter before shortening. The other parameters are CDN
// noise and only inflate the stored URL.
const playPath = "/aweme/v1/play/"

// RemoteShortener is the ShortURLStore variant backed by an external
// shortening service. Entries carry a TTL; an expired entry is replaced
// with a fresh slug for the same resource on next request.
type RemoteShortener struct {
	endpoint   string
	authToken  string
	ttl        time.Duration
	mysqlRepo  MySQLRepositoryInterface
	redisRepo  RedisRepositoryInterface
	httpClient *http.Client
}

// NewRemoteShortener creates a RemoteShortener
func NewRemoteShortener(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	endpoint, authToken string,
	ttlDays int,
) *RemoteShortener {
	if ttlDays <= 0 {
		ttlDays = 3
	}
	return &RemoteShortener{
		endpoint:  endpoint,
		authToken: authToken,
		ttl:       time.Duration(ttlDays) * 24 * time.Hour,
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetOrCreate returns the live short link for a resource URI. Within the
// validity window the existing entry is returned unchanged, with no call
// to the shortening service; after expiry the entry is regenerated in
// place under the same resource key.
func (s *RemoteShortener) GetOrCreate(ctx context.Context, resourceURI string) (*model.ShortLink, error) {
	if resourceURI == "" {
		return nil, ErrInvalidResource
	}

	resourceURI = NormalizeResourceURI(resourceURI)

	// Check cache first
	if cachedURL, err := s.redisRepo.GetShortURL(ctx, resourceURI); err == nil && cachedURL != "" {
		if sl, err := s.mysqlRepo.GetShortLinkByResource(ctx, resourceURI); err == nil && sl.IsLive() {
			return sl, nil
		}
		// Cache outlived the entry, drop it
		if err := s.redisRepo.DeleteShortURL(ctx, resourceURI); err != nil {
			log.Warn().Err(err).Msg("Failed to evict stale short URL from cache")
		}
	}

	existing, err := s.mysqlRepo.GetShortLinkByResource(ctx, resourceURI)
	if err == nil && existing.IsLive() {
		s.cache(ctx, existing)
		return existing, nil
	}

	shortened, err := s.shorten(ctx, resourceURI)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)
	sl := &model.ShortLink{
		Slug:        shortened.Slug,
		ResourceURI: resourceURI,
		ShortURL:    shortened.Shortened,
		CreatedAt:   now,
		ExpiresAt:   &expiresAt,
	}

	if existing != nil {
		// Same resource key, fresh slug and timestamps
		err = s.mysqlRepo.ReplaceShortLink(ctx, sl)
	} else {
		err = s.mysqlRepo.SaveShortLink(ctx, sl)
	}
	if err != nil {
		log.Error().Err(err).Str("slug", sl.Slug).Msg("Failed to persist short link")
		return nil, fmt.Errorf("failed to persist short link: %w", err)
	}

	s.cache(ctx, sl)

	return sl, nil
}

// shorten calls the external service: POST /links {url} with the static
// auth header, expecting {slug, shortened}.
func (s *RemoteShortener) shorten(ctx context.Context, resourceURI string) (*model.GenerateResponse, error) {
	payload, err := json.Marshal(map[string]string{"url": resourceURI})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shorten request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build shorten request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.authToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call shortening service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error().Int("status", resp.StatusCode).Msg("Shortening service rejected request")
		return nil, ErrShortenerUnavailable
	}

	var body model.GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode shorten response: %w", err)
	}
	if body.Slug == "" || body.Shortened == "" {
		return nil, ErrShortenerUnavailable
	}

	return &body, nil
}

func (s *RemoteShortener) cache(ctx context.Context, sl *model.ShortLink) {
	ttl := repository.ShortURLCacheTTL
	if sl.ExpiresAt != nil {
		if remaining := time.Until(*sl.ExpiresAt); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl <= 0 {
		return
	}
	if err := s.redisRepo.SaveShortURL(ctx, sl.ResourceURI, sl.ShortURL, ttl); err != nil {
		log.Warn().Err(err).Str("slug", sl.Slug).Msg("Failed to cache short URL")
	}
}

// NormalizeResourceURI strips a media play URL down to its video_id query
// parameter. URLs on other paths pass through untouched, as do URLs that
// do not parse or lack the parameter.
func NormalizeResourceURI(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.Path != playPath {
		return raw
	}

	videoID := u.Query().Get("video_id")
	if videoID == "" {
		return raw
	}

	return fmt.Sprintf("%s://%s%s?video_id=%s", u.Scheme, u.Host, playPath, videoID)
}
