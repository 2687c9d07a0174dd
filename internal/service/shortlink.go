package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"snaptok/internal/model"
	"snaptok/internal/repository"
	"snaptok/internal/slug"
)

var (
	// ErrInvalidResource is returned when the resource URI is empty
	ErrInvalidResource = errors.New("invalid resource URI")
	// ErrShortLinkNotFound is returned when no live entry exists for a slug
	ErrShortLinkNotFound = errors.New("short link not found")
	// ErrShortLinkExpired is returned when the entry for a slug has expired
	ErrShortLinkExpired = errors.New("short link has expired")
	// ErrSlugSpaceExhausted is returned when slug generation keeps
	// colliding past the retry cap. With 62^8 slugs this indicates a
	// misconfigured deployment, not bad luck.
	ErrSlugSpaceExhausted = errors.New("could not find a free slug")
)

// LocalShortener is the self-hosted ShortURLStore variant: slugs are
// generated locally, entries never expire, and dedup by resource URI is
// permanent. The HTTP redirect handler serves the slugs.
type LocalShortener struct {
	slugGen    *slug.Generator
	mysqlRepo  MySQLRepositoryInterface
	redisRepo  RedisRepositoryInterface
	bloomSvc   BloomServiceInterface
	domain     string
	maxRetries int
}

// NewLocalShortener creates a LocalShortener
func NewLocalShortener(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	bloomSvc BloomServiceInterface,
	domain string,
	maxRetries int,
) *LocalShortener {
	if maxRetries <= 0 {
		maxRetries = 100
	}
	return &LocalShortener{
		slugGen:    slug.NewGenerator(),
		mysqlRepo:  mysqlRepo,
		redisRepo:  redisRepo,
		bloomSvc:   bloomSvc,
		domain:     domain,
		maxRetries: maxRetries,
	}
}

// GetOrCreate returns the live short link for a resource URI, creating one
// on first request. Repeat calls for the same resource return the existing
// entry unchanged.
func (s *LocalShortener) GetOrCreate(ctx context.Context, resourceURI string) (*model.ShortLink, error) {
	if resourceURI == "" {
		return nil, ErrInvalidResource
	}

	// Check cache first
	if cachedURL, err := s.redisRepo.GetShortURL(ctx, resourceURI); err == nil && cachedURL != "" {
		if sl, err := s.mysqlRepo.GetShortLinkByResource(ctx, resourceURI); err == nil && sl.IsLive() {
			return sl, nil
		}
	}

	// Check if the resource already has an entry
	if existing, err := s.mysqlRepo.GetShortLinkByResource(ctx, resourceURI); err == nil {
		if existing.IsLive() {
			s.cache(ctx, existing)
			return existing, nil
		}
		// Stale entry: regenerate in place, same resource key
		return s.regenerate(ctx, existing)
	}

	freeSlug, err := s.findFreeSlug(ctx)
	if err != nil {
		return nil, err
	}

	sl := &model.ShortLink{
		Slug:        freeSlug,
		ResourceURI: resourceURI,
		ShortURL:    s.shortURL(freeSlug),
		CreatedAt:   time.Now(),
	}

	if err := s.mysqlRepo.SaveShortLink(ctx, sl); err != nil {
		log.Error().Err(err).Str("slug", freeSlug).Msg("Failed to save short link")
		return nil, fmt.Errorf("failed to save short link: %w", err)
	}

	s.cache(ctx, sl)

	if err := s.bloomSvc.Add(ctx, freeSlug); err != nil {
		log.Warn().Err(err).Str("slug", freeSlug).Msg("Failed to add to Bloom Filter")
	}

	return sl, nil
}

// Resolve returns the live entry for a slug, for the redirect handler
func (s *LocalShortener) Resolve(ctx context.Context, slugVal string) (*model.ShortLink, error) {
	// Try cache first
	if target, err := s.redisRepo.GetSlugTarget(ctx, slugVal); err == nil && target != "" {
		return &model.ShortLink{
			Slug:        slugVal,
			ResourceURI: target,
			ShortURL:    s.shortURL(slugVal),
		}, nil
	}

	sl, err := s.mysqlRepo.GetShortLinkBySlug(ctx, slugVal)
	if err != nil {
		return nil, ErrShortLinkNotFound
	}
	if !sl.IsLive() {
		return nil, ErrShortLinkExpired
	}

	s.cache(ctx, sl)

	return sl, nil
}

// regenerate rewrites an expired entry in place: fresh slug, fresh
// timestamps, same resource URI.
func (s *LocalShortener) regenerate(ctx context.Context, stale *model.ShortLink) (*model.ShortLink, error) {
	freeSlug, err := s.findFreeSlug(ctx)
	if err != nil {
		return nil, err
	}

	sl := &model.ShortLink{
		Slug:        freeSlug,
		ResourceURI: stale.ResourceURI,
		ShortURL:    s.shortURL(freeSlug),
		CreatedAt:   time.Now(),
	}

	if err := s.mysqlRepo.ReplaceShortLink(ctx, sl); err != nil {
		return nil, fmt.Errorf("failed to replace short link: %w", err)
	}

	s.cache(ctx, sl)

	if err := s.bloomSvc.Add(ctx, freeSlug); err != nil {
		log.Warn().Err(err).Str("slug", freeSlug).Msg("Failed to add to Bloom Filter")
	}

	return sl, nil
}

// findFreeSlug draws random slugs until one is unused. Collisions are
// recovered transparently; running past the retry cap means the slug
// space is effectively full and is reported as a hard error.
func (s *LocalShortener) findFreeSlug(ctx context.Context) (string, error) {
	for i := 0; i < s.maxRetries; i++ {
		candidate, err := s.slugGen.Generate()
		if err != nil {
			return "", err
		}

		// Bloom Filter first (fast check), then DB to be sure
		exists, err := s.bloomSvc.Exists(ctx, candidate)
		if err == nil && exists {
			log.Debug().Str("slug", candidate).Msg("Slug collision, regenerating")
			continue
		}

		taken, err := s.mysqlRepo.CheckExistsBySlug(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug uniqueness: %w", err)
		}
		if !taken {
			return candidate, nil
		}

		log.Debug().Str("slug", candidate).Msg("Slug collision, regenerating")
	}

	return "", ErrSlugSpaceExhausted
}

func (s *LocalShortener) cache(ctx context.Context, sl *model.ShortLink) {
	if err := s.redisRepo.SaveShortURL(ctx, sl.ResourceURI, sl.ShortURL, repository.ShortURLCacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", sl.Slug).Msg("Failed to cache short URL")
	}
	if err := s.redisRepo.SaveSlugTarget(ctx, sl.Slug, sl.ResourceURI, repository.ShortURLCacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", sl.Slug).Msg("Failed to cache slug target")
	}
}

func (s *LocalShortener) shortURL(slugVal string) string {
	return fmt.Sprintf("%s/%s", s.domain, slugVal)
}
