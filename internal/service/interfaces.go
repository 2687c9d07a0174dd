package service

import (
	"context"
	"time"

	"snaptok/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations (for testing)
type MySQLRepositoryInterface interface {
	SaveShortLink(ctx context.Context, sl *model.ShortLink) error
	ReplaceShortLink(ctx context.Context, sl *model.ShortLink) error
	GetShortLinkBySlug(ctx context.Context, slug string) (*model.ShortLink, error)
	GetShortLinkByResource(ctx context.Context, resourceURI string) (*model.ShortLink, error)
	CheckExistsBySlug(ctx context.Context, slug string) (bool, error)
	GetGuildConfig(ctx context.Context, guildID string) (*model.GuildConfig, error)
	CreateGuildConfig(ctx context.Context, gc *model.GuildConfig) error
	UpdateGuildConfig(ctx context.Context, guildID string, fields map[string]interface{}) error
	SaveUsageRecord(ctx context.Context, rec *model.UsageRecord) error
	IsOptedOut(ctx context.Context, userID string) (bool, error)
	SetOptOut(ctx context.Context, userID string, optedOut bool) error
}

// RedisRepositoryInterface defines the interface for cache operations (for testing)
type RedisRepositoryInterface interface {
	SaveShortURL(ctx context.Context, resourceURI, shortURL string, ttl time.Duration) error
	GetShortURL(ctx context.Context, resourceURI string) (string, error)
	DeleteShortURL(ctx context.Context, resourceURI string) error
	SaveSlugTarget(ctx context.Context, slug, resourceURI string, ttl time.Duration) error
	GetSlugTarget(ctx context.Context, slug string) (string, error)
}

// BloomServiceInterface defines the interface for Bloom Filter operations (for testing)
type BloomServiceInterface interface {
	Add(ctx context.Context, slug string) error
	Exists(ctx context.Context, slug string) (bool, error)
	IsAvailable(ctx context.Context) bool
}

// ShortURLStore maps a media resource URI to a short shareable URL,
// deduplicating by resource. Implementations: LocalShortener (self-hosted
// slugs, permanent entries) and RemoteShortener (external service,
// TTL-based expiry). Both guarantee at most one live short URL per
// distinct resource and no slug shared between live entries.
type ShortURLStore interface {
	GetOrCreate(ctx context.Context, resourceURI string) (*model.ShortLink, error)
}

// GuildConfigServiceInterface defines per-guild preference operations
type GuildConfigServiceInterface interface {
	Get(ctx context.Context, guildID string) (*model.GuildConfig, error)
	Update(ctx context.Context, guildID string, update *model.GuildConfigUpdate) (*model.GuildConfig, error)
}

// UsageServiceInterface defines usage tracking operations
type UsageServiceInterface interface {
	Record(ctx context.Context, guildID, userID, videoID, messageID string) error
	SetOptOut(ctx context.Context, userID string, optedOut bool) error
	IsOptedOut(ctx context.Context, userID string) (bool, error)
}
