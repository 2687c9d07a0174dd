package repository

import (
	"context"
	"time"

	"snaptok/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	GetDB() interface{}
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
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	GetClient() interface{}
	SaveShortURL(ctx context.Context, resourceURI, shortURL string, ttl time.Duration) error
	GetShortURL(ctx context.Context, resourceURI string) (string, error)
	DeleteShortURL(ctx context.Context, resourceURI string) error
	SaveSlugTarget(ctx context.Context, slug, resourceURI string, ttl time.Duration) error
	GetSlugTarget(ctx context.Context, slug string) (string, error)
	Close() error
}
