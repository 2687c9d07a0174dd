package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"snaptok/internal/config"
	"snaptok/internal/model"
)

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(
		&model.ShortLink{},
		&model.GuildConfig{},
		&model.UsageRecord{},
		&model.OptOut{},
	); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// SaveShortLink inserts a new short link
func (r *MySQLRepository) SaveShortLink(ctx context.Context, sl *model.ShortLink) error {
	return r.db.WithContext(ctx).Create(sl).Error
}

// ReplaceShortLink rewrites the entry for a resource URI in place: new
// slug, short URL and timestamps, same resource key. Used when an expired
// entry is regenerated.
func (r *MySQLRepository) ReplaceShortLink(ctx context.Context, sl *model.ShortLink) error {
	return r.db.WithContext(ctx).
		Model(&model.ShortLink{}).
		Where("resource_uri = ?", sl.ResourceURI).
		Updates(map[string]interface{}{
			"slug":       sl.Slug,
			"short_url":  sl.ShortURL,
			"created_at": sl.CreatedAt,
			"expires_at": sl.ExpiresAt,
		}).Error
}

// GetShortLinkBySlug retrieves a short link by slug
func (r *MySQLRepository) GetShortLinkBySlug(ctx context.Context, slug string) (*model.ShortLink, error) {
	var sl model.ShortLink
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&sl).Error
	if err != nil {
		return nil, err
	}
	return &sl, nil
}

// GetShortLinkByResource retrieves a short link by resource URI (the
// dedup key: at most one live entry per distinct resource)
func (r *MySQLRepository) GetShortLinkByResource(ctx context.Context, resourceURI string) (*model.ShortLink, error) {
	var sl model.ShortLink
	err := r.db.WithContext(ctx).
		Where("resource_uri = ?", resourceURI).
		First(&sl).Error
	if err != nil {
		return nil, err
	}
	return &sl, nil
}

// CheckExistsBySlug checks if a slug is already taken
func (r *MySQLRepository) CheckExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ShortLink{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

// GetGuildConfig retrieves the config row for a guild
func (r *MySQLRepository) GetGuildConfig(ctx context.Context, guildID string) (*model.GuildConfig, error) {
	var gc model.GuildConfig
	err := r.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		First(&gc).Error
	if err != nil {
		return nil, err
	}
	return &gc, nil
}

// CreateGuildConfig inserts a new guild config row
func (r *MySQLRepository) CreateGuildConfig(ctx context.Context, gc *model.GuildConfig) error {
	return r.db.WithContext(ctx).Create(gc).Error
}

// UpdateGuildConfig applies a partial column update to a guild config row
func (r *MySQLRepository) UpdateGuildConfig(ctx context.Context, guildID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.GuildConfig{}).
		Where("guild_id = ?", guildID).
		Updates(fields).Error
}

// SaveUsageRecord appends a usage record
func (r *MySQLRepository) SaveUsageRecord(ctx context.Context, rec *model.UsageRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// IsOptedOut checks if a user has opted out of usage tracking
func (r *MySQLRepository) IsOptedOut(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.OptOut{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

// SetOptOut inserts or removes the opt-out marker for a user
func (r *MySQLRepository) SetOptOut(ctx context.Context, userID string, optedOut bool) error {
	if optedOut {
		err := r.db.WithContext(ctx).Create(&model.OptOut{UserID: userID}).Error
		if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.OptOut{}).Error
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
