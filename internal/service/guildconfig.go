package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"snaptok/internal/model"
)

// GuildConfigService handles per-guild preferences. Records are created
// lazily with all flags false and never deleted.
type GuildConfigService struct {
	mysqlRepo MySQLRepositoryInterface
}

// NewGuildConfigService creates a new GuildConfigService
func NewGuildConfigService(mysqlRepo MySQLRepositoryInterface) *GuildConfigService {
	return &GuildConfigService{mysqlRepo: mysqlRepo}
}

// Get returns the config for a guild, creating the default record on
// first access.
func (s *GuildConfigService) Get(ctx context.Context, guildID string) (*model.GuildConfig, error) {
	gc, err := s.mysqlRepo.GetGuildConfig(ctx, guildID)
	if err == nil {
		return gc, nil
	}

	gc = &model.GuildConfig{GuildID: guildID}
	if err := s.mysqlRepo.CreateGuildConfig(ctx, gc); err != nil {
		// A concurrent first access may have created the row already
		if existing, getErr := s.mysqlRepo.GetGuildConfig(ctx, guildID); getErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create guild config: %w", err)
	}

	log.Debug().Str("guild_id", guildID).Msg("Created default guild config")

	return gc, nil
}

// Update applies only the fields set in the partial update, persists, and
// returns the refreshed record. Concurrent updates to different fields of
// the same guild are last-write-wins per field.
func (s *GuildConfigService) Update(ctx context.Context, guildID string, update *model.GuildConfigUpdate) (*model.GuildConfig, error) {
	// Make sure the row exists before a partial column update
	if _, err := s.Get(ctx, guildID); err != nil {
		return nil, err
	}

	if err := s.mysqlRepo.UpdateGuildConfig(ctx, guildID, update.Fields()); err != nil {
		return nil, fmt.Errorf("failed to update guild config: %w", err)
	}

	gc, err := s.mysqlRepo.GetGuildConfig(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload guild config: %w", err)
	}
	return gc, nil
}
