package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"snaptok/internal/model"
	"snaptok/internal/mq"
	"snaptok/pkg/util"
)

// UsageService appends one usage record per successful conversion.
// Opted-out users have their user and message IDs nulled at write time.
// When a producer is configured, records travel through the queue and the
// consumer persists them; otherwise they are written directly.
type UsageService struct {
	mysqlRepo  MySQLRepositoryInterface
	mqProducer mq.ProducerInterface
}

// NewUsageService creates a new UsageService. mqProducer may be nil.
func NewUsageService(mysqlRepo MySQLRepositoryInterface, mqProducer mq.ProducerInterface) *UsageService {
	return &UsageService{
		mysqlRepo:  mysqlRepo,
		mqProducer: mqProducer,
	}
}

// Record appends a usage record for a successful conversion
func (s *UsageService) Record(ctx context.Context, guildID, userID, videoID, messageID string) error {
	optedOut, err := s.mysqlRepo.IsOptedOut(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Failed to check opt-out, assuming opted out")
		optedOut = true
	}

	msg := &mq.UsageMessage{
		ID:         util.GenerateUUID(),
		GuildID:    guildID,
		VideoID:    videoID,
		RecordedAt: time.Now(),
	}
	if !optedOut {
		msg.UserID = userID
		msg.MessageID = messageID
	}

	if s.mqProducer != nil {
		sendErr := s.mqProducer.SendUsageEvent(ctx, msg)
		if sendErr == nil {
			return nil
		}
		log.Warn().Err(sendErr).Str("video_id", videoID).Msg("Failed to publish usage event, writing directly")
	}

	if err := s.mysqlRepo.SaveUsageRecord(ctx, UsageRecordFromMessage(msg)); err != nil {
		return fmt.Errorf("failed to save usage record: %w", err)
	}
	return nil
}

// SetOptOut toggles the opt-out marker for a user
func (s *UsageService) SetOptOut(ctx context.Context, userID string, optedOut bool) error {
	return s.mysqlRepo.SetOptOut(ctx, userID, optedOut)
}

// IsOptedOut reports whether a user has opted out of usage tracking
func (s *UsageService) IsOptedOut(ctx context.Context, userID string) (bool, error) {
	return s.mysqlRepo.IsOptedOut(ctx, userID)
}

// UsageRecordFromMessage converts a queue message into the persisted row
func UsageRecordFromMessage(msg *mq.UsageMessage) *model.UsageRecord {
	rec := &model.UsageRecord{
		ID:        msg.ID,
		GuildID:   msg.GuildID,
		VideoID:   msg.VideoID,
		CreatedAt: msg.RecordedAt,
	}
	if msg.UserID != "" {
		userID := msg.UserID
		rec.UserID = &userID
	}
	if msg.MessageID != "" {
		messageID := msg.MessageID
		rec.MessageID = &messageID
	}
	return rec
}
