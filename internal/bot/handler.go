package bot

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"snaptok/internal/classifier"
	"snaptok/internal/model"
	"snaptok/internal/service"
	"snaptok/internal/token"
)

// eventTimeout bounds the storage and network calls of a single event
const eventTimeout = 15 * time.Second

// Handler converts TikTok links in chat messages into short URLs and
// dispatches UI control activations. Every event is handled independently;
// a failure aborts only its own event.
type Handler struct {
	tiktok    MetadataClient
	store     service.ShortURLStore
	guilds    service.GuildConfigServiceInterface
	usage     service.UsageServiceInterface
	botUserID string
}

// NewHandler creates a Handler
func NewHandler(
	tiktok MetadataClient,
	store service.ShortURLStore,
	guilds service.GuildConfigServiceInterface,
	usage service.UsageServiceInterface,
	botUserID string,
) *Handler {
	return &Handler{
		tiktok:    tiktok,
		store:     store,
		guilds:    guilds,
		usage:     usage,
		botUserID: botUserID,
	}
}

// HandleMessage is the passive scanning path: checks an incoming message
// for a TikTok link and replies with a short URL and controls. All
// failures degrade silently, passive scanning never posts error text.
func (h *Handler) HandleMessage(s Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == h.botUserID {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	video, err := h.convert(ctx, m.Content)
	if err != nil {
		if !errors.Is(err, classifier.ErrNoLink) {
			log.Debug().Err(err).Str("message_id", m.ID).Msg("Dropping unconvertible message")
		}
		return
	}

	sl, err := h.store.GetOrCreate(ctx, video.MediaURL)
	if err != nil {
		log.Error().Err(err).Str("video_id", video.ID).Msg("Failed to shorten media URL")
		return
	}

	reply := &discordgo.MessageSend{
		Content:    sl.ShortURL,
		Components: replyComponents(video.ID, m.Author.ID),
		Reference:  m.Reference(),
	}

	cfg, err := h.guilds.Get(ctx, m.GuildID)
	if err != nil {
		log.Warn().Err(err).Str("guild_id", m.GuildID).Msg("Failed to load guild config, using defaults")
		cfg = &model.GuildConfig{GuildID: m.GuildID}
	}

	if cfg.AutoEmbed {
		reply.Embeds = []*discordgo.MessageEmbed{videoEmbed(video)}
	}
	if cfg.DeleteOrigin {
		// The origin goes away, so the reply cannot reference it
		reply.Reference = nil
	}

	if _, err := s.ChannelMessageSendComplex(m.ChannelID, reply); err != nil {
		log.Error().Err(err).Str("channel_id", m.ChannelID).Msg("Failed to send reply")
		return
	}

	if cfg.DeleteOrigin {
		if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
			log.Warn().Err(err).Str("message_id", m.ID).Msg("Failed to delete origin message")
		}
	} else if cfg.SuppressOriginEmbed {
		edit := &discordgo.MessageEdit{
			Channel: m.ChannelID,
			ID:      m.ID,
			Flags:   discordgo.MessageFlagsSuppressEmbeds,
		}
		if _, err := s.ChannelMessageEditComplex(edit); err != nil {
			log.Warn().Err(err).Str("message_id", m.ID).Msg("Failed to suppress origin embed")
		}
	}

	if err := h.usage.Record(ctx, m.GuildID, m.Author.ID, video.ID, m.ID); err != nil {
		log.Warn().Err(err).Str("video_id", video.ID).Msg("Failed to record usage")
	}
}

// convert runs the classify -> resolve -> fetch pipeline on message text
func (h *Handler) convert(ctx context.Context, content string) (*model.VideoRecord, error) {
	ref, err := classifier.Classify(content)
	if err != nil {
		return nil, err
	}

	videoID := ref.RawID
	if ref.Kind == model.LinkShort {
		videoID, err = h.tiktok.ResolveVideoID(ctx, ref.NormalizedURL)
		if err != nil {
			return nil, err
		}
	}

	return h.tiktok.FetchVideo(ctx, videoID)
}

// replyComponents builds the Info and Delete controls for the short-URL
// reply. The delete token embeds the origin author's ID so the author can
// remove the bot's reply without moderation privilege.
func replyComponents(videoID, authorID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Style:    discordgo.SecondaryButton,
					Label:    "Info",
					Emoji:    &discordgo.ComponentEmoji{Name: "🌐"},
					CustomID: token.EncodeInfo(videoID),
				},
				discordgo.Button{
					Style:    discordgo.DangerButton,
					Emoji:    &discordgo.ComponentEmoji{Name: "🗑️"},
					CustomID: token.EncodeDelete(authorID),
				},
			},
		},
	}
}
