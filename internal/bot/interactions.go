package bot

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"snaptok/internal/tiktok"
	"snaptok/internal/token"
)

// HandleInteraction dispatches component activations and slash commands
func (h *Handler) HandleInteraction(s Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	}
}

func (h *Handler) handleComponent(s Session, i *discordgo.InteractionCreate) {
	tok := token.Decode(i.MessageComponentData().CustomID)

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	switch tok.Action {
	case token.ActionInfo:
		h.handleInfo(ctx, s, i, tok.ID)
	case token.ActionAudio:
		h.handleAudio(ctx, s, i, tok.ID)
	case token.ActionDelete:
		h.handleDelete(ctx, s, i, tok.ID)
	default:
		// Stale or foreign token, drop it without acknowledging
		log.Debug().Str("custom_id", i.MessageComponentData().CustomID).Msg("Ignoring unrecognized control token")
	}
}

// handleInfo answers an info control with the statistics card. As a side
// effect it refreshes the short URL on the original reply when the stored
// link has rotated since the reply was posted.
func (h *Handler) handleInfo(ctx context.Context, s Session, i *discordgo.InteractionCreate, videoID string) {
	video, err := h.tiktok.FetchVideo(ctx, videoID)
	if err != nil {
		log.Warn().Err(err).Str("video_id", videoID).Msg("Failed to fetch video for info card")
		respondEphemeral(s, i, "Error: could not load the video details.")
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{videoEmbed(video)},
			Components: infoComponents(video),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Warn().Err(err).Msg("Failed to respond with info card")
		return
	}

	h.backfillShortURL(ctx, s, i.Message, video.MediaURL)
}

// backfillShortURL re-resolves the short URL for the video and rewrites the
// reply message when it no longer matches. Best effort only.
func (h *Handler) backfillShortURL(ctx context.Context, s Session, msg *discordgo.Message, mediaURL string) {
	if msg == nil {
		return
	}
	sl, err := h.store.GetOrCreate(ctx, mediaURL)
	if err != nil {
		log.Debug().Err(err).Msg("Skipping short URL backfill")
		return
	}
	if msg.Content == sl.ShortURL {
		return
	}
	if _, err := s.ChannelMessageEdit(msg.ChannelID, msg.ID, sl.ShortURL); err != nil {
		log.Warn().Err(err).Str("message_id", msg.ID).Msg("Failed to refresh short URL on reply")
	}
}

func (h *Handler) handleAudio(ctx context.Context, s Session, i *discordgo.InteractionCreate, musicID string) {
	music, err := h.tiktok.FetchMusic(ctx, musicID)
	if err != nil {
		if errors.Is(err, tiktok.ErrMusicUnavailable) {
			respondEphemeral(s, i, "The music for this video has been removed.")
			return
		}
		log.Warn().Err(err).Str("music_id", musicID).Msg("Failed to fetch music for audio card")
		respondEphemeral(s, i, "Error: could not load the music details.")
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{musicEmbed(music)},
			Components: musicComponents(music),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Warn().Err(err).Msg("Failed to respond with audio card")
	}
}

// handleDelete removes the bot's reply when the activating user either
// holds Manage Messages in the channel or authored the original message
// the reply was made for.
func (h *Handler) handleDelete(ctx context.Context, s Session, i *discordgo.InteractionCreate, authorID string) {
	actorID := interactionUserID(i)
	if actorID == "" || i.Message == nil {
		return
	}

	if !h.mayDelete(s, i, actorID, authorID) {
		respondEphemeral(s, i, "Only moderators or the original poster can remove this.")
		return
	}

	if err := s.ChannelMessageDelete(i.ChannelID, i.Message.ID); err != nil {
		log.Warn().Err(err).Str("message_id", i.Message.ID).Msg("Failed to delete reply")
		respondEphemeral(s, i, "Error: could not delete the message.")
		return
	}

	// The component's host message is gone, a deferred update is the only
	// acknowledgement that does not produce a visible response
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		log.Debug().Err(err).Msg("Failed to acknowledge delete")
	}
}

func (h *Handler) mayDelete(s Session, i *discordgo.InteractionCreate, actorID, authorID string) bool {
	perms, err := s.UserChannelPermissions(actorID, i.ChannelID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", actorID).Msg("Failed to resolve channel permissions")
	} else if perms&discordgo.PermissionManageMessages != 0 {
		return true
	}

	if authorID != "" {
		return actorID == authorID
	}

	// Legacy tokens carry no author, fall back to the referenced message
	ref := i.Message.MessageReference
	if ref == nil {
		return false
	}
	origin, err := s.ChannelMessage(ref.ChannelID, ref.MessageID)
	if err != nil || origin.Author == nil {
		return false
	}
	return actorID == origin.Author.ID
}

// interactionUserID returns the activating user's ID for both guild and
// direct message interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respondEphemeral(s Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Warn().Err(err).Msg("Failed to send ephemeral response")
	}
}
