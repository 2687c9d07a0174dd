package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"snaptok/internal/classifier"
	"snaptok/internal/model"
)

// Commands are the slash command definitions the bot registers on startup
var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "tiktok",
		Description: "Convert a TikTok link into a short URL",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "url",
				Description: "The TikTok link to convert",
				Required:    true,
			},
		},
	},
	{
		Name:        "optout",
		Description: "Toggle whether your usage of the bot is recorded",
	},
	{
		Name:                     "settings",
		Description:              "Show or change how the bot behaves in this server",
		DefaultMemberPermissions: &manageGuildPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "auto_embed",
				Description: "Attach the statistics card to every reply",
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "delete_origin",
				Description: "Delete the message that contained the link",
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "suppress_origin_embed",
				Description: "Suppress Discord's own preview on the original message",
			},
		},
	},
}

var manageGuildPermission = int64(discordgo.PermissionManageServer)

func (h *Handler) handleCommand(s Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	data := i.ApplicationCommandData()
	switch data.Name {
	case "tiktok":
		h.handleTikTokCommand(ctx, s, i, data)
	case "optout":
		h.handleOptOutCommand(ctx, s, i)
	case "settings":
		h.handleSettingsCommand(ctx, s, i, data)
	default:
		log.Debug().Str("command", data.Name).Msg("Ignoring unknown command")
	}
}

// handleTikTokCommand is the explicit conversion path. Unlike passive
// scanning it reports failures to the user instead of staying silent.
func (h *Handler) handleTikTokCommand(ctx context.Context, s Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	var rawURL string
	for _, opt := range data.Options {
		if opt.Name == "url" {
			rawURL = opt.StringValue()
		}
	}

	video, err := h.convert(ctx, rawURL)
	if err != nil {
		if errors.Is(err, classifier.ErrNoLink) {
			respondEphemeral(s, i, "Error: that does not look like a TikTok link.")
		} else {
			log.Warn().Err(err).Str("url", rawURL).Msg("Explicit conversion failed")
			respondEphemeral(s, i, "Error: could not fetch that video.")
		}
		return
	}

	sl, err := h.store.GetOrCreate(ctx, video.MediaURL)
	if err != nil {
		log.Error().Err(err).Str("video_id", video.ID).Msg("Failed to shorten media URL")
		respondEphemeral(s, i, "Error: could not create a short URL.")
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    sl.ShortURL,
			Components: replyComponents(video.ID, interactionUserID(i)),
		},
	}); err != nil {
		log.Warn().Err(err).Msg("Failed to respond to tiktok command")
		return
	}

	if err := h.usage.Record(ctx, i.GuildID, interactionUserID(i), video.ID, ""); err != nil {
		log.Warn().Err(err).Str("video_id", video.ID).Msg("Failed to record usage")
	}
}

func (h *Handler) handleOptOutCommand(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	if userID == "" {
		return
	}

	optedOut, err := h.usage.IsOptedOut(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Failed to read opt-out state")
		respondEphemeral(s, i, "Error: could not read your current setting.")
		return
	}

	if err := h.usage.SetOptOut(ctx, userID, !optedOut); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Failed to toggle opt-out")
		respondEphemeral(s, i, "Error: could not update your setting.")
		return
	}

	if optedOut {
		respondEphemeral(s, i, "You are opted back in, your usage will be recorded again.")
	} else {
		respondEphemeral(s, i, "You are opted out, your usage will no longer be attributed to you.")
	}
}

func (h *Handler) handleSettingsCommand(ctx context.Context, s Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if i.GuildID == "" {
		respondEphemeral(s, i, "Settings are only available inside a server.")
		return
	}

	update := &model.GuildConfigUpdate{}
	for _, opt := range data.Options {
		val := opt.BoolValue()
		switch opt.Name {
		case "auto_embed":
			update.AutoEmbed = &val
		case "delete_origin":
			update.DeleteOrigin = &val
		case "suppress_origin_embed":
			update.SuppressOriginEmbed = &val
		}
	}

	var cfg *model.GuildConfig
	var err error
	if len(data.Options) == 0 {
		cfg, err = h.guilds.Get(ctx, i.GuildID)
	} else {
		cfg, err = h.guilds.Update(ctx, i.GuildID, update)
	}
	if err != nil {
		log.Warn().Err(err).Str("guild_id", i.GuildID).Msg("Failed to access guild settings")
		respondEphemeral(s, i, "Error: could not access the server settings.")
		return
	}

	respondEphemeral(s, i, fmt.Sprintf(
		"Current settings:\nauto_embed: %t\ndelete_origin: %t\nsuppress_origin_embed: %t",
		cfg.AutoEmbed, cfg.DeleteOrigin, cfg.SuppressOriginEmbed,
	))
}
