package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"snaptok/internal/model"
)

// MetadataClient defines the upstream TikTok operations the bot needs (for testing)
type MetadataClient interface {
	ResolveVideoID(ctx context.Context, shortURL string) (string, error)
	FetchVideo(ctx context.Context, videoID string) (*model.VideoRecord, error)
	FetchMusic(ctx context.Context, musicID string) (*model.MusicRecord, error)
}

// Session is the slice of the Discord session the handlers use.
// *discordgo.Session satisfies it; tests substitute a fake.
type Session interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEdit(channelID, messageID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)
}
