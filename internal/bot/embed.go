package bot

import (
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"snaptok/internal/model"
	"snaptok/internal/token"
)

// videoEmbed renders the statistics card for a video
func videoEmbed(video *model.VideoRecord) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       video.Description,
		Description: video.PageURL(),
		Timestamp:   video.CreatedAt.Format(time.RFC3339),
		Author: &discordgo.MessageEmbedAuthor{
			Name:    video.Author.Nickname,
			IconURL: video.Author.AvatarURL,
			URL:     video.Author.ProfileURL,
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: video.CoverURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Views 👁️", Value: formatCount(video.Statistics.PlayCount), Inline: true},
			{Name: "Likes ❤️", Value: formatCount(video.Statistics.LikeCount), Inline: true},
			{Name: "Comments 💬", Value: formatCount(video.Statistics.CommentCount), Inline: true},
			{Name: "Shares 🔃", Value: formatCount(video.Statistics.ShareCount), Inline: true},
			{Name: "Downloads 📥", Value: formatCount(video.Statistics.DownloadCount), Inline: true},
		},
	}
	return embed
}

// infoComponents builds the Download and Audio controls on the info card
func infoComponents(video *model.VideoRecord) []discordgo.MessageComponent {
	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Style: discordgo.LinkButton,
			Label: "Download",
			URL:   video.MediaURL,
		},
	}
	if video.MusicID != "" {
		buttons = append(buttons, discordgo.Button{
			Style:    discordgo.SecondaryButton,
			Label:    "Audio",
			Emoji:    &discordgo.ComponentEmoji{Name: "🎵"},
			CustomID: token.EncodeAudio(video.MusicID),
		})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// musicEmbed renders the audio card for a music record
func musicEmbed(music *model.MusicRecord) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: music.Title,
		URL:   music.PageURL(),
		Author: &discordgo.MessageEmbedAuthor{
			Name:    music.Author.Nickname,
			IconURL: music.Author.AvatarURL,
			URL:     music.Author.ProfileURL,
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: music.CoverURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Video Count 📱", Value: formatCount(music.VideoCount)},
		},
	}
}

// musicComponents builds the Download link on the audio card
func musicComponents(music *model.MusicRecord) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Style: discordgo.LinkButton,
					Label: "Download",
					URL:   music.PlayURL,
				},
			},
		},
	}
}

func formatCount(n int64) string {
	return strconv.FormatInt(n, 10)
}
