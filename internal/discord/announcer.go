package discord

import (
	"fmt"
	"log/slog"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"

	"github.com/bwmarrin/discordgo"
)

// Announcer posts freshly published listings to a Discord channel. A nil
// *Announcer is safe to call, so the integration stays optional.
type Announcer struct {
	session   *discordgo.Session
	channelID string
}

// NewAnnouncer opens a bot session. Returns nil when no token is configured.
func NewAnnouncer(token, channelID string) (*Announcer, error) {
	if token == "" || channelID == "" {
		slog.Info("discord announcer disabled, no token configured")
		return nil, nil
	}

	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages

	if err := s.Open(); err != nil {
		return nil, fmt.Errorf("open discord session: %w", err)
	}
	slog.Info("discord announcer connected", "channel", channelID)
	return &Announcer{session: s, channelID: channelID}, nil
}

// AnnounceListing posts an embed for a newly published listing. Failures are
// logged and swallowed: publication must never depend on the announcement.
func (a *Announcer) AnnounceListing(l *model.Listing) {
	if a == nil {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       l.Title,
		Description: fmt.Sprintf("%s plot in %s", l.PlotType, l.Location),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Price", Value: fmt.Sprintf("₹%.0f", l.Price), Inline: true},
			{Name: "Area", Value: l.Area, Inline: true},
		},
	}
	if l.ImageURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: l.ImageURL}
	}

	if _, err := a.session.ChannelMessageSendEmbed(a.channelID, embed); err != nil {
		slog.Warn("discord announce failed", "listing", l.ID, "err", err)
	}
}

// Close shuts the bot session down.
func (a *Announcer) Close() {
	if a == nil {
		return
	}
	_ = a.session.Close()
}
