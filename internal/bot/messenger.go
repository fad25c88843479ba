package bot

import "github.com/bwmarrin/discordgo"

// discordMessenger adapts the Discord session to the poller's delivery
// interface.
type discordMessenger struct {
	session *discordgo.Session
}

func (d *discordMessenger) ChannelExists(channelID string) bool {
	if _, err := d.session.State.Channel(channelID); err == nil {
		return true
	}
	_, err := d.session.Channel(channelID)
	return err == nil
}

func (d *discordMessenger) Send(channelID, text string) error {
	_, err := d.session.ChannelMessageSend(channelID, text)
	return err
}
