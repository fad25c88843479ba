package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/drezniev/lol-game-spy/internal/region"
	"github.com/drezniev/lol-game-spy/internal/riot"
	"github.com/drezniev/lol-game-spy/internal/roster"
)

const commandPrefix = "!lgs-"

const helpText = "List of commands:\n" +
	"!lgs-set_channel {channel_id} - Set the channel where the bot will send messages\n" +
	"!lgs-add_player {name} {region} - Add a player to the list\n" +
	"!lgs-remove_player {name} {region} - Remove a player from the list\n" +
	"!lgs-list_players - List all players in the list\n" +
	"!lgs-help - Show this message"

// handleMessage dispatches !lgs- prefix commands. Every command answers with a
// single text reply; unrecognized commands and missing arguments get a
// distinct diagnostic instead of silence.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if !strings.HasPrefix(m.Content, commandPrefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, commandPrefix))
	if len(fields) == 0 {
		b.reply(m, "Invalid command. Use `!lgs-help` to see available commands.")
		return
	}
	command, args := fields[0], fields[1:]

	slog.Debug("Received command", "command", command, "guild", m.GuildID)

	switch command {
	case "set_channel":
		b.handleSetChannel(m, args)
	case "add_player":
		b.handleAddPlayer(m, args)
	case "remove_player":
		b.handleRemovePlayer(m, args)
	case "list_players":
		b.handleListPlayers(m)
	case "help":
		b.reply(m, helpText)
	default:
		b.reply(m, "Invalid command. Use `!lgs-help` to see available commands.")
	}
}

func (b *Bot) handleSetChannel(m *discordgo.MessageCreate, args []string) {
	if len(args) < 1 {
		b.reply(m, "Missing arguments. Usage: `!lgs-set_channel {channel_id}`")
		return
	}
	channelID := args[0]

	channel, err := b.session.Channel(channelID)
	if err != nil {
		b.reply(m, fmt.Sprintf("Channel %s does not exist.", channelID))
		return
	}

	b.store.SetChannel(m.GuildID, channelID)
	b.reply(m, fmt.Sprintf("Channel has been set to #%s", channel.Name))
}

func (b *Bot) handleAddPlayer(m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		b.reply(m, "Missing arguments. Usage: `!lgs-add_player {name} {region}`")
		return
	}
	name := args[0]

	reg, err := region.Parse(args[1])
	if err != nil {
		b.reply(m, "Invalid region. Please use EUNE, EUW or NA.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	puuid, err := b.riot.SummonerPUUID(ctx, name, reg)
	if err != nil {
		if errors.Is(err, riot.ErrNotFound) {
			b.reply(m, fmt.Sprintf("Player '%s' on region '%s' does not exist.", name, reg))
			return
		}
		slog.Error("Summoner lookup failed", "name", name, "region", reg, "error", err)
		b.reply(m, fmt.Sprintf("Could not look up player '%s' right now, try again later.", name))
		return
	}

	err = b.store.AddPlayer(m.GuildID, roster.Player{Name: name, Region: reg, PUUID: puuid})
	if errors.Is(err, roster.ErrDuplicatePlayer) {
		b.reply(m, fmt.Sprintf("Player '%s' on region '%s' is already in the list.", name, reg))
		return
	}

	slog.Info("Player added", "name", name, "region", reg, "guild", m.GuildID)
	b.reply(m, fmt.Sprintf("Player '%s' has been saved!", name))
}

func (b *Bot) handleRemovePlayer(m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		b.reply(m, "Missing arguments. Usage: `!lgs-remove_player {name} {region}`")
		return
	}
	name := args[0]

	reg, err := region.Parse(args[1])
	if err != nil {
		b.reply(m, "Invalid region. Please use EUNE, EUW or NA.")
		return
	}

	if err := b.store.RemovePlayer(m.GuildID, name, reg); err != nil {
		b.reply(m, fmt.Sprintf("Player '%s' on region '%s' does not exist.", name, reg))
		return
	}

	slog.Info("Player removed", "name", name, "region", reg, "guild", m.GuildID)
	b.reply(m, fmt.Sprintf("Player '%s' has been removed!", name))
}

func (b *Bot) handleListPlayers(m *discordgo.MessageCreate) {
	players := b.store.Players(m.GuildID)
	if len(players) == 0 {
		b.reply(m, "The name list is empty.")
		return
	}

	var sb strings.Builder
	for _, p := range players {
		sb.WriteString(p.Name)
		sb.WriteString(" ")
		sb.WriteString(p.Region.String())
		sb.WriteString("\n")
	}
	b.reply(m, fmt.Sprintf("List of tracked players:\n```%s```", sb.String()))
}

func (b *Bot) reply(m *discordgo.MessageCreate, text string) {
	if _, err := b.session.ChannelMessageSend(m.ChannelID, text); err != nil {
		slog.Error("Failed to send reply", "channel", m.ChannelID, "error", err)
	}
}
