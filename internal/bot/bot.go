package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/drezniev/lol-game-spy/internal/config"
	"github.com/drezniev/lol-game-spy/internal/poller"
	"github.com/drezniev/lol-game-spy/internal/riot"
	"github.com/drezniev/lol-game-spy/internal/roster"
)

// Bot ties the Discord session, the roster store and the poll cycle together.
type Bot struct {
	config  *config.Config
	session *discordgo.Session
	store   *roster.Store
	riot    *riot.Client
	poller  *poller.Poller
}

// New creates a new Bot instance over an already-loaded roster store.
func New(cfg *config.Config, store *roster.Store) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	b := &Bot{
		config:  cfg,
		session: session,
		store:   store,
		riot:    riot.NewClient(cfg.RiotAPIKey),
	}

	b.registerHandlers()

	return b, nil
}

// Start opens the Discord connection and starts the poll loop.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	slog.Info("Connected to Discord", "user", b.session.State.User.Username)

	b.poller = poller.New(b.store, b.riot, &discordMessenger{session: b.session}, b.config.PollInterval)
	go b.poller.Start(ctx)

	return nil
}

// Stop shuts the bot down.
func (b *Bot) Stop() error {
	if b.poller != nil {
		b.poller.Stop()
	}
	if b.session != nil {
		return b.session.Close()
	}
	return nil
}

// registerHandlers sets up Discord event handlers
func (b *Bot) registerHandlers() {
	b.session.AddHandler(b.handleMessage)
	b.session.AddHandler(b.handleGuildCreate)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		slog.Info("Bot is ready", "guilds", len(r.Guilds))
	})
}

// handleGuildCreate makes sure a joined guild has a roster entry. GuildCreate
// also fires for every known guild on connect, and EnsureGuild is idempotent,
// so reconnects are harmless.
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	b.store.EnsureGuild(g.ID)
	slog.Info("Guild available", "guild", g.ID, "name", g.Name)
}
