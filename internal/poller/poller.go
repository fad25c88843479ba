// Package poller drives the poll cycle: walk the roster on a fixed cadence,
// detect players with a new match since last observation and emit exactly one
// notification per new match.
package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/drezniev/lol-game-spy/internal/notify"
	"github.com/drezniev/lol-game-spy/internal/riot"
	"github.com/drezniev/lol-game-spy/internal/roster"
)

//go:generate mockgen -destination=mocks/mock_poller.go -package=mocks github.com/drezniev/lol-game-spy/internal/poller MatchSource,Messenger

// MatchSource is the match-history provider the cycle consults. LatestMatchID
// returns "" with no error when a player has no match history.
type MatchSource interface {
	LatestMatchID(ctx context.Context, puuid, realm string) (string, error)
	Match(ctx context.Context, matchID, realm, puuid string) (*riot.MatchRecord, error)
}

// Messenger is the delivery side of the chat platform.
type Messenger interface {
	ChannelExists(channelID string) bool
	Send(channelID, text string) error
}

// Poller owns the perpetual poll loop.
type Poller struct {
	store     *roster.Store
	source    MatchSource
	messenger Messenger
	interval  time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a Poller over the roster store and its two collaborators.
func New(store *roster.Store, source MatchSource, messenger Messenger, interval time.Duration) *Poller {
	return &Poller{
		store:     store,
		source:    source,
		messenger: messenger,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

// Start begins the polling loop. It blocks until the context is cancelled or
// Stop is called; run it in its own goroutine.
func (p *Poller) Start(ctx context.Context) {
	slog.Info("Starting poller", "interval", p.interval)

	p.wg.Add(1)
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Poll(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Poller stopped (context cancelled)")
			return
		case <-p.stopChan:
			slog.Info("Poller stopped")
			return
		case <-ticker.C:
			p.Poll(ctx)
		}
	}
}

// Stop signals the poller to stop and waits for the loop to exit.
func (p *Poller) Stop() {
	close(p.stopChan)
	p.wg.Wait()
}

// Poll runs one cycle over the whole roster. A failure on one player or one
// guild never prevents the rest of the cycle from running.
func (p *Poller) Poll(ctx context.Context) {
	slog.Debug("Checking for new games")

	for _, guild := range p.store.Snapshot() {
		if guild.ChannelID == "" {
			slog.Debug("No channel configured, skipping guild", "guild", guild.ID)
			continue
		}
		if !p.messenger.ChannelExists(guild.ChannelID) {
			slog.Warn("Channel not resolvable, skipping guild", "guild", guild.ID, "channel", guild.ChannelID)
			continue
		}

		for _, player := range guild.Players {
			select {
			case <-ctx.Done():
				return
			default:
			}
			p.checkPlayer(ctx, guild.ID, guild.ChannelID, player)
		}
	}
}

// checkPlayer polls one tracked player. Any provider failure leaves the
// player's marker untouched so the same match is retried next cycle.
func (p *Poller) checkPlayer(ctx context.Context, guildID, channelID string, player roster.Player) {
	realm, err := riot.Realm(player.Region)
	if err != nil {
		slog.Error("No routing realm for player", "player", player.Name, "region", player.Region, "error", err)
		return
	}

	latest, err := p.source.LatestMatchID(ctx, player.PUUID, realm)
	if err != nil {
		slog.Error("Failed to get latest match", "player", player.Name, "guild", guildID, "error", err)
		return
	}
	if latest == "" {
		// Player has no match history yet.
		return
	}

	// Dedup gate: this match was already announced.
	if latest == player.LastGame {
		return
	}

	rec, err := p.source.Match(ctx, latest, realm, player.PUUID)
	if err != nil {
		if errors.Is(err, riot.ErrCorruptResponse) {
			slog.Error("Unusable match detail", "player", player.Name, "match", latest, "error", err)
		} else {
			slog.Error("Failed to get match detail", "player", player.Name, "match", latest, "error", err)
		}
		return
	}

	slog.Info("New game found", "player", player.Name, "guild", guildID, "match", latest)

	// The marker advances once the send attempt has been issued, whether or
	// not delivery succeeded; a failed send is logged and dropped instead of
	// being re-sent every cycle against a broken channel.
	if err := p.messenger.Send(channelID, notify.Render(rec)); err != nil {
		slog.Error("Failed to send notification", "guild", guildID, "channel", channelID, "error", err)
	}
	p.store.AdvanceMarker(guildID, player.PUUID, latest)
}
