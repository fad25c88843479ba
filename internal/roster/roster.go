// Package roster holds the tracked-player tree: guild → notification channel
// plus tracked players, each carrying the last-seen-match watermark the poll
// cycle dedups against. The store is the single source of truth for dedup and
// is what the snapshot files persist.
package roster

import (
	"errors"
	"strings"
	"sync"

	"github.com/drezniev/lol-game-spy/internal/region"
)

var (
	// ErrDuplicatePlayer is returned when a guild already tracks the same
	// (name, region) pair. Name comparison is case-insensitive.
	ErrDuplicatePlayer = errors.New("player is already in the list")

	// ErrPlayerNotFound is returned by removal when no such player is tracked.
	ErrPlayerNotFound = errors.New("player not found")
)

// Player is one tracked summoner within a guild.
type Player struct {
	Name     string        `json:"name"`
	Region   region.Region `json:"region"`
	PUUID    string        `json:"puuid"`
	LastGame string        `json:"last_game"` // empty until first observation
}

// Guild holds the per-server state: where to deliver and who to watch.
type Guild struct {
	ChannelID string   `json:"channel_id"` // empty until set_channel
	Players   []Player `json:"players_list"`
}

// GuildSnapshot is a copy of one guild's state handed to the poll cycle so it
// can walk the roster without holding the store lock across network calls.
type GuildSnapshot struct {
	ID        string
	ChannelID string
	Players   []Player
}

// Store is the in-memory roster. Every read-modify-write goes through the
// mutex; the reference system leaned on cooperative single-threaded scheduling
// for the same guarantee.
type Store struct {
	mu     sync.Mutex
	guilds map[string]*Guild
}

// NewStore creates an empty roster store.
func NewStore() *Store {
	return &Store{guilds: make(map[string]*Guild)}
}

// EnsureGuild creates an empty entry for a guild if one does not exist yet.
// Called on guild join; idempotent.
func (s *Store) EnsureGuild(guildID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.guilds[guildID]; !ok {
		s.guilds[guildID] = &Guild{}
	}
}

// SetChannel records the delivery channel for a guild.
func (s *Store) SetChannel(guildID, channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guildLocked(guildID)
	g.ChannelID = channelID
}

// AddPlayer adds a tracked player to a guild. A player with the same
// case-insensitive name and the same region is rejected and the roster is
// left untouched.
func (s *Store) AddPlayer(guildID string, p Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guildLocked(guildID)
	if findPlayer(g.Players, p.Name, p.Region) >= 0 {
		return ErrDuplicatePlayer
	}
	g.Players = append(g.Players, p)
	return nil
}

// RemovePlayer stops tracking the (name, region) player in a guild.
func (s *Store) RemovePlayer(guildID, name string, r region.Region) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.guilds[guildID]
	if !ok {
		return ErrPlayerNotFound
	}
	i := findPlayer(g.Players, name, r)
	if i < 0 {
		return ErrPlayerNotFound
	}
	g.Players = append(g.Players[:i], g.Players[i+1:]...)
	return nil
}

// Players returns a copy of a guild's tracked players.
func (s *Store) Players(guildID string) []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.guilds[guildID]
	if !ok {
		return nil
	}
	out := make([]Player, len(g.Players))
	copy(out, g.Players)
	return out
}

// Snapshot returns a copy of every guild's state for one poll walk.
func (s *Store) Snapshot() []GuildSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]GuildSnapshot, 0, len(s.guilds))
	for id, g := range s.guilds {
		players := make([]Player, len(g.Players))
		copy(players, g.Players)
		out = append(out, GuildSnapshot{ID: id, ChannelID: g.ChannelID, Players: players})
	}
	return out
}

// AdvanceMarker moves a player's last-seen-match watermark forward. An empty
// matchID is ignored: the marker never resets backward to "never observed".
func (s *Store) AdvanceMarker(guildID, puuid, matchID string) {
	if matchID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.guilds[guildID]
	if !ok {
		return
	}
	for i := range g.Players {
		if g.Players[i].PUUID == puuid {
			g.Players[i].LastGame = matchID
			return
		}
	}
}

func (s *Store) guildLocked(guildID string) *Guild {
	g, ok := s.guilds[guildID]
	if !ok {
		g = &Guild{}
		s.guilds[guildID] = g
	}
	return g
}

func findPlayer(players []Player, name string, r region.Region) int {
	for i, p := range players {
		if strings.EqualFold(p.Name, name) && p.Region == r {
			return i
		}
	}
	return -1
}
