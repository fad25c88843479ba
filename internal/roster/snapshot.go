package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidSnapshot is returned when a persisted roster document fails
// validation. The document is rejected whole; no partial store is built.
var ErrInvalidSnapshot = errors.New("invalid roster snapshot")

// Save writes the roster to path as a single JSON document. The write goes
// through a temp file and rename so a crash mid-write cannot leave a
// truncated snapshot behind.
func (s *Store) Save(path string) error {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.guilds, "", "    ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to serialize roster: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Load reconstructs a store from a snapshot written by Save. A document that
// does not validate against the roster schema is rejected rather than loaded
// partially.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	guilds := make(map[string]*Guild)
	if err := json.Unmarshal(data, &guilds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	for guildID, g := range guilds {
		if guildID == "" || g == nil {
			return nil, fmt.Errorf("%w: empty guild entry", ErrInvalidSnapshot)
		}
		seen := make(map[string]bool, len(g.Players))
		for _, p := range g.Players {
			if p.Name == "" {
				return nil, fmt.Errorf("%w: guild %s has a player with no name", ErrInvalidSnapshot, guildID)
			}
			if p.PUUID == "" {
				return nil, fmt.Errorf("%w: player %q in guild %s has no puuid", ErrInvalidSnapshot, p.Name, guildID)
			}
			if !p.Region.Valid() {
				return nil, fmt.Errorf("%w: player %q in guild %s has region %q", ErrInvalidSnapshot, p.Name, guildID, p.Region)
			}
			key := strings.ToLower(p.Name) + "/" + p.Region.String()
			if seen[key] {
				return nil, fmt.Errorf("%w: duplicate player %q (%s) in guild %s", ErrInvalidSnapshot, p.Name, p.Region, guildID)
			}
			seen[key] = true
		}
	}

	return &Store{guilds: guilds}, nil
}
