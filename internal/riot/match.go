package riot

import (
	"context"
	"fmt"
	"net/http"

	"github.com/drezniev/lol-game-spy/internal/region"
)

// Realm maps a canonical platform region to the routing realm used by the
// Match-V5 API. This mapping is applied at poll time and is deliberately kept
// apart from the alias parsing done when a player is added.
func Realm(r region.Region) (string, error) {
	switch r {
	case region.EUN1, region.EUW1:
		return "europe", nil
	case region.NA1:
		return "americas", nil
	}
	return "", fmt.Errorf("no routing realm for region %q", r)
}

// MatchRecord is the normalized stat line for one player in one match. It
// lives only long enough to render a notification.
type MatchRecord struct {
	MatchID    string
	GameMode   string
	PlayerName string
	Champion   string // raw API identifier, display mapping happens at render
	Kills      int
	Deaths     int
	Assists    int
	Damage     int
	KDA        float64
}

// match mirrors the subset of the Match-V5 detail response we consume.
type match struct {
	Metadata struct {
		MatchID      string   `json:"matchId"`
		Participants []string `json:"participants"` // PUUIDs
	} `json:"metadata"`
	Info struct {
		GameMode     string        `json:"gameMode"`
		Participants []participant `json:"participants"`
	} `json:"info"`
}

type participant struct {
	PUUID                       string `json:"puuid"`
	SummonerName                string `json:"summonerName"`
	ChampionName                string `json:"championName"`
	Kills                       int    `json:"kills"`
	Deaths                      int    `json:"deaths"`
	Assists                     int    `json:"assists"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	Challenges                  struct {
		KDA float64 `json:"kda"`
	} `json:"challenges"`
}

// LatestMatchID returns the most recent match id for a player, or "" when the
// player has no match history at all.
func (c *Client) LatestMatchID(ctx context.Context, puuid, realm string) (string, error) {
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?count=1", c.host(realm), puuid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	var matchIDs []string
	if err := c.get(req, &matchIDs); err != nil {
		return "", fmt.Errorf("failed to get match IDs: %w", err)
	}

	if len(matchIDs) == 0 {
		return "", nil
	}
	return matchIDs[0], nil
}

// Match retrieves a match's detail and extracts the stat line of the player
// identified by puuid. A response in which that player does not appear is a
// corrupt response, not a transient failure.
func (c *Client) Match(ctx context.Context, matchID, realm, puuid string) (*MatchRecord, error) {
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.host(realm), matchID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var m match
	if err := c.get(req, &m); err != nil {
		return nil, fmt.Errorf("failed to get match %s: %w", matchID, err)
	}

	for i := range m.Info.Participants {
		p := &m.Info.Participants[i]
		if p.PUUID != puuid {
			continue
		}
		kda := p.Challenges.KDA
		if kda == 0 && p.Kills+p.Assists > 0 {
			deaths := p.Deaths
			if deaths == 0 {
				deaths = 1
			}
			kda = float64(p.Kills+p.Assists) / float64(deaths)
		}
		return &MatchRecord{
			MatchID:    m.Metadata.MatchID,
			GameMode:   m.Info.GameMode,
			PlayerName: p.SummonerName,
			Champion:   p.ChampionName,
			Kills:      p.Kills,
			Deaths:     p.Deaths,
			Assists:    p.Assists,
			Damage:     p.TotalDamageDealtToChampions,
			KDA:        kda,
		}, nil
	}

	return nil, fmt.Errorf("%w: player %s not in match %s", ErrCorruptResponse, puuid, matchID)
}
