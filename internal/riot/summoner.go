package riot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/drezniev/lol-game-spy/internal/region"
)

// summoner mirrors the Summoner-V4 response; only the PUUID matters to us.
type summoner struct {
	PUUID string `json:"puuid"`
}

// SummonerPUUID resolves a summoner name on a platform region to the stable
// provider identity. Called once when a player is added; the PUUID is cached
// in the roster from then on. An unknown name is ErrNotFound.
func (c *Client) SummonerPUUID(ctx context.Context, name string, r region.Region) (string, error) {
	endpoint := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-name/%s",
		c.host(r.String()), url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	var s summoner
	if err := c.get(req, &s); err != nil {
		return "", err
	}
	if s.PUUID == "" {
		return "", fmt.Errorf("%w: empty puuid for summoner %q", ErrCorruptResponse, name)
	}
	return s.PUUID, nil
}
