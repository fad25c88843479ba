// Package notify renders match results into the message posted to a guild's
// notification channel.
package notify

import (
	"fmt"

	"github.com/drezniev/lol-game-spy/internal/champion"
	"github.com/drezniev/lol-game-spy/internal/riot"
)

const matchTemplate = `### NEW GAME FOUND!
Player: **%s**
Game Mode: __%s__
Champion: **%s**
Kills: **%d** | Deaths: **%d** | Assists: **%d**
KDA: **%.2f**
DMG: **%d**`

// Render formats one match result. Pure function: same record, same message.
func Render(rec *riot.MatchRecord) string {
	return fmt.Sprintf(matchTemplate,
		rec.PlayerName,
		rec.GameMode,
		champion.DisplayName(rec.Champion),
		rec.Kills, rec.Deaths, rec.Assists,
		rec.KDA,
		rec.Damage,
	)
}
