package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drezniev/lol-game-spy/internal/riot"
)

func TestRender(t *testing.T) {
	rec := &riot.MatchRecord{
		MatchID:    "G1",
		GameMode:   "CLASSIC",
		PlayerName: "Foo",
		Champion:   "MonkeyKing",
		Kills:      5,
		Deaths:     2,
		Assists:    7,
		Damage:     20000,
		KDA:        6.0,
	}

	msg := Render(rec)

	assert.Contains(t, msg, "NEW GAME FOUND!")
	assert.Contains(t, msg, "Player: **Foo**")
	assert.Contains(t, msg, "Game Mode: __CLASSIC__")
	assert.Contains(t, msg, "**Wukong**", "champion name must go through the display override")
	assert.NotContains(t, msg, "MonkeyKing")
	assert.Contains(t, msg, "Kills: **5** | Deaths: **2** | Assists: **7**")
	assert.Contains(t, msg, "KDA: **6.00**", "KDA is always two decimal places")
	assert.Contains(t, msg, "DMG: **20000**")
}

func TestRenderDeterministic(t *testing.T) {
	rec := &riot.MatchRecord{PlayerName: "Foo", Champion: "Ahri", KDA: 1.3333}
	assert.Equal(t, Render(rec), Render(rec))
	assert.True(t, strings.Contains(Render(rec), "**1.33**"))
}
