package roster

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drezniev/lol-game-spy/internal/region"
)

func TestAddPlayerDuplicate(t *testing.T) {
	s := NewStore()

	err := s.AddPlayer("g1", Player{Name: "Foo", Region: region.NA1, PUUID: "p1"})
	require.NoError(t, err)

	// Same name in a different case, same region: rejected, roster untouched.
	err = s.AddPlayer("g1", Player{Name: "foo", Region: region.NA1, PUUID: "p1"})
	assert.ErrorIs(t, err, ErrDuplicatePlayer)
	assert.Len(t, s.Players("g1"), 1)

	// Same name on another region is a different tracked player.
	err = s.AddPlayer("g1", Player{Name: "Foo", Region: region.EUW1, PUUID: "p2"})
	require.NoError(t, err)
	assert.Len(t, s.Players("g1"), 2)

	// Guilds do not share uniqueness scopes.
	err = s.AddPlayer("g2", Player{Name: "Foo", Region: region.NA1, PUUID: "p1"})
	require.NoError(t, err)
}

func TestRemovePlayer(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddPlayer("g1", Player{Name: "Foo", Region: region.NA1, PUUID: "p1"}))

	assert.ErrorIs(t, s.RemovePlayer("g1", "Foo", region.EUW1), ErrPlayerNotFound)
	assert.ErrorIs(t, s.RemovePlayer("g2", "Foo", region.NA1), ErrPlayerNotFound)

	require.NoError(t, s.RemovePlayer("g1", "FOO", region.NA1))
	assert.Empty(t, s.Players("g1"))
}

func TestAdvanceMarker(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddPlayer("g1", Player{Name: "Foo", Region: region.NA1, PUUID: "p1"}))

	s.AdvanceMarker("g1", "p1", "NA1_100")
	assert.Equal(t, "NA1_100", s.Players("g1")[0].LastGame)

	// The marker never resets backward to the never-observed state.
	s.AdvanceMarker("g1", "p1", "")
	assert.Equal(t, "NA1_100", s.Players("g1")[0].LastGame)

	// Unknown puuid or guild is a no-op.
	s.AdvanceMarker("g1", "p9", "NA1_101")
	s.AdvanceMarker("g9", "p1", "NA1_101")
	assert.Equal(t, "NA1_100", s.Players("g1")[0].LastGame)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.SetChannel("g1", "c1")
	require.NoError(t, s.AddPlayer("g1", Player{Name: "Foo", Region: region.NA1, PUUID: "p1"}))

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	snap[0].Players[0].LastGame = "mutated"

	assert.Empty(t, s.Players("g1")[0].LastGame)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := t.TempDir() + "/database.json"

	s := NewStore()
	s.EnsureGuild("empty-guild")
	s.SetChannel("g1", "c1")
	require.NoError(t, s.AddPlayer("g1", Player{Name: "Foo", Region: region.NA1, PUUID: "p1", LastGame: "NA1_100"}))
	require.NoError(t, s.AddPlayer("g1", Player{Name: "Bar", Region: region.EUN1, PUUID: "p2"}))
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.ElementsMatch(t, s.Snapshot(), loaded.Snapshot())
}

func TestLoadRejectsMalformed(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := dir + "/" + name
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	cases := map[string]string{
		"truncated.json":    `{"g1": {"channel_id"`,
		"no_name.json":      `{"g1": {"channel_id": "c1", "players_list": [{"name": "", "region": "na1", "puuid": "p1", "last_game": ""}]}}`,
		"no_puuid.json":     `{"g1": {"channel_id": "c1", "players_list": [{"name": "Foo", "region": "na1", "puuid": "", "last_game": ""}]}}`,
		"bad_region.json":   `{"g1": {"channel_id": "c1", "players_list": [{"name": "Foo", "region": "zz9", "puuid": "p1", "last_game": ""}]}}`,
		"dup_players.json":  `{"g1": {"players_list": [{"name": "Foo", "region": "na1", "puuid": "p1"}, {"name": "foo", "region": "na1", "puuid": "p1"}]}}`,
		"empty_guild.json":  `{"": {"players_list": []}}`,
		"wrong_shape.json":  `[1, 2, 3]`,
	}

	for name, content := range cases {
		_, err := Load(write(name, content))
		assert.ErrorIs(t, err, ErrInvalidSnapshot, name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir() + "/nope.json")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSnapshot)
}
