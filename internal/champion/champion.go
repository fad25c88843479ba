// Package champion maps Riot's internal champion identifiers to the names
// players actually know them by. The API reports e.g. "MonkeyKing" for Wukong.
package champion

var displayNames = map[string]string{
	"AurelionSol": "Aurelion Sol",
	"Chogath":     "Cho'Gath",
	"DrMundo":     "Dr. Mundo",
	"JarvanIV":    "Jarvan IV",
	"Khazix":      "Kha'Zix",
	"KogMaw":      "Kog'Maw",
	"MonkeyKing":  "Wukong",
	"RekSai":      "Rek'Sai",
	"TahmKench":   "Tahm Kench",
	"TwistedFate": "Twisted Fate",
	"Velkoz":      "Vel'Koz",
	"XinZhao":     "Xin Zhao",
}

// DisplayName returns the human-facing name for an API champion identifier,
// falling back to the identifier itself when no override exists.
func DisplayName(apiName string) string {
	if name, ok := displayNames[apiName]; ok {
		return name
	}
	return apiName
}
