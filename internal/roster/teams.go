// Package roster normalizes free-form team input so the analysis provider
// can tell "Eagles", "phi", and "PHI" apart from a player name.
package roster

import "strings"

// teamAbbreviations maps lowercase team nicknames and abbreviations to the
// canonical code used in the stat sheet.
var teamAbbreviations = map[string]string{
	"49ers": "SF", "bears": "CHI", "bengals": "CIN", "bills": "BUF", "broncos": "DEN",
	"browns": "CLE", "buccaneers": "TB", "cardinals": "ARI", "chargers": "LAC",
	"chiefs": "KC", "colts": "IND", "cowboys": "DAL", "dolphins": "MIA",
	"eagles": "PHI", "falcons": "ATL", "giants": "NYG", "jaguars": "JAX",
	"jets": "NYJ", "lions": "DET", "packers": "GB", "panthers": "CAR",
	"patriots": "NE", "raiders": "LV", "rams": "LAR", "ram": "LAR", "ravens": "BAL",
	"saints": "NO", "seahawks": "SEA", "steelers": "PIT", "texans": "HOU",
	"titans": "TEN", "vikings": "MIN", "washington commanders": "WAS",
	"commanders": "WAS",

	// AFC East
	"buf": "BUF", "ne": "NE", "mia": "MIA", "nyj": "NYJ",
	// AFC North
	"bal": "BAL", "cin": "CIN", "cle": "CLE", "pit": "PIT",
	// AFC South
	"hou": "HOU", "ind": "IND", "jax": "JAX", "ten": "TEN",
	// AFC West
	"den": "DEN", "kc": "KC", "lac": "LAC", "lv": "LV",
	// NFC East
	"dal": "DAL", "nyg": "NYG", "phi": "PHI", "was": "WAS",
	// NFC North
	"chi": "CHI", "det": "DET", "gb": "GB", "min": "MIN",
	// NFC South
	"atl": "ATL", "car": "CAR", "no": "NO", "tb": "TB",
	// NFC West
	"ari": "ARI", "lar": "LAR", "sf": "SF", "sea": "SEA",
}

// canonicalCodes is the set of valid abbreviation values, for matching
// inputs already given as an uppercase code.
var canonicalCodes = func() map[string]bool {
	set := make(map[string]bool, len(teamAbbreviations))
	for _, code := range teamAbbreviations {
		set[code] = true
	}
	return set
}()

// Normalize resolves a team nickname or abbreviation to its canonical
// code. Unknown input is passed through uppercased, so an exact code the
// table doesn't list still works against the stat sheet.
func Normalize(input string) string {
	if code, ok := teamAbbreviations[strings.ToLower(strings.TrimSpace(input))]; ok {
		return code
	}
	return strings.ToUpper(strings.TrimSpace(input))
}

// IsTeamInput reports whether the input looks like a team rather than a
// player name.
func IsTeamInput(input string) bool {
	trimmed := strings.TrimSpace(input)
	if _, ok := teamAbbreviations[strings.ToLower(trimmed)]; ok {
		return true
	}
	return canonicalCodes[strings.ToUpper(trimmed)]
}
