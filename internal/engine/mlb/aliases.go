package mlb

import (
	"strings"

	"github.com/anatolykoptev/go_mlb/internal/engine"
)

// aliasGroup maps a normalized key phrase to the display-name variants used
// as resolver candidate terms and news search terms. Kept as an ordered slice
// so matching is deterministic when an input hits more than one group
// ("sox" matches both "red sox" and "white sox" — first group wins).
type aliasGroup struct {
	key     string
	aliases []string
}

var teamAliases = []aliasGroup{
	{"yankees", []string{"Yankees", "New York Yankees", "NY Yankees"}},
	{"red sox", []string{"Red Sox", "Boston Red Sox"}},
	{"dodgers", []string{"Dodgers", "Los Angeles Dodgers", "LA Dodgers"}},
	{"giants", []string{"Giants", "San Francisco Giants", "SF Giants"}},
	{"cubs", []string{"Cubs", "Chicago Cubs"}},
	{"mets", []string{"Mets", "New York Mets", "NY Mets"}},
	{"astros", []string{"Astros", "Houston Astros"}},
	{"braves", []string{"Braves", "Atlanta Braves"}},
	{"phillies", []string{"Phillies", "Philadelphia Phillies"}},
	{"padres", []string{"Padres", "San Diego Padres"}},
	{"angels", []string{"Angels", "Los Angeles Angels", "LA Angels"}},
	{"mariners", []string{"Mariners", "Seattle Mariners"}},
	{"rangers", []string{"Rangers", "Texas Rangers"}},
	{"athletics", []string{"Athletics", "Oakland Athletics", "A's"}},
	{"blue jays", []string{"Blue Jays", "Toronto Blue Jays"}},
	{"orioles", []string{"Orioles", "Baltimore Orioles"}},
	{"rays", []string{"Rays", "Tampa Bay Rays"}},
	{"white sox", []string{"White Sox", "Chicago White Sox"}},
	{"guardians", []string{"Guardians", "Cleveland Guardians"}},
	{"tigers", []string{"Tigers", "Detroit Tigers"}},
	{"twins", []string{"Twins", "Minnesota Twins"}},
	{"royals", []string{"Royals", "Kansas City Royals"}},
	{"cardinals", []string{"Cardinals", "St. Louis Cardinals"}},
	{"brewers", []string{"Brewers", "Milwaukee Brewers"}},
	{"reds", []string{"Reds", "Cincinnati Reds"}},
	{"pirates", []string{"Pirates", "Pittsburgh Pirates"}},
	{"nationals", []string{"Nationals", "Washington Nationals"}},
	{"marlins", []string{"Marlins", "Miami Marlins"}},
	{"diamondbacks", []string{"Diamondbacks", "Arizona Diamondbacks"}},
	{"rockies", []string{"Rockies", "Colorado Rockies"}},
}

// SearchTerms returns the name variants to try for a user-provided team string.
// The input matches an alias group when it is a substring of the group key or
// of any variant (case-insensitive). Unknown inputs fall back to the input
// itself in title case.
func SearchTerms(teamInput string) []string {
	needle := strings.ToLower(strings.TrimSpace(teamInput))
	if needle == "" {
		return nil
	}
	for _, g := range teamAliases {
		if strings.Contains(g.key, needle) {
			return g.aliases
		}
		for _, a := range g.aliases {
			if strings.Contains(strings.ToLower(a), needle) {
				return g.aliases
			}
		}
	}
	return []string{engine.TitleCase(needle)}
}
