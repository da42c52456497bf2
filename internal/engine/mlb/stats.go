package mlb

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/anatolykoptev/go_mlb/internal/engine"
)

// StatLine holds a season's aggregated team totals. Hitting/Pitching values
// stay as the raw JSON scalars the Stats API returns (numbers and formatted
// strings like ".267"); numeric coercion happens at comparison time. Absent
// maps mean "stats unavailable", not an error.
type StatLine struct {
	Season   int            `json:"season"`
	Hitting  map[string]any `json:"hitting,omitempty"`
	Pitching map[string]any `json:"pitching,omitempty"`
}

// statGroups is a strategy result: group display name → stat map.
type statGroups map[string]map[string]any

func (g statGroups) empty() bool {
	return len(g["hitting"]) == 0 && len(g["pitching"]) == 0
}

// TeamStats returns the team's season hitting/pitching totals, with season 0
// defaulting to the current calendar year.
//
// The same upstream system exposes the data in three shapes; they are tried in
// order and the first yielding any hitting or pitching wins. Every failure is
// local to its strategy. When all three come up empty the season-only stub is
// returned — deliberately not an error, callers treat missing groups as
// "unavailable".
func (c *Client) TeamStats(ctx context.Context, teamID, season int) StatLine {
	if season <= 0 {
		season = time.Now().Year()
	}
	engine.IncrStatsRequests()

	strategies := []struct {
		name string
		fn   func(ctx context.Context, teamID, season int) (statGroups, error)
	}{
		{"league-wide", c.leagueStats},
		{"per-team", c.perTeamStats},
		{"hydrated", c.hydratedStats},
	}

	line := StatLine{Season: season}
	for _, s := range strategies {
		groups, err := s.fn(ctx, teamID, season)
		if err != nil {
			slog.Debug("stats strategy failed", slog.String("strategy", s.name), slog.Int("team", teamID), slog.Any("error", err))
			continue
		}
		if groups.empty() {
			slog.Debug("stats strategy empty", slog.String("strategy", s.name), slog.Int("team", teamID))
			continue
		}
		line.Hitting = groups["hitting"]
		line.Pitching = groups["pitching"]
		return line
	}
	return line
}

func statsParams(season int) url.Values {
	return url.Values{
		"group":   {"hitting", "pitching"},
		"stats":   {"season"},
		"season":  {strconv.Itoa(season)},
		"sportId": {"1"},
	}
}

type statsResponse struct {
	Stats []struct {
		Group struct {
			DisplayName string `json:"displayName"`
		} `json:"group"`
		Splits []struct {
			Team struct {
				ID int `json:"id"`
			} `json:"team"`
			Stat map[string]any `json:"stat"`
		} `json:"splits"`
	} `json:"stats"`
}

// leagueStats queries the league-wide splits endpoint and filters to our team.
func (c *Client) leagueStats(ctx context.Context, teamID, season int) (statGroups, error) {
	var resp statsResponse
	if err := c.getJSON(ctx, "/teams/stats", statsParams(season), &resp); err != nil {
		return nil, err
	}

	groups := statGroups{}
	for _, r := range resp.Stats {
		group := groupKey(r.Group.DisplayName)
		if group == "" {
			continue
		}
		for _, sp := range r.Splits {
			if sp.Team.ID == teamID && len(sp.Stat) > 0 {
				groups[group] = sp.Stat
				break
			}
		}
	}
	return groups, nil
}

// perTeamStats queries the single-team splits endpoint.
func (c *Client) perTeamStats(ctx context.Context, teamID, season int) (statGroups, error) {
	var resp statsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/teams/%d/stats", teamID), statsParams(season), &resp); err != nil {
		return nil, err
	}

	groups := statGroups{}
	for _, r := range resp.Stats {
		group := groupKey(r.Group.DisplayName)
		if group == "" {
			continue
		}
		for _, sp := range r.Splits {
			if len(sp.Stat) > 0 {
				groups[group] = sp.Stat
				break
			}
		}
	}
	return groups, nil
}

type hydrateResponse struct {
	Teams []struct {
		TeamStats []struct {
			Group struct {
				DisplayName string `json:"displayName"`
			} `json:"group"`
			Splits []struct {
				Group struct {
					DisplayName string `json:"displayName"`
				} `json:"group"`
				Stat map[string]any `json:"stat"`
			} `json:"splits"`
		} `json:"teamStats"`
	} `json:"teams"`
}

// hydratedStats pulls stats embedded in the team detail endpoint.
func (c *Client) hydratedStats(ctx context.Context, teamID, season int) (statGroups, error) {
	params := url.Values{}
	params.Set("teamId", strconv.Itoa(teamID))
	params.Set("season", strconv.Itoa(season))
	params.Set("sportId", "1")
	params.Set("hydrate", "teamStats(group=[hitting,pitching],type=[season])")

	var resp hydrateResponse
	if err := c.getJSON(ctx, "/teams", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Teams) == 0 {
		return statGroups{}, nil
	}

	groups := statGroups{}
	for _, ts := range resp.Teams[0].TeamStats {
		// group sits on the stat block or inside the split, depending on shape
		for _, sp := range ts.Splits {
			group := groupKey(ts.Group.DisplayName)
			if group == "" {
				group = groupKey(sp.Group.DisplayName)
			}
			if group != "" && len(sp.Stat) > 0 {
				groups[group] = sp.Stat
			}
		}
	}
	return groups, nil
}

func groupKey(displayName string) string {
	switch displayName {
	case "hitting", "Hitting":
		return "hitting"
	case "pitching", "Pitching":
		return "pitching"
	}
	return ""
}

// MetricPair holds [team1, team2] values for one metric; nil marks a value
// that was absent or non-numeric on that side.
type MetricPair [2]*float64

// Comparison is a side-by-side numeric comparison of two teams' StatLines.
type Comparison struct {
	Season   int                   `json:"season"`
	Hitting  map[string]MetricPair `json:"hitting"`
	Pitching map[string]MetricPair `json:"pitching"`
}

var (
	hittingMetrics  = []string{"avg", "obp", "slg", "runs", "homeRuns"}
	pitchingMetrics = []string{"era", "whip", "strikeOuts"}
)

// Compare fetches both teams' StatLines independently and zips the headline
// hitting and pitching metrics into pairs. A metric missing or non-numeric on
// either side becomes a nil slot, never an error.
func (c *Client) Compare(ctx context.Context, team1ID, team2ID, season int) Comparison {
	s1 := c.TeamStats(ctx, team1ID, season)
	s2 := c.TeamStats(ctx, team2ID, season)

	cmp := Comparison{
		Season:   s1.Season,
		Hitting:  make(map[string]MetricPair, len(hittingMetrics)),
		Pitching: make(map[string]MetricPair, len(pitchingMetrics)),
	}
	for _, m := range hittingMetrics {
		cmp.Hitting[m] = MetricPair{asFloat(s1.Hitting[m]), asFloat(s2.Hitting[m])}
	}
	for _, m := range pitchingMetrics {
		cmp.Pitching[m] = MetricPair{asFloat(s1.Pitching[m]), asFloat(s2.Pitching[m])}
	}
	return cmp
}

// asFloat coerces a raw Stats API scalar to a float, nil when it can't.
// The API mixes JSON numbers with formatted strings like ".267" and "3.52".
func asFloat(v any) *float64 {
	switch x := v.(type) {
	case float64:
		return &x
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil
		}
		return &f
	case int:
		f := float64(x)
		return &f
	}
	return nil
}
