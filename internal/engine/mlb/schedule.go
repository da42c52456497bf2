package mlb

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/anatolykoptev/go_mlb/internal/engine"
)

const scheduleDateLayout = "2006-01-02"

// terminalStates are the schedule statuses that mean a game already happened.
// Upstream status text is free-form; these two are the recognized spellings.
var terminalStates = map[string]bool{
	"final":     true,
	"game over": true,
}

// Game is one normalized schedule entry for a team.
type Game struct {
	GamePk   int64     `json:"game_pk"`
	GameDate time.Time `json:"game_date"`
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`
	IsHome   bool      `json:"is_home"`
	Opponent string    `json:"opponent"`
	Venue    string    `json:"venue,omitempty"`
	Status   string    `json:"status"`
}

// Final reports whether the game's status is a terminal state.
func (g *Game) Final() bool {
	return terminalStates[strings.ToLower(g.Status)]
}

type scheduleResponse struct {
	Dates []struct {
		Games []scheduleGame `json:"games"`
	} `json:"dates"`
}

type scheduleGame struct {
	GamePk   int64  `json:"gamePk"`
	GameDate string `json:"gameDate"`
	Status   struct {
		DetailedState     string `json:"detailedState"`
		AbstractGameState string `json:"abstractGameState"`
	} `json:"status"`
	Teams struct {
		Home scheduleSide `json:"home"`
		Away scheduleSide `json:"away"`
	} `json:"teams"`
	Venue struct {
		Name string `json:"name"`
	} `json:"venue"`
}

type scheduleSide struct {
	Team struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
}

// Schedule fetches the team's games between start and end (inclusive dates)
// and normalizes them. Rows missing the game id, either team name, or the
// opponent are dropped silently; one malformed row never fails the batch.
func (c *Client) Schedule(ctx context.Context, teamID int, start, end time.Time) ([]Game, error) {
	engine.IncrScheduleRequests()

	params := url.Values{}
	params.Set("teamId", fmt.Sprintf("%d", teamID))
	params.Set("sportId", "1")
	params.Set("startDate", start.UTC().Format(scheduleDateLayout))
	params.Set("endDate", end.UTC().Format(scheduleDateLayout))

	var resp scheduleResponse
	if err := c.getJSON(ctx, "/schedule", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}

	var games []Game
	for _, d := range resp.Dates {
		for _, g := range d.Games {
			if game, ok := normalizeGame(g, teamID); ok {
				games = append(games, game)
			}
		}
	}
	return games, nil
}

func normalizeGame(g scheduleGame, teamID int) (Game, bool) {
	home := g.Teams.Home.Team.Name
	away := g.Teams.Away.Team.Name
	isHome := g.Teams.Home.Team.ID == teamID
	opponent := home
	if isHome {
		opponent = away
	}
	if g.GamePk == 0 || home == "" || away == "" || opponent == "" {
		return Game{}, false
	}

	when := time.Now().UTC()
	if g.GameDate != "" {
		if t, err := time.Parse(time.RFC3339, g.GameDate); err == nil {
			when = t
		}
	}

	status := g.Status.DetailedState
	if status == "" {
		status = g.Status.AbstractGameState
	}

	return Game{
		GamePk:   g.GamePk,
		GameDate: when,
		HomeTeam: home,
		AwayTeam: away,
		IsHome:   isHome,
		Opponent: opponent,
		Venue:    g.Venue.Name,
		Status:   status,
	}, true
}

// NextGame returns the team's next upcoming game within windowDays of from,
// or nil when the window holds none. A game scheduled earlier today that has
// already gone final is skipped; "next" means not started and not in the past.
// from is coerced to UTC before any comparison.
func (c *Client) NextGame(ctx context.Context, teamID int, from time.Time, windowDays int) (*Game, error) {
	if from.IsZero() {
		from = time.Now()
	}
	from = from.UTC()
	if windowDays <= 0 {
		windowDays = 14
	}

	games, err := c.Schedule(ctx, teamID, from, from.AddDate(0, 0, windowDays))
	if err != nil {
		return nil, err
	}

	sort.Slice(games, func(i, j int) bool { return games[i].GameDate.Before(games[j].GameDate) })
	for i := range games {
		if !games[i].GameDate.Before(from) && !games[i].Final() {
			return &games[i], nil
		}
	}
	return nil, nil
}
