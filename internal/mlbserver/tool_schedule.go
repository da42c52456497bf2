package mlbserver

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/anatolykoptev/go_mlb/internal/engine/mlb"
	"github.com/anatolykoptev/go_mlb/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TeamScheduleInput struct {
	Team      string `json:"team" jsonschema:"Team name in any common form (e.g. red sox, Toronto)"`
	StartDate string `json:"start_date,omitempty" jsonschema:"Window start as YYYY-MM-DD or RFC3339 (default: today)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"Window end as YYYY-MM-DD or RFC3339 (default: start + 14 days)"`
}

type TeamScheduleOutput struct {
	TeamID   int        `json:"team_id"`
	TeamName string     `json:"team_name"`
	Games    []mlb.Game `json:"games"`
	NextGame *mlb.Game  `json:"next_game,omitempty"`
}

func registerTeamSchedule(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "team_schedule",
		Description: "Fetch a team's schedule for a date window and identify its next game that has not started or finished. Dates without a zone are read as UTC.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input TeamScheduleInput) (*mcp.CallToolResult, TeamScheduleOutput, error) {
		if input.Team == "" {
			return nil, TeamScheduleOutput{}, fmt.Errorf("team is required")
		}

		start := time.Now().UTC()
		if input.StartDate != "" {
			t, err := toolutil.ParseTime(input.StartDate)
			if err != nil {
				return nil, TeamScheduleOutput{}, fmt.Errorf("start_date: %w", err)
			}
			start = t
		}
		end := start.AddDate(0, 0, 14)
		if input.EndDate != "" {
			t, err := toolutil.ParseTime(input.EndDate)
			if err != nil {
				return nil, TeamScheduleOutput{}, fmt.Errorf("end_date: %w", err)
			}
			end = t
		}
		if end.Before(start) {
			return nil, TeamScheduleOutput{}, fmt.Errorf("end_date %s is before start_date %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
		}

		client := mlb.Default()
		id, name, err := client.Resolve(ctx, input.Team)
		if err != nil {
			if errors.Is(err, mlb.ErrTeamNotFound) {
				return nil, TeamScheduleOutput{}, fmt.Errorf("no MLB team matches %q", input.Team)
			}
			return nil, TeamScheduleOutput{}, err
		}

		games, err := client.Schedule(ctx, id, start, end)
		if err != nil {
			return nil, TeamScheduleOutput{}, fmt.Errorf("schedule fetch: %w", err)
		}

		sort.Slice(games, func(i, j int) bool { return games[i].GameDate.Before(games[j].GameDate) })

		windowDays := int(end.Sub(start).Hours()/24) + 1
		next, err := client.NextGame(ctx, id, start, windowDays)
		if err != nil {
			return nil, TeamScheduleOutput{}, fmt.Errorf("next game lookup: %w", err)
		}

		return nil, TeamScheduleOutput{TeamID: id, TeamName: name, Games: games, NextGame: next}, nil
	})
}
