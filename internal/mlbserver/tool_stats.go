package mlbserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anatolykoptev/go_mlb/internal/engine/mlb"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TeamStatsInput struct {
	Team   string `json:"team" jsonschema:"Team name in any common form"`
	Team2  string `json:"team2,omitempty" jsonschema:"Second team for a head-to-head comparison (optional)"`
	Season int    `json:"season,omitempty" jsonschema:"Season year (default: current year)"`
}

type TeamStatsOutput struct {
	TeamID     int             `json:"team_id"`
	TeamName   string          `json:"team_name"`
	Team2ID    int             `json:"team2_id,omitempty"`
	Team2Name  string          `json:"team2_name,omitempty"`
	Season     int             `json:"season"`
	Stats      *mlb.StatLine   `json:"stats,omitempty"`
	Comparison *mlb.Comparison `json:"comparison,omitempty"`
}

func registerTeamStats(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "team_stats",
		Description: "Fetch season hitting and pitching stats for an MLB team. Pass team2 to get a side-by-side comparison of key metrics (avg, obp, slg, runs, home runs, era, whip, strikeouts). Missing upstream data comes back as empty groups or null slots, never an error.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input TeamStatsInput) (*mcp.CallToolResult, TeamStatsOutput, error) {
		if input.Team == "" {
			return nil, TeamStatsOutput{}, fmt.Errorf("team is required")
		}
		season := input.Season
		if season <= 0 {
			season = time.Now().UTC().Year()
		}

		client := mlb.Default()
		id, name, err := client.Resolve(ctx, input.Team)
		if err != nil {
			if errors.Is(err, mlb.ErrTeamNotFound) {
				return nil, TeamStatsOutput{}, fmt.Errorf("no MLB team matches %q", input.Team)
			}
			return nil, TeamStatsOutput{}, err
		}

		out := TeamStatsOutput{TeamID: id, TeamName: name, Season: season}

		if input.Team2 == "" {
			line := client.TeamStats(ctx, id, season)
			out.Stats = &line
			return nil, out, nil
		}

		id2, name2, err := client.Resolve(ctx, input.Team2)
		if err != nil {
			if errors.Is(err, mlb.ErrTeamNotFound) {
				return nil, TeamStatsOutput{}, fmt.Errorf("no MLB team matches %q", input.Team2)
			}
			return nil, TeamStatsOutput{}, err
		}

		out.Team2ID = id2
		out.Team2Name = name2
		cmp := client.Compare(ctx, id, id2, season)
		out.Comparison = &cmp
		return nil, out, nil
	})
}
