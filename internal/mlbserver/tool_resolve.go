package mlbserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/anatolykoptev/go_mlb/internal/engine/mlb"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ResolveTeamInput struct {
	Team string `json:"team" jsonschema:"Team name in any common form (e.g. yankees, Boston, LA Dodgers)"`
}

type ResolveTeamOutput struct {
	TeamID      int      `json:"team_id"`
	TeamName    string   `json:"team_name"`
	SearchTerms []string `json:"search_terms"`
}

func registerResolveTeam(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_team",
		Description: "Resolve a loosely written MLB team name (city, nickname, abbreviation) to its canonical Stats API team id and official name. Also returns the alias search terms used for news and video lookups.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ResolveTeamInput) (*mcp.CallToolResult, ResolveTeamOutput, error) {
		if input.Team == "" {
			return nil, ResolveTeamOutput{}, fmt.Errorf("team is required")
		}

		id, name, err := mlb.Default().Resolve(ctx, input.Team)
		if err != nil {
			if errors.Is(err, mlb.ErrTeamNotFound) {
				return nil, ResolveTeamOutput{}, fmt.Errorf("no MLB team matches %q", input.Team)
			}
			return nil, ResolveTeamOutput{}, err
		}

		return nil, ResolveTeamOutput{
			TeamID:      id,
			TeamName:    name,
			SearchTerms: mlb.SearchTerms(input.Team),
		}, nil
	})
}
