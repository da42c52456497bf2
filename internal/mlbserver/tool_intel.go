package mlbserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_mlb/internal/engine/intel"
	"github.com/anatolykoptev/go_mlb/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TeamIntelligenceInput struct {
	Team      string `json:"team" jsonschema:"Team name in any common form"`
	Opponent  string `json:"opponent,omitempty" jsonschema:"Second team for a matchup analysis (optional)"`
	DaysBack  int    `json:"days_back,omitempty" jsonschema:"How many days of history to cover (default: 7, max: 30)"`
	MaxNews   int    `json:"max_news,omitempty" jsonschema:"Maximum news articles (default: 10, max: 50)"`
	MaxVideos int    `json:"max_videos,omitempty" jsonschema:"Maximum videos (default: 10, max: 25)"`
	Report    bool   `json:"report,omitempty" jsonschema:"Also include a rendered markdown report"`
}

type TeamIntelligenceOutput struct {
	Team     intel.TeamIntelligence  `json:"team"`
	Opponent *intel.TeamIntelligence `json:"opponent,omitempty"`
	Report   string                  `json:"report,omitempty"`
}

func registerTeamIntelligence(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "team_intelligence",
		Description: "Aggregate recent news and videos for an MLB team into one payload, gathered in parallel; a failing source degrades to an empty list rather than failing the call. Pass opponent for a two-team matchup analysis, report=true for a markdown digest.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input TeamIntelligenceInput) (*mcp.CallToolResult, TeamIntelligenceOutput, error) {
		if input.Team == "" {
			return nil, TeamIntelligenceOutput{}, fmt.Errorf("team is required")
		}

		daysBack := toolutil.ClampLimit(input.DaysBack, 7, 30)
		maxNews := toolutil.ClampLimit(input.MaxNews, 10, 50)
		maxVideos := toolutil.ClampLimit(input.MaxVideos, 10, 25)

		if input.Opponent != "" {
			a, b := intel.GetOpponentAnalysis(ctx, input.Team, input.Opponent, daysBack, maxNews, maxVideos)
			out := TeamIntelligenceOutput{Team: a, Opponent: &b}
			if input.Report {
				out.Report = intel.RenderMatchup(a, b)
			}
			return nil, out, nil
		}

		ti := intel.GetTeamIntelligence(ctx, input.Team, daysBack, maxNews, maxVideos)
		out := TeamIntelligenceOutput{Team: ti}
		if input.Report {
			out.Report = intel.RenderReport(ti)
		}
		return nil, out, nil
	})
}
