package mlbserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_mlb/internal/engine/mlb"
	"github.com/anatolykoptev/go_mlb/internal/engine/sources"
	"github.com/anatolykoptev/go_mlb/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TeamNewsInput struct {
	Team       string `json:"team" jsonschema:"Team name in any common form; used to build the news query"`
	DaysBack   int    `json:"days_back,omitempty" jsonschema:"How many days of history to search (default: 7, max: 30)"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum articles to return (default: 10, max: 50)"`
}

type TeamNewsOutput struct {
	Query    string            `json:"query"`
	Articles []sources.Article `json:"articles"`
}

func registerTeamNews(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "team_news",
		Description: "Search recent news articles about an MLB team. Returns title, source, publish time, link, and a cleaned description per article. Returns an empty list when no news API key is configured.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input TeamNewsInput) (*mcp.CallToolResult, TeamNewsOutput, error) {
		if input.Team == "" {
			return nil, TeamNewsOutput{}, fmt.Errorf("team is required")
		}

		daysBack := toolutil.ClampLimit(input.DaysBack, 7, 30)
		maxResults := toolutil.ClampLimit(input.MaxResults, 10, 50)

		query := input.Team
		if terms := mlb.SearchTerms(input.Team); len(terms) > 0 {
			query = terms[0]
		}

		articles, err := sources.SearchNews(ctx, query, daysBack, maxResults)
		if err != nil {
			return nil, TeamNewsOutput{}, fmt.Errorf("news search: %w", err)
		}
		if articles == nil {
			articles = []sources.Article{}
		}
		return nil, TeamNewsOutput{Query: query, Articles: articles}, nil
	})
}
