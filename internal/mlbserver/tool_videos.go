package mlbserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_mlb/internal/engine/sources"
	"github.com/anatolykoptev/go_mlb/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type VideoSearchInput struct {
	Query      string `json:"query" jsonschema:"Video search keywords (e.g. yankees highlights analysis)"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum videos to return (default: 10, max: 25)"`
	Mode       string `json:"mode,omitempty" jsonschema:"Search path: api (YouTube Data API, needs key), scrape (public results page), or empty for api when a key is configured, else scrape"`
}

type VideoSearchOutput struct {
	Query  string              `json:"query"`
	Videos []sources.VideoItem `json:"videos"`
}

func registerVideoSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_search",
		Description: "Search YouTube for recent videos, ranked by freshness and view count. Uses the Data API when a key is configured, otherwise scrapes the public results page. Scraped view counts are loose-text approximations (1.2M etc).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input VideoSearchInput) (*mcp.CallToolResult, VideoSearchOutput, error) {
		if input.Query == "" {
			return nil, VideoSearchOutput{}, fmt.Errorf("query is required")
		}
		maxResults := toolutil.ClampLimit(input.MaxResults, 10, 25)

		mode := sources.SearchMode(input.Mode)
		switch mode {
		case sources.ModeAuto, sources.ModeAPI, sources.ModeScrape:
		default:
			return nil, VideoSearchOutput{}, fmt.Errorf("unknown mode %q (want api, scrape, or empty)", input.Mode)
		}

		videos, err := sources.SearchVideos(ctx, input.Query, maxResults, mode)
		if err != nil {
			return nil, VideoSearchOutput{}, fmt.Errorf("video search: %w", err)
		}
		if videos == nil {
			videos = []sources.VideoItem{}
		}
		return nil, VideoSearchOutput{Query: input.Query, Videos: videos}, nil
	})
}
