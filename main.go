// go_mlb — MLB team intelligence MCP server.
//
// Exposes tools for team resolution, schedules, season stats, news, YouTube
// video search and transcripts, and an aggregated intelligence report.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_mlb/internal/engine"
	"github.com/anatolykoptev/go_mlb/internal/engine/mlb"
	"github.com/anatolykoptev/go_mlb/internal/mlbserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8894")
)

func main() {
	initEngine()

	slog.Info("starting go_mlb",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_mlb",
		Version: version,
	}, nil)

	mlbserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", mlbserver.ToolCount))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_mlb",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		StatsAPIBase:  env.Str("STATS_API_BASE", "https://statsapi.mlb.com/api/v1"),
		NewsAPIBase:   env.Str("NEWS_API_BASE", "https://newsapi.org/v2"),
		NewsAPIKey:    env.Str("NEWS_API_KEY", ""),
		YouTubeAPIKey: env.Str("YOUTUBE_API_KEY", ""),
		FetchTimeout:  env.Duration("FETCH_TIMEOUT", 20*time.Second),
		HTTPClient: &http.Client{
			Timeout: 25 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	if c.NewsAPIKey == "" {
		slog.Warn("NEWS_API_KEY not set, news search disabled")
	}
	if c.YouTubeAPIKey == "" {
		slog.Info("YOUTUBE_API_KEY not set, video search uses the scraping path")
	}
	if token := env.Str("TOOL_TOKEN", ""); token != "" {
		slog.Info("tool token configured, enforce it at the proxy layer")
	}

	if apiKey := env.Str("LLM_API_KEY", ""); apiKey != "" {
		c.LLMClient = llm.NewClient(
			env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
			apiKey,
			env.Str("LLM_MODEL", "gemini-2.5-flash"),
			llm.WithFallbackKeys(env.List("LLM_API_KEY_FALLBACKS", "")),
			llm.WithMaxTokens(env.Int("LLM_MAX_TOKENS", 1024)),
			llm.WithTemperature(env.Float("LLM_TEMPERATURE", 0.2)),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)
		slog.Info("llm client initialized, report summaries enabled")
	}

	engine.Init(c)

	mlb.SetDefault(mlb.NewClient(c.StatsAPIBase))
}
