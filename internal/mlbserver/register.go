// Package mlbserver registers the MLB intelligence MCP tools: team resolution,
// schedules, stats, news, video search, transcripts, and the aggregated
// intelligence report.
package mlbserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all MLB tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerResolveTeam(server)
	registerTeamSchedule(server)
	registerTeamStats(server)
	registerTeamNews(server)
	registerVideoSearch(server)
	registerVideoTranscript(server)
	registerTeamIntelligence(server)
}

// ToolCount is the number of tools RegisterTools adds.
const ToolCount = 7
