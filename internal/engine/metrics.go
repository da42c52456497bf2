package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TeamsRequests           atomic.Int64
	ScheduleRequests        atomic.Int64
	StatsRequests           atomic.Int64
	NewsRequests            atomic.Int64
	VideoSearchRequests     atomic.Int64
	VideoTranscriptRequests atomic.Int64
	IntelRequests           atomic.Int64
	LLMCalls                atomic.Int64
	LLMErrors               atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"teams_requests":            metrics.TeamsRequests.Load(),
		"schedule_requests":         metrics.ScheduleRequests.Load(),
		"stats_requests":            metrics.StatsRequests.Load(),
		"news_requests":             metrics.NewsRequests.Load(),
		"video_search_requests":     metrics.VideoSearchRequests.Load(),
		"video_transcript_requests": metrics.VideoTranscriptRequests.Load(),
		"intel_requests":            metrics.IntelRequests.Load(),
		"llm_calls":                 metrics.LLMCalls.Load(),
		"llm_errors":                metrics.LLMErrors.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"teams_requests", "schedule_requests", "stats_requests",
		"news_requests",
		"video_search_requests", "video_transcript_requests",
		"intel_requests",
		"llm_calls", "llm_errors",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the mlb/ sub-package.
func IncrTeamsRequests()    { metrics.TeamsRequests.Add(1) }
func IncrScheduleRequests() { metrics.ScheduleRequests.Add(1) }
func IncrStatsRequests()    { metrics.StatsRequests.Add(1) }

// Incrementors for the sources/ sub-package.
func IncrNewsRequests()    { metrics.NewsRequests.Add(1) }
func IncrVideoSearch()     { metrics.VideoSearchRequests.Add(1) }
func IncrVideoTranscript() { metrics.VideoTranscriptRequests.Add(1) }

// Incrementors for the intel/ sub-package.
func IncrIntelRequests() { metrics.IntelRequests.Add(1) }
func IncrLLMCalls()      { metrics.LLMCalls.Add(1) }
func IncrLLMErrors()     { metrics.LLMErrors.Add(1) }
