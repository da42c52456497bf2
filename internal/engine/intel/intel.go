// Package intel aggregates news and video intelligence for a team into one
// request-scoped payload and renders human-readable reports from it.
package intel

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/anatolykoptev/go_mlb/internal/engine"
	"github.com/anatolykoptev/go_mlb/internal/engine/mlb"
	"github.com/anatolykoptev/go_mlb/internal/engine/sources"
)

// TeamIntelligence is the aggregate payload for one team. Created fresh per
// call, never persisted.
type TeamIntelligence struct {
	TeamName    string              `json:"team_name"`
	News        []sources.Article   `json:"news"`
	Videos      []sources.VideoItem `json:"videos"`
	GeneratedAt time.Time           `json:"generated_at"`
	Summary     string              `json:"summary,omitempty"`
}

// GetTeamIntelligence fans out to the news and video searchers for one team.
// The sources share no failure domain: each failing branch degrades to an
// empty list with a warning, never a failed call. When an LLM client is
// configured, a short narrative summary is attached over whatever came back.
func GetTeamIntelligence(ctx context.Context, teamName string, daysBack, maxNews, maxVideos int) TeamIntelligence {
	engine.IncrIntelRequests()
	if daysBack <= 0 {
		daysBack = 7
	}
	if maxNews <= 0 {
		maxNews = 10
	}
	if maxVideos <= 0 {
		maxVideos = 10
	}

	terms := mlb.SearchTerms(teamName)
	primary := teamName
	if len(terms) > 0 {
		primary = terms[0]
	}

	newsCh := make(chan []sources.Article, 1)
	videoCh := make(chan []sources.VideoItem, 1)

	go func() {
		articles, err := sources.SearchNews(ctx, primary, daysBack, maxNews)
		if err != nil {
			slog.Warn("intel: news source failed", slog.String("team", primary), slog.Any("error", err))
		}
		newsCh <- articles
	}()
	go func() {
		query := primary + " MLB baseball highlights analysis"
		videos, err := sources.SearchVideos(ctx, query, maxVideos, sources.ModeAuto)
		if err != nil {
			slog.Warn("intel: video source failed", slog.String("team", primary), slog.Any("error", err))
		}
		videoCh <- videos
	}()

	out := TeamIntelligence{
		TeamName:    primary,
		News:        <-newsCh,
		Videos:      <-videoCh,
		GeneratedAt: time.Now().UTC(),
	}
	if out.News == nil {
		out.News = []sources.Article{}
	}
	if out.Videos == nil {
		out.Videos = []sources.VideoItem{}
	}

	if engine.LLMEnabled() && (len(out.News) > 0 || len(out.Videos) > 0) {
		out.Summary = summarize(ctx, out)
	}
	return out
}

// GetOpponentAnalysis gathers intelligence for both sides of a matchup. The
// two calls run independently; neither can fail the other.
func GetOpponentAnalysis(ctx context.Context, team1, team2 string, daysBack, maxNews, maxVideos int) (TeamIntelligence, TeamIntelligence) {
	var a, b TeamIntelligence
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a = GetTeamIntelligence(ctx, team1, daysBack, maxNews, maxVideos)
	}()
	go func() {
		defer wg.Done()
		b = GetTeamIntelligence(ctx, team2, daysBack, maxNews, maxVideos)
	}()
	wg.Wait()
	return a, b
}

func summarize(ctx context.Context, ti TeamIntelligence) string {
	headlines := make([]string, 0, len(ti.News))
	for _, a := range ti.News {
		headlines = append(headlines, a.Title)
	}
	titles := make([]string, 0, len(ti.Videos))
	for _, v := range ti.Videos {
		titles = append(titles, v.Title)
	}
	summary, err := engine.SummarizeIntel(ctx, ti.TeamName, headlines, titles)
	if err != nil {
		slog.Warn("intel: summary failed", slog.String("team", ti.TeamName), slog.Any("error", err))
		return ""
	}
	return summary
}
