// Package sources holds the external content clients: news search (NewsAPI)
// and YouTube video search with its scraping fallback and transcript fetcher.
package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/anatolykoptev/go_mlb/internal/engine"
)

// Article is one normalized news result.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
}

type newsResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// SearchNews fetches recent articles about a topic from the everything
// endpoint, windowed to the last daysBack days. The query is passed through
// untouched — no sport-specific keywords are injected, so the function reuses
// across domains. A missing API key degrades to an empty result, not an error.
func SearchNews(ctx context.Context, query string, daysBack, maxResults int) ([]Article, error) {
	if engine.Cfg.NewsAPIKey == "" {
		slog.Warn("news: NEWS_API_KEY not configured, returning empty results")
		return nil, nil
	}
	if daysBack <= 0 {
		daysBack = 7
	}
	if maxResults <= 0 || maxResults > 100 {
		maxResults = 10
	}
	engine.IncrNewsRequests()

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -daysBack)

	params := url.Values{}
	params.Set("q", query)
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", to.Format("2006-01-02"))
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(maxResults))
	params.Set("apiKey", engine.Cfg.NewsAPIKey)

	var resp newsResponse
	if err := engine.GetJSON(ctx, engine.Cfg.NewsAPIBase+"/everything", params, &resp); err != nil {
		return nil, fmt.Errorf("news search: %w", err)
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("news search: upstream status %q", resp.Status)
	}

	articles := make([]Article, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == "" && a.URL == "" {
			continue // malformed row, drop it and keep going
		}
		published := time.Now().UTC()
		if a.PublishedAt != "" {
			if t, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
				published = t
			}
		}
		source := a.Source.Name
		if source == "" {
			source = "Unknown"
		}
		articles = append(articles, Article{
			Title:       a.Title,
			Description: engine.CleanHTML(a.Description),
			URL:         a.URL,
			Source:      source,
			PublishedAt: published,
			Thumbnail:   a.URLToImage,
		})
	}

	slog.Info("news: search complete", slog.String("query", query), slog.Int("count", len(articles)))
	return articles, nil
}
