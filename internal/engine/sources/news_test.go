package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anatolykoptev/go_mlb/internal/engine"
)

const newsFixture = `{"status":"ok","articles":[
  {"source":{"name":"ESPN"},"title":"Red Sox sweep Yankees",
   "description":"<p>Boston took all <b>three</b> games.</p>",
   "url":"https://example.com/a1","urlToImage":"https://example.com/a1.jpg",
   "publishedAt":"2025-06-14T18:30:00Z"},
  {"source":{"name":""},"title":"Trade deadline rumors",
   "description":"","url":"https://example.com/a2","publishedAt":"2025-06-13T09:00:00Z"},
  {"source":{"name":"Junk"},"title":"","description":"malformed","url":"","publishedAt":""}
]}`

func newsTestServer(t *testing.T, body string, status int) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/everything" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	engine.Init(engine.Config{
		NewsAPIBase:  srv.URL,
		NewsAPIKey:   "test-key",
		FetchTimeout: 5 * time.Second,
		HTTPClient:   srv.Client(),
	})
}

func TestSearchNews(t *testing.T) {
	newsTestServer(t, newsFixture, http.StatusOK)

	articles, err := SearchNews(context.Background(), "Red Sox", 7, 10)
	if err != nil {
		t.Fatalf("SearchNews: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2 (row without title and url dropped)", len(articles))
	}

	a := articles[0]
	if a.Title != "Red Sox sweep Yankees" {
		t.Errorf("title = %q", a.Title)
	}
	if a.Description != "Boston took all three games." {
		t.Errorf("description not cleaned: %q", a.Description)
	}
	if a.Source != "ESPN" {
		t.Errorf("source = %q, want ESPN", a.Source)
	}
	if a.Thumbnail != "https://example.com/a1.jpg" {
		t.Errorf("thumbnail = %q", a.Thumbnail)
	}
	want := time.Date(2025, 6, 14, 18, 30, 0, 0, time.UTC)
	if !a.PublishedAt.Equal(want) {
		t.Errorf("publishedAt = %v, want %v", a.PublishedAt, want)
	}

	if articles[1].Source != "Unknown" {
		t.Errorf("empty source name = %q, want Unknown", articles[1].Source)
	}
}

func TestSearchNewsNoKeyDegrades(t *testing.T) {
	engine.Init(engine.Config{FetchTimeout: 5 * time.Second, HTTPClient: http.DefaultClient})

	articles, err := SearchNews(context.Background(), "anything", 7, 10)
	if err != nil {
		t.Fatalf("SearchNews without key: want nil error, got %v", err)
	}
	if articles != nil {
		t.Errorf("SearchNews without key = %v, want nil", articles)
	}
}

func TestSearchNewsUpstreamError(t *testing.T) {
	newsTestServer(t, `{"status":"error","articles":[]}`, http.StatusOK)

	if _, err := SearchNews(context.Background(), "x", 7, 10); err == nil {
		t.Fatal("upstream status error: want error, got nil")
	}
}

func TestSearchNewsHTTPError(t *testing.T) {
	newsTestServer(t, `rate limited`, http.StatusTooManyRequests)

	if _, err := SearchNews(context.Background(), "x", 7, 10); err == nil {
		t.Fatal("HTTP 429: want error, got nil")
	}
}
