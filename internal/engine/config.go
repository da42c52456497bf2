package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	StatsAPIBase  string // MLB Stats API root, e.g. https://statsapi.mlb.com/api/v1
	NewsAPIBase   string // NewsAPI root, e.g. https://newsapi.org/v2
	NewsAPIKey    string // empty = news search disabled (degrades to empty results)
	YouTubeAPIKey string // empty = video search uses the scraping path

	FetchTimeout time.Duration // per upstream round trip

	HTTPClient *http.Client
	LLMClient  *llm.Client // nil = report summaries disabled
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (mlb, sources, intel).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
