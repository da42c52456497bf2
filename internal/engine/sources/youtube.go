package sources

// YouTube implementation is split across files by responsibility:
//   youtube.go            — VideoItem, mode dispatch, loose-text parsing, ranking
//   youtube_api.go        — Data API v3 path (search + batched statistics)
//   youtube_scrape.go     — ytInitialData scraping path
//   youtube_innertube.go  — Innertube types, constants, and low-level HTTP primitives
//   youtube_transcript.go — transcript fetching (watch page + ANDROID player fallback)

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go_mlb/internal/engine"
)

// VideoItem is one normalized video search result. ViewCount is nil when the
// upstream gave none, or gave text the loose parser could not read.
type VideoItem struct {
	VideoID   string `json:"video_id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Channel   string `json:"channel,omitempty"`
	ViewCount *int64 `json:"view_count,omitempty"`
}

// SearchMode selects between the authenticated Data API path and the
// unauthenticated scraping path.
type SearchMode string

const (
	ModeAuto   SearchMode = ""       // API when a key is configured, else scrape
	ModeAPI    SearchMode = "api"    // force Data API (fails without a key)
	ModeScrape SearchMode = "scrape" // force scraping
)

// SearchVideos returns up to maxResults videos for the query. With a
// configured API key (and mode not forcing scrape) it uses the Data API with
// exact view counts; otherwise it scrapes the search results page and parses
// loose view-count and publish-time text.
func SearchVideos(ctx context.Context, query string, maxResults int, mode SearchMode) ([]VideoItem, error) {
	engine.IncrVideoSearch()
	if maxResults <= 0 {
		maxResults = 10
	}

	useAPI := engine.Cfg.YouTubeAPIKey != ""
	switch mode {
	case ModeAPI:
		useAPI = true
	case ModeScrape:
		useAPI = false
	}

	if useAPI {
		return searchVideosDataAPI(ctx, query, maxResults)
	}
	return searchVideosScrape(ctx, query, maxResults)
}

var viewCountRE = regexp.MustCompile(`^([0-9]*\.?[0-9]+)\s*([kmb])?`)
var digitsRE = regexp.MustCompile(`[^0-9]`)

// parseViewCount reads loose view-count text ("2.3M views", "45,212 views",
// "1.5K") into a number. Returns nil for unparseable text.
func parseViewCount(text string) *int64 {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "views", "")
	text = strings.ReplaceAll(text, ",", "")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if m := viewCountRE.FindStringSubmatch(text); m != nil {
		num, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			switch m[2] {
			case "k":
				num *= 1_000
			case "m":
				num *= 1_000_000
			case "b":
				num *= 1_000_000_000
			}
			n := int64(num)
			return &n
		}
	}

	digits := digitsRE.ReplaceAllString(text, "")
	if digits == "" {
		return nil
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// parseRelativeTime turns a phrase like "3 hours ago" or "2 weeks ago" into an
// absolute timestamp relative to now. Months are approximated as 30 days and
// years as 365. Anything not ending in "ago" returns nil.
func parseRelativeTime(text string, now time.Time) *time.Time {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(parts) < 3 || parts[len(parts)-1] != "ago" {
		return nil
	}
	num, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}

	var delta time.Duration
	unit := parts[1]
	switch {
	case strings.HasPrefix(unit, "second"):
		delta = time.Duration(num) * time.Second
	case strings.HasPrefix(unit, "minute"):
		delta = time.Duration(num) * time.Minute
	case strings.HasPrefix(unit, "hour"):
		delta = time.Duration(num) * time.Hour
	case strings.HasPrefix(unit, "day"):
		delta = time.Duration(num) * 24 * time.Hour
	case strings.HasPrefix(unit, "week"):
		delta = time.Duration(num) * 7 * 24 * time.Hour
	case strings.HasPrefix(unit, "month"):
		delta = time.Duration(num) * 30 * 24 * time.Hour
	case strings.HasPrefix(unit, "year"):
		delta = time.Duration(num) * 365 * 24 * time.Hour
	default:
		return nil
	}
	t := now.Add(-delta)
	return &t
}

// scrapedVideo pairs a VideoItem with the loose timestamp parsed alongside it.
type scrapedVideo struct {
	item      VideoItem
	published *time.Time
}

// rankScraped orders scrape results. Upload freshness is the better signal
// when any timestamp resolved at all; when none did (noisy scrape output),
// degrade to popularity rather than an unstable order. Missing values sort
// last in both regimes.
func rankScraped(raw []scrapedVideo) {
	anyPublished := false
	for _, r := range raw {
		if r.published != nil {
			anyPublished = true
			break
		}
	}

	if anyPublished {
		sort.SliceStable(raw, func(i, j int) bool {
			ti, tj := time.Time{}, time.Time{}
			if raw[i].published != nil {
				ti = *raw[i].published
			}
			if raw[j].published != nil {
				tj = *raw[j].published
			}
			return ti.After(tj)
		})
		return
	}

	sort.SliceStable(raw, func(i, j int) bool {
		return viewsOrMinusOne(raw[i].item.ViewCount) > viewsOrMinusOne(raw[j].item.ViewCount)
	})
}

func viewsOrMinusOne(v *int64) int64 {
	if v == nil {
		return -1
	}
	return *v
}
