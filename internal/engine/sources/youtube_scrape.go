package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anatolykoptev/go_mlb/internal/engine"
)

const (
	ytResultsURL        = "https://www.youtube.com/results?search_query="
	ytInitialDataMarker = "var ytInitialData = "
	ytSearchFilter      = "EgIQAQ%3D%3D" // videos-only filter param
	ytScrapeFloor       = 20            // minimum candidates pulled before ranking
)

// ytVideoRenderer is the slice of a search-results videoRenderer we care
// about: identity, title, channel, and the loose view-count / publish-time
// text the ranking parses.
type ytVideoRenderer struct {
	VideoID string `json:"videoId"`
	Title   struct {
		Runs []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"title"`
	OwnerText struct {
		Runs []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"ownerText"`
	ViewCountText struct {
		SimpleText string `json:"simpleText"`
	} `json:"viewCountText"`
	PublishedTimeText struct {
		SimpleText string `json:"simpleText"`
	} `json:"publishedTimeText"`
}

// searchVideosScrape pulls the public search results page and parses
// ytInitialData. No key needed; view counts and publish times are loose text
// approximations rather than exact counters.
func searchVideosScrape(ctx context.Context, query string, maxResults int) ([]VideoItem, error) {
	limit := max(ytScrapeFloor, maxResults)

	body, err := fetchResultsPage(ctx, query)
	if err != nil {
		return nil, err
	}

	idx := strings.Index(string(body), ytInitialDataMarker)
	if idx < 0 {
		return nil, fmt.Errorf("ytInitialData not found in search response")
	}
	jsonData := extractJSON(body[idx+len(ytInitialDataMarker):])
	if jsonData == nil {
		return nil, fmt.Errorf("failed to extract ytInitialData JSON")
	}

	raw := collectRenderers(jsonData, limit, time.Now().UTC())
	rankScraped(raw)

	if len(raw) > maxResults {
		raw = raw[:maxResults]
	}
	items := make([]VideoItem, len(raw))
	for i, r := range raw {
		items[i] = r.item
	}
	return items, nil
}

func fetchResultsPage(ctx context.Context, query string) ([]byte, error) {
	searchURL := ytResultsURL + url.QueryEscape(query) + "&sp=" + ytSearchFilter

	ctx, cancel := context.WithTimeout(ctx, engine.Cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", stealth.RandomUserAgent())
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube search page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube search page: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read youtube search response: %w", err)
	}
	return body, nil
}

// extractJSON extracts a complete JSON object starting at b[0] == '{' by
// tracking brace depth outside string literals.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	var prev byte
	for i, c := range b {
		if inStr {
			if c == '"' && prev != '\\' {
				inStr = false
			}
		} else {
			switch c {
			case '"':
				inStr = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return b[:i+1]
				}
			}
		}
		prev = c
	}
	return nil
}

// collectRenderers recursively walks ytInitialData for videoRenderer entries,
// parsing the loose count/time text as it goes. Entries without an id are
// dropped; everything else keeps going.
func collectRenderers(data []byte, limit int, now time.Time) []scrapedVideo {
	var results []scrapedVideo
	var walk func(v json.RawMessage)
	walk = func(v json.RawMessage) {
		if len(results) >= limit {
			return
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(v, &obj); err == nil {
			if raw, ok := obj["videoRenderer"]; ok {
				var vr ytVideoRenderer
				if err := json.Unmarshal(raw, &vr); err == nil && vr.VideoID != "" {
					results = append(results, renderToScraped(vr, now))
					return
				}
			}
			for _, child := range obj {
				if len(results) >= limit {
					return
				}
				walk(child)
			}
			return
		}
		var arr []json.RawMessage
		if err := json.Unmarshal(v, &arr); err == nil {
			for _, item := range arr {
				if len(results) >= limit {
					return
				}
				walk(item)
			}
		}
	}
	walk(data)
	return results
}

func renderToScraped(vr ytVideoRenderer, now time.Time) scrapedVideo {
	title := "(untitled)"
	if len(vr.Title.Runs) > 0 && vr.Title.Runs[0].Text != "" {
		title = vr.Title.Runs[0].Text
	}
	channel := ""
	if len(vr.OwnerText.Runs) > 0 {
		channel = vr.OwnerText.Runs[0].Text
	}

	var views *int64
	if vr.ViewCountText.SimpleText != "" {
		views = parseViewCount(vr.ViewCountText.SimpleText)
	}
	var published *time.Time
	if vr.PublishedTimeText.SimpleText != "" {
		published = parseRelativeTime(vr.PublishedTimeText.SimpleText, now)
	}

	return scrapedVideo{
		item: VideoItem{
			VideoID:   vr.VideoID,
			Title:     title,
			URL:       "https://www.youtube.com/watch?v=" + vr.VideoID,
			Channel:   channel,
			ViewCount: views,
		},
		published: published,
	}
}
