package sources

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go_mlb/internal/engine"
)

const (
	ytDataAPIBase      = "https://www.googleapis.com/youtube/v3"
	ytSearchCandidates = 25 // recent uploads fetched before re-ranking by views
	ytStatsBatchSize   = 50 // Data API /videos id-list limit
	ytFreshnessWindow  = 30 * 24 * time.Hour
)

type ytSearchResp struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type ytVideosResp struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// searchVideosDataAPI searches via the Data API v3: recent uploads first, then
// a batched statistics fetch for exact view counts, re-ranked most-viewed
// first.
func searchVideosDataAPI(ctx context.Context, query string, maxResults int) ([]VideoItem, error) {
	key := engine.Cfg.YouTubeAPIKey
	if key == "" {
		return nil, fmt.Errorf("youtube data API: no API key configured")
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(ytSearchCandidates))
	params.Set("order", "date")
	params.Set("publishedAfter", time.Now().UTC().Add(-ytFreshnessWindow).Format("2006-01-02T15:04:05Z"))
	params.Set("q", query)
	params.Set("key", key)

	var searchResp ytSearchResp
	if err := engine.GetJSON(ctx, ytDataAPIBase+"/search", params, &searchResp); err != nil {
		return nil, fmt.Errorf("youtube data API search: %w", err)
	}

	var ids []string
	for _, item := range searchResp.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var items []VideoItem
	for start := 0; start < len(ids); start += ytStatsBatchSize {
		end := min(start+ytStatsBatchSize, len(ids))

		vparams := url.Values{}
		vparams.Set("part", "snippet,statistics")
		vparams.Set("id", strings.Join(ids[start:end], ","))
		vparams.Set("key", key)

		var videosResp ytVideosResp
		if err := engine.GetJSON(ctx, ytDataAPIBase+"/videos", vparams, &videosResp); err != nil {
			return nil, fmt.Errorf("youtube data API videos: %w", err)
		}

		for _, it := range videosResp.Items {
			if it.ID == "" {
				continue
			}
			title := it.Snippet.Title
			if title == "" {
				title = "(untitled)"
			}
			var views *int64
			if it.Statistics.ViewCount != "" {
				if n, err := strconv.ParseInt(it.Statistics.ViewCount, 10, 64); err == nil {
					views = &n
				}
			}
			items = append(items, VideoItem{
				VideoID:   it.ID,
				Title:     title,
				URL:       "https://www.youtube.com/watch?v=" + it.ID,
				Channel:   it.Snippet.ChannelTitle,
				ViewCount: views,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return viewsOrMinusOne(items[i].ViewCount) > viewsOrMinusOne(items[j].ViewCount)
	})
	if len(items) > maxResults {
		items = items[:maxResults]
	}
	return items, nil
}
