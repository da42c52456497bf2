package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anatolykoptev/go_mlb/internal/engine"
)

// YouTube transcript fetching.
// Primary:  scrape watch page ytInitialPlayerResponse → caption track XML
// Fallback: ANDROID Innertube /player → captionTracks
//
// Transcript absence is expected and common — disabled captions, region
// blocks, removed videos. Callers map any error to "unavailable".

const ytPlayerResponseMarker = "ytInitialPlayerResponse = "

// ErrNoTranscript reports that a video has no fetchable transcript.
var ErrNoTranscript = errors.New("no transcript available")

// FetchTranscript returns the plain-text transcript for a video, trying a
// manual track in the preferred languages, then a generated one, then the
// first track of any language. Whitespace is collapsed to single spaces.
func FetchTranscript(ctx context.Context, videoID string, langs []string) (string, error) {
	engine.IncrVideoTranscript()
	if len(langs) == 0 {
		langs = []string{"en"}
	}

	if text, err := transcriptViaWatchPage(ctx, videoID, langs); err == nil {
		return text, nil
	} else {
		slog.Debug("youtube: watch page transcript failed, trying player",
			slog.String("id", videoID), slog.Any("error", err))
	}

	return transcriptViaPlayer(ctx, videoID, langs)
}

// pickTrack selects a caption track: manual track in a preferred language,
// then an auto-generated one, then whatever comes first.
func pickTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	if len(tracks) == 0 {
		return captionTrack{}, false
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	return tracks[0], true
}

func transcriptFromTracks(ctx context.Context, tracks []captionTrack, langs []string) (string, error) {
	track, ok := pickTrack(tracks, langs)
	if !ok {
		return "", ErrNoTranscript
	}
	text, err := fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return "", err
	}
	text = engine.CollapseSpaces(text)
	if text == "" {
		return "", ErrNoTranscript
	}
	return text, nil
}

// transcriptViaWatchPage scrapes the watch page HTML and extracts caption
// tracks from ytInitialPlayerResponse. Works without any API surface.
func transcriptViaWatchPage(ctx context.Context, videoID string, langs []string) (string, error) {
	watchURL := "https://www.youtube.com/watch?v=" + videoID

	ctx, cancel := context.WithTimeout(ctx, engine.Cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", stealth.RandomUserAgent())
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("watch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("watch page: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
	if err != nil {
		return "", fmt.Errorf("read watch page: %w", err)
	}

	idx := strings.Index(string(body), ytPlayerResponseMarker)
	if idx < 0 {
		return "", errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytPlayerResponseMarker):])
	if jsonData == nil {
		return "", errors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var playerResp innertubePlayerResp
	if err := json.Unmarshal(jsonData, &playerResp); err != nil {
		return "", fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	if playerResp.Captions == nil {
		return "", ErrNoTranscript
	}
	return transcriptFromTracks(ctx, playerResp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, langs)
}

// transcriptViaPlayer uses the ANDROID Innertube /player endpoint.
func transcriptViaPlayer(ctx context.Context, videoID string, langs []string) (string, error) {
	playerResp, err := postPlayer(ctx, videoID)
	if err != nil {
		return "", err
	}
	if playerResp.Captions == nil {
		if playerResp.PlayabilityStatus != nil && playerResp.PlayabilityStatus.Reason != "" {
			return "", fmt.Errorf("%w: %s", ErrNoTranscript, playerResp.PlayabilityStatus.Reason)
		}
		return "", ErrNoTranscript
	}
	return transcriptFromTracks(ctx, playerResp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, langs)
}
