// Package mlb is the MLB Stats API domain layer: the team directory, the
// free-text team resolver, the schedule reader, and the season stats
// aggregator. All HTTP goes through one Client holding the memoized team
// directory and a rate limiter; construct a fresh Client per test run.
package mlb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/anatolykoptev/go_mlb/internal/engine"
	"golang.org/x/time/rate"
)

// Team is one league team from the Stats API directory. The named fields are
// the ones the resolver matches precisely; blob holds every string-valued
// field of the raw record, lowercased, for the loose fallback pass.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	TeamName     string `json:"teamName"`
	ShortName    string `json:"shortName"`
	ClubName     string `json:"clubName"`
	LocationName string `json:"locationName"`
	FileCode     string `json:"fileCode"`
	TeamCode     string `json:"teamCode"`

	blob string
}

// nameFields returns the lowercased precise-match fields in matching order.
func (t *Team) nameFields() []string {
	fields := []string{t.Name, t.TeamName, t.ShortName, t.ClubName, t.LocationName, t.FileCode, t.TeamCode}
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}

// Client talks to the MLB Stats API. The team directory is fetched once and
// held for the lifetime of the Client; a process restart (or a new Client) is
// the only refresh mechanism.
type Client struct {
	base    string
	limiter *rate.Limiter

	mu    sync.Mutex
	teams []Team
}

// NewClient returns a Client for the given Stats API base URL
// (e.g. https://statsapi.mlb.com/api/v1). The limiter paces all outbound
// calls; the Stats API is unkeyed and public, so stay polite.
func NewClient(base string) *Client {
	return &Client{
		base:    strings.TrimRight(base, "/"),
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
	}
}

var defaultClient *Client

// SetDefault installs the process-wide Client used by the tool layer.
func SetDefault(c *Client) { defaultClient = c }

// Default returns the Client installed by SetDefault.
func Default() *Client { return defaultClient }

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	return engine.GetJSON(ctx, c.base+path, params, out)
}

type teamsResponse struct {
	Teams []json.RawMessage `json:"teams"`
}

// Teams returns the full team directory, fetching it on first use. A fetch or
// decode failure propagates to the caller: an empty directory would make every
// resolution silently fail, so it must never be papered over.
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.teams != nil {
		return c.teams, nil
	}

	engine.IncrTeamsRequests()
	params := url.Values{}
	params.Set("sportId", "1")
	params.Set("activeStatus", "Yes")

	var resp teamsResponse
	if err := c.getJSON(ctx, "/teams", params, &resp); err != nil {
		return nil, fmt.Errorf("load team directory: %w", err)
	}
	if len(resp.Teams) == 0 {
		return nil, fmt.Errorf("load team directory: empty response")
	}

	teams := make([]Team, 0, len(resp.Teams))
	for _, raw := range resp.Teams {
		var t Team
		if err := json.Unmarshal(raw, &t); err != nil || t.ID == 0 {
			continue
		}
		t.blob = stringBlob(raw)
		teams = append(teams, t)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("load team directory: no usable team records")
	}

	c.teams = teams
	return c.teams, nil
}

// stringBlob joins every string-valued field of a raw team record into one
// lowercase haystack for the resolver's loose pass.
func stringBlob(raw json.RawMessage) string {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return ""
	}
	var parts []string
	for _, v := range fields {
		if s, ok := v.(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
