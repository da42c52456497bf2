package mlb

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"
)

// scheduleFixture builds a /schedule payload around now: a game gone final
// earlier today, a valid upcoming game, a malformed row, and a later game.
func scheduleFixture(now time.Time) string {
	game := func(pk int64, at time.Time, status, home, away string) string {
		return fmt.Sprintf(`{"gamePk":%d,"gameDate":%q,"status":{"detailedState":%q},
			"teams":{"home":{"team":{"id":111,"name":%q}},"away":{"team":{"id":147,"name":%q}}},
			"venue":{"name":"Fenway Park"}}`, pk, at.Format(time.RFC3339), status, home, away)
	}
	return fmt.Sprintf(`{"dates":[{"games":[%s,%s,%s,%s]}]}`,
		game(1001, now.Add(-3*time.Hour), "Final", "Boston Red Sox", "New York Yankees"),
		game(0, now.Add(12*time.Hour), "Scheduled", "Boston Red Sox", "New York Yankees"),
		game(1002, now.Add(24*time.Hour), "Scheduled", "Boston Red Sox", "New York Yankees"),
		game(1003, now.Add(72*time.Hour), "Scheduled", "Boston Red Sox", "New York Yankees"),
	)
}

func scheduleMux(t *testing.T, now time.Time) *http.ServeMux {
	t.Helper()
	mux := teamsMux(t)
	mux.HandleFunc("/schedule", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(scheduleFixture(now)))
	})
	return mux
}

func TestScheduleDropsMalformedRows(t *testing.T) {
	now := time.Now().UTC()
	client := newTestClient(t, scheduleMux(t, now))

	games, err := client.Schedule(context.Background(), 111, now, now.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("got %d games, want 3 (row without gamePk dropped)", len(games))
	}
	for _, g := range games {
		if g.GamePk == 0 {
			t.Errorf("malformed game kept: %+v", g)
		}
	}
}

func TestScheduleNormalization(t *testing.T) {
	now := time.Now().UTC()
	client := newTestClient(t, scheduleMux(t, now))

	games, err := client.Schedule(context.Background(), 111, now, now.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	g := games[0]
	if !g.IsHome {
		t.Errorf("team 111 hosting at Fenway reported as away")
	}
	if g.Opponent != "New York Yankees" {
		t.Errorf("opponent = %q, want New York Yankees", g.Opponent)
	}
	if g.Venue != "Fenway Park" {
		t.Errorf("venue = %q, want Fenway Park", g.Venue)
	}
	if !g.Final() {
		t.Errorf("status %q not recognized as final", g.Status)
	}
}

func TestNextGameSkipsFinalAndPast(t *testing.T) {
	now := time.Now().UTC()
	client := newTestClient(t, scheduleMux(t, now))

	// from predates the final game so only its status can exclude it
	next, err := client.NextGame(context.Background(), 111, now.Add(-6*time.Hour), 7)
	if err != nil {
		t.Fatalf("NextGame: %v", err)
	}
	if next == nil {
		t.Fatal("NextGame = nil, want the upcoming game")
	}
	if next.GamePk != 1002 {
		t.Errorf("NextGame picked gamePk %d, want 1002 (final game must be skipped)", next.GamePk)
	}
}

func TestNextGameCoercesFromToUTC(t *testing.T) {
	now := time.Now().UTC()
	client := newTestClient(t, scheduleMux(t, now))

	east := time.FixedZone("UTC-5", -5*3600)
	next, err := client.NextGame(context.Background(), 111, now.In(east), 7)
	if err != nil {
		t.Fatalf("NextGame: %v", err)
	}
	if next == nil || next.GamePk != 1002 {
		t.Errorf("NextGame with zoned from = %+v, want gamePk 1002", next)
	}
}

func TestNextGameEmptyWindow(t *testing.T) {
	mux := teamsMux(t)
	mux.HandleFunc("/schedule", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"dates":[]}`))
	})
	client := newTestClient(t, mux)

	next, err := client.NextGame(context.Background(), 111, time.Now(), 7)
	if err != nil {
		t.Fatalf("NextGame: %v", err)
	}
	if next != nil {
		t.Errorf("NextGame on empty schedule = %+v, want nil", next)
	}
}

func TestResolveThenNextGameOpponent(t *testing.T) {
	now := time.Now().UTC()
	client := newTestClient(t, scheduleMux(t, now))
	ctx := context.Background()

	id, name, err := client.Resolve(ctx, "Red Sox")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if name != "Boston Red Sox" {
		t.Fatalf("Resolve(Red Sox) = %q, want Boston Red Sox", name)
	}

	next, err := client.NextGame(ctx, id, now, 14)
	if err != nil {
		t.Fatalf("NextGame: %v", err)
	}
	if next == nil {
		t.Fatal("NextGame = nil, want the upcoming game")
	}
	if next.Opponent != "New York Yankees" {
		t.Errorf("next game opponent = %q, want New York Yankees", next.Opponent)
	}
	if next.Final() {
		t.Errorf("next game has terminal status %q", next.Status)
	}
}

func TestGameFinalStates(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"Final", true},
		{"final", true},
		{"Game Over", true},
		{"Scheduled", false},
		{"In Progress", false},
		{"Postponed", false},
	}
	for _, tt := range tests {
		g := Game{Status: tt.status}
		if got := g.Final(); got != tt.want {
			t.Errorf("Final() with status %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}
