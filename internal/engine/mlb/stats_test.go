package mlb

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
)

const leagueStatsFixture = `{"stats":[
  {"group":{"displayName":"hitting"},"splits":[
    {"team":{"id":147},"stat":{"avg":".254","runs":712,"homeRuns":237,"obp":".327","slg":".429"}},
    {"team":{"id":111},"stat":{"avg":".267","runs":801,"homeRuns":182,"obp":".341","slg":".445"}}
  ]},
  {"group":{"displayName":"pitching"},"splits":[
    {"team":{"id":147},"stat":{"era":"3.52","whip":"1.21","strikeOuts":1430}},
    {"team":{"id":111},"stat":{"era":"4.04","whip":"1.31","strikeOuts":1351}}
  ]}
]}`

const perTeamStatsFixture = `{"stats":[
  {"group":{"displayName":"hitting"},"splits":[
    {"stat":{"avg":".261","runs":750}}
  ]},
  {"group":{"displayName":"pitching"},"splits":[
    {"stat":{"era":"3.77","strikeOuts":1390}}
  ]}
]}`

const hydrateStatsFixture = `{"teams":[
  {"teamStats":[
    {"group":{"displayName":"hitting"},"splits":[{"group":{"displayName":"hitting"},"stat":{"avg":".249"}}]},
    {"group":{"displayName":"pitching"},"splits":[{"group":{"displayName":"pitching"},"stat":{"era":"4.40"}}]}
  ]}
]}`

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}

func TestTeamStatsLeagueWideShortCircuits(t *testing.T) {
	var perTeamCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/teams/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, leagueStatsFixture)
	})
	mux.HandleFunc("/teams/111/stats", func(w http.ResponseWriter, r *http.Request) {
		perTeamCalls.Add(1)
		writeJSON(w, perTeamStatsFixture)
	})
	client := newTestClient(t, mux)

	line := client.TeamStats(context.Background(), 111, 2025)
	if line.Season != 2025 {
		t.Errorf("season = %d, want 2025", line.Season)
	}
	if line.Hitting["avg"] != ".267" {
		t.Errorf("hitting avg = %v, want .267 (team 111's row, not 147's)", line.Hitting["avg"])
	}
	if line.Pitching["era"] != "4.04" {
		t.Errorf("pitching era = %v, want 4.04", line.Pitching["era"])
	}
	if got := perTeamCalls.Load(); got != 0 {
		t.Errorf("per-team endpoint hit %d times despite league-wide success", got)
	}
}

func TestTeamStatsFallsBackToPerTeam(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/teams/stats", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	mux.HandleFunc("/teams/111/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, perTeamStatsFixture)
	})
	client := newTestClient(t, mux)

	line := client.TeamStats(context.Background(), 111, 2025)
	if line.Hitting["avg"] != ".261" {
		t.Errorf("hitting avg = %v, want .261 from per-team fallback", line.Hitting["avg"])
	}
}

func TestTeamStatsFallsBackToHydrate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/teams/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"stats":[]}`)
	})
	mux.HandleFunc("/teams/111/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"stats":[]}`)
	})
	mux.HandleFunc("/teams", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, hydrateStatsFixture)
	})
	client := newTestClient(t, mux)

	line := client.TeamStats(context.Background(), 111, 2025)
	if line.Hitting["avg"] != ".249" {
		t.Errorf("hitting avg = %v, want .249 from hydrate fallback", line.Hitting["avg"])
	}
	if line.Pitching["era"] != "4.40" {
		t.Errorf("pitching era = %v, want 4.40 from hydrate fallback", line.Pitching["era"])
	}
}

func TestTeamStatsAllStrategiesEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})
	client := newTestClient(t, mux)

	line := client.TeamStats(context.Background(), 111, 2025)
	if line.Season != 2025 {
		t.Errorf("season = %d, want 2025 even when stats are unavailable", line.Season)
	}
	if line.Hitting != nil || line.Pitching != nil {
		t.Errorf("expected empty stat groups, got hitting=%v pitching=%v", line.Hitting, line.Pitching)
	}
}

func TestCompare(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/teams/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, leagueStatsFixture)
	})
	client := newTestClient(t, mux)

	cmp := client.Compare(context.Background(), 111, 147, 2025)
	if cmp.Season != 2025 {
		t.Errorf("season = %d, want 2025", cmp.Season)
	}

	avg := cmp.Hitting["avg"]
	if avg[0] == nil || avg[1] == nil {
		t.Fatalf("avg pair has nil slot: %v", avg)
	}
	if *avg[0] != 0.267 || *avg[1] != 0.254 {
		t.Errorf("avg pair = [%v, %v], want [0.267, 0.254]", *avg[0], *avg[1])
	}

	runs := cmp.Hitting["runs"]
	if runs[0] == nil || *runs[0] != 801 {
		t.Errorf("runs[0] = %v, want 801", runs[0])
	}

	era := cmp.Pitching["era"]
	if era[0] == nil || *era[0] != 4.04 {
		t.Errorf("era[0] = %v, want 4.04", era[0])
	}
}

func TestCompareMissingSideYieldsNilSlots(t *testing.T) {
	// only team 111 has a row, so every pair's second slot must be nil
	mux := http.NewServeMux()
	mux.HandleFunc("/teams/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"stats":[
			{"group":{"displayName":"hitting"},"splits":[{"team":{"id":111},"stat":{"avg":".267","runs":801}}]}
		]}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})
	client := newTestClient(t, mux)

	cmp := client.Compare(context.Background(), 111, 147, 2025)
	avg := cmp.Hitting["avg"]
	if avg[0] == nil || *avg[0] != 0.267 {
		t.Errorf("avg[0] = %v, want 0.267", avg[0])
	}
	if avg[1] != nil {
		t.Errorf("avg[1] = %v, want nil for the missing side", *avg[1])
	}
	era := cmp.Pitching["era"]
	if era[0] != nil || era[1] != nil {
		t.Errorf("era pair = %v, want both nil when pitching is absent", era)
	}
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *float64
	}{
		{"json number", float64(712), ptr(712.0)},
		{"formatted average", ".267", ptr(0.267)},
		{"era string", "3.52", ptr(3.52)},
		{"garbage string", "n/a", nil},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := asFloat(tt.in)
			switch {
			case got == nil && tt.want != nil:
				t.Errorf("asFloat(%v) = nil, want %v", tt.in, *tt.want)
			case got != nil && tt.want == nil:
				t.Errorf("asFloat(%v) = %v, want nil", tt.in, *got)
			case got != nil && tt.want != nil && *got != *tt.want:
				t.Errorf("asFloat(%v) = %v, want %v", tt.in, *got, *tt.want)
			}
		})
	}
}

func ptr(f float64) *float64 { return &f }
