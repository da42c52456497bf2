package mlb

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anatolykoptev/go_mlb/internal/engine"
)

// teamsFixture is a trimmed /teams payload with enough variety for the
// resolver: canonical names, file codes, short names, and one extra
// string-only field (franchiseName) that lands in the loose-match blob.
const teamsFixture = `{"teams":[
  {"id":147,"name":"New York Yankees","teamName":"Yankees","shortName":"NY Yankees","clubName":"Yankees","locationName":"Bronx","fileCode":"nyy","teamCode":"nya","franchiseName":"New York"},
  {"id":111,"name":"Boston Red Sox","teamName":"Red Sox","shortName":"Boston","clubName":"Red Sox","locationName":"Boston","fileCode":"bos","teamCode":"bos","franchiseName":"Boston"},
  {"id":119,"name":"Los Angeles Dodgers","teamName":"Dodgers","shortName":"LA Dodgers","clubName":"Dodgers","locationName":"Los Angeles","fileCode":"la","teamCode":"lan","franchiseName":"Los Angeles"},
  {"id":145,"name":"Chicago White Sox","teamName":"White Sox","shortName":"Chi White Sox","clubName":"White Sox","locationName":"Chicago","fileCode":"cws","teamCode":"cha","franchiseName":"Chicago"}
]}`

// newTestClient spins up a fake Stats API and points a fresh Client at it.
func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	engine.Init(engine.Config{
		StatsAPIBase: srv.URL,
		FetchTimeout: 5 * time.Second,
		HTTPClient:   srv.Client(),
	})
	return NewClient(srv.URL)
}

func teamsMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/teams", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(teamsFixture))
	})
	return mux
}
