package sources

import (
	"fmt"
	"testing"
	"time"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple object", `{"a":1};var next`, `{"a":1}`},
		{"nested objects", `{"a":{"b":{"c":2}}} trailing`, `{"a":{"b":{"c":2}}}`},
		{"braces inside strings", `{"a":"}{","b":1}rest`, `{"a":"}{","b":1}`},
		{"escaped quote in string", `{"a":"say \"}\" loud"}x`, `{"a":"say \"}\" loud"}`},
		{"not an object", `var x = 1`, ""},
		{"unterminated", `{"a":1`, ""},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON([]byte(tt.in))
			if string(got) != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// ytInitialDataFixture nests videoRenderer entries the way search results do:
// buried in itemSectionRenderer contents with unrelated renderers mixed in.
func ytInitialDataFixture() []byte {
	renderer := func(id, title, channel, views, published string) string {
		return fmt.Sprintf(`{"videoRenderer":{
			"videoId":%q,
			"title":{"runs":[{"text":%q}]},
			"ownerText":{"runs":[{"text":%q}]},
			"viewCountText":{"simpleText":%q},
			"publishedTimeText":{"simpleText":%q}}}`, id, title, channel, views, published)
	}
	return []byte(fmt.Sprintf(`{"contents":{"sectionListRenderer":{"contents":[
		{"itemSectionRenderer":{"contents":[
			%s,
			{"shelfRenderer":{"title":{"simpleText":"People also watched"}}},
			%s,
			{"videoRenderer":{"videoId":"","title":{"runs":[{"text":"no id, dropped"}]}}},
			%s
		]}}
	]}}}`,
		renderer("vid1", "Yankees vs Red Sox Highlights", "MLB", "1.2M views", "2 days ago"),
		renderer("vid2", "Full Game Recap", "Talkin' Baseball", "45,212 views", "3 hours ago"),
		renderer("vid3", "Season Analysis", "Foolish Baseball", "No views", ""),
	))
}

func TestCollectRenderers(t *testing.T) {
	now := time.Now().UTC()
	got := collectRenderers(ytInitialDataFixture(), 20, now)
	if len(got) != 3 {
		t.Fatalf("collected %d renderers, want 3 (id-less entry dropped)", len(got))
	}

	first := got[0]
	if first.item.VideoID != "vid1" {
		t.Errorf("first videoId = %q, want vid1", first.item.VideoID)
	}
	if first.item.URL != "https://www.youtube.com/watch?v=vid1" {
		t.Errorf("first url = %q", first.item.URL)
	}
	if first.item.Channel != "MLB" {
		t.Errorf("first channel = %q, want MLB", first.item.Channel)
	}
	if first.item.ViewCount == nil || *first.item.ViewCount != 1200000 {
		t.Errorf("first views = %v, want 1200000", first.item.ViewCount)
	}
	if first.published == nil {
		t.Error("first published = nil, want parsed timestamp")
	}

	third := got[2]
	if third.item.ViewCount != nil {
		t.Errorf("unparseable view text yielded %d, want nil", *third.item.ViewCount)
	}
	if third.published != nil {
		t.Errorf("empty publish text yielded %v, want nil", third.published)
	}
}

func TestCollectRenderersRespectsLimit(t *testing.T) {
	got := collectRenderers(ytInitialDataFixture(), 2, time.Now().UTC())
	if len(got) != 2 {
		t.Errorf("collected %d renderers with limit 2, want 2", len(got))
	}
}

func TestCollectRenderersScrapeOrderThenRank(t *testing.T) {
	now := time.Now().UTC()
	raw := collectRenderers(ytInitialDataFixture(), 20, now)
	rankScraped(raw)

	// vid2 (3 hours ago) outranks vid1 (2 days ago); vid3 without a
	// timestamp sorts last
	want := []string{"vid2", "vid1", "vid3"}
	for i, id := range want {
		if raw[i].item.VideoID != id {
			t.Fatalf("ranked order = [%s %s %s], want %v",
				raw[0].item.VideoID, raw[1].item.VideoID, raw[2].item.VideoID, want)
		}
	}
}
