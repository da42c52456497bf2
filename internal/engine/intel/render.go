package intel

import (
	"fmt"
	"strings"
	"time"

	"github.com/anatolykoptev/go_mlb/internal/engine"
)

const (
	reportTopN      = 5
	matchupTopN     = 3
	descRuneLimit   = 150
	reportTimestamp = "2006-01-02 15:04"
)

// RenderReport formats one team's intelligence as a markdown digest.
func RenderReport(ti TeamIntelligence) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Intelligence Report: %s\n", ti.TeamName)
	fmt.Fprintf(&sb, "Generated: %s\n\n", ti.GeneratedAt.Format(reportTimestamp))

	if ti.Summary != "" {
		fmt.Fprintf(&sb, "%s\n\n", ti.Summary)
	}

	sb.WriteString("## Recent News Articles\n")
	if len(ti.News) == 0 {
		sb.WriteString("No recent news articles found.\n\n")
	} else {
		for i, a := range ti.News {
			if i >= reportTopN {
				break
			}
			fmt.Fprintf(&sb, "%d. **%s**\n", i+1, a.Title)
			fmt.Fprintf(&sb, "   Source: %s\n", a.Source)
			fmt.Fprintf(&sb, "   Published: %s\n", a.PublishedAt.Format("2006-01-02"))
			if a.Description != "" {
				fmt.Fprintf(&sb, "   Summary: %s\n", engine.TruncateRunes(a.Description, descRuneLimit, "..."))
			}
			fmt.Fprintf(&sb, "   Link: %s\n\n", a.URL)
		}
	}

	sb.WriteString("## Recent YouTube Videos\n")
	if len(ti.Videos) == 0 {
		sb.WriteString("No recent videos found.\n\n")
	} else {
		for i, v := range ti.Videos {
			if i >= reportTopN {
				break
			}
			fmt.Fprintf(&sb, "%d. **%s**\n", i+1, v.Title)
			if v.Channel != "" {
				fmt.Fprintf(&sb, "   Channel: %s\n", v.Channel)
			}
			if v.ViewCount != nil {
				fmt.Fprintf(&sb, "   Views: %d\n", *v.ViewCount)
			}
			fmt.Fprintf(&sb, "   Link: %s\n\n", v.URL)
		}
	}

	return sb.String()
}

// RenderMatchup formats a two-team analysis: per-side counts and headlines
// plus fixed strategic prompts for the reader.
func RenderMatchup(a, b TeamIntelligence) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Strategic Matchup Analysis: %s vs %s\n", a.TeamName, b.TeamName)
	fmt.Fprintf(&sb, "Generated: %s\n\n", time.Now().UTC().Format(reportTimestamp))

	renderSide(&sb, a)
	renderSide(&sb, b)

	sb.WriteString("## Strategic Notes\n")
	sb.WriteString("- Review recent performance trends in the articles above\n")
	sb.WriteString("- Check video analysis for tactical insights\n")
	sb.WriteString("- Look for injury reports or roster changes\n")
	sb.WriteString("- Analyze recent game outcomes and patterns\n")

	return sb.String()
}

func renderSide(sb *strings.Builder, ti TeamIntelligence) {
	fmt.Fprintf(sb, "## %s Intelligence\n", ti.TeamName)
	fmt.Fprintf(sb, "- Recent news articles: %d\n", len(ti.News))
	fmt.Fprintf(sb, "- Recent videos: %d\n", len(ti.Videos))
	if len(ti.News) > 0 {
		sb.WriteString("### Top Headlines:\n")
		for i, a := range ti.News {
			if i >= matchupTopN {
				break
			}
			fmt.Fprintf(sb, "- %s (%s)\n", a.Title, a.Source)
		}
	}
	sb.WriteString("\n")
}
