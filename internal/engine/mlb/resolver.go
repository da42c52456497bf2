package mlb

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrTeamNotFound reports that a free-text team reference matched nothing in
// the directory. Callers distinguish it from fetch failures with errors.Is.
var ErrTeamNotFound = errors.New("team not found")

// Resolve maps a user-provided team string to (teamID, canonical name).
//
// Candidate terms come from the alias table (or the title-cased input). Two
// passes over the directory: first a precise substring check against each
// team's known name fields, then a loose check against the team's full string
// blob. First team in directory order to match any candidate wins — there is
// no scoring, short names can legitimately hit an unrelated team's location
// name first.
func (c *Client) Resolve(ctx context.Context, teamInput string) (int, string, error) {
	teams, err := c.Teams(ctx)
	if err != nil {
		return 0, "", err
	}

	candidates := normalizeTerms(SearchTerms(teamInput))
	if len(candidates) == 0 {
		return 0, "", fmt.Errorf("%q: %w", teamInput, ErrTeamNotFound)
	}

	for i := range teams {
		fields := teams[i].nameFields()
		for _, cand := range candidates {
			if containsAny(fields, cand) {
				return teams[i].ID, teams[i].Name, nil
			}
		}
	}

	for i := range teams {
		for _, cand := range candidates {
			if strings.Contains(teams[i].blob, cand) {
				return teams[i].ID, teams[i].Name, nil
			}
		}
	}

	return 0, "", fmt.Errorf("%q: %w", teamInput, ErrTeamNotFound)
}

// normalizeTerms lowercases and dedupes candidate terms, preserving order.
func normalizeTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func containsAny(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
