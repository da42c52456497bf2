// Package toolutil provides shared helper functions for go_mlb MCP tools.
package toolutil

import (
	"fmt"
	"strings"
	"time"
)

// ClampLimit bounds a requested result count to [1, ceil], substituting def
// when the request is zero or negative.
func ClampLimit(n, def, ceil int) int {
	if n <= 0 {
		n = def
	}
	return min(n, ceil)
}

// ParseTime accepts the date forms tools see in the wild: RFC3339, a zone-less
// datetime, or a bare date. Zone-less values are read as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time format %q", s)
}
