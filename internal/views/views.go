// Package views computes the dashboard's derived data. Every function is pure
// over a snapshot of the session list; nothing here mutates state.
package views

import (
	"fmt"
	"sort"
	"time"

	"github.com/nymphhq/nymph/internal/models"
)

// Counts holds the four dashboard widgets.
type Counts struct {
	OpenBugs             int
	ResolvedBugs         int
	FeaturesImplemented  int
	TotalFeatureRequests int
}

// DashboardCounts tallies the stat cards. A feature counts as implemented when
// it is Resolved or Closed.
func DashboardCounts(entries []models.Entry) Counts {
	var c Counts
	for _, e := range entries {
		switch e.Kind {
		case models.KindBug:
			switch e.Status {
			case models.StatusOpen:
				c.OpenBugs++
			case models.StatusResolved:
				c.ResolvedBugs++
			}
		case models.KindFeature:
			c.TotalFeatureRequests++
			if e.Status == models.StatusResolved || e.Status == models.StatusClosed {
				c.FeaturesImplemented++
			}
		}
	}
	return c
}

// Percentages holds bar heights for the dashboard chart, one per series.
type Percentages struct {
	FeaturesImplemented  float64
	OpenBugs             float64
	ResolvedBugs         float64
	TotalFeatureRequests float64
}

// BarChartPercentages scales each series against the largest one. The divisor
// is clamped to 1, so an all-zero input yields all-zero bars rather than NaN.
func BarChartPercentages(c Counts) Percentages {
	max := 1
	for _, v := range []int{c.FeaturesImplemented, c.OpenBugs, c.ResolvedBugs, c.TotalFeatureRequests} {
		if v > max {
			max = v
		}
	}
	scale := func(v int) float64 { return float64(v) / float64(max) * 100 }
	return Percentages{
		FeaturesImplemented:  scale(c.FeaturesImplemented),
		OpenBugs:             scale(c.OpenBugs),
		ResolvedBugs:         scale(c.ResolvedBugs),
		TotalFeatureRequests: scale(c.TotalFeatureRequests),
	}
}

// ActivityRow is one line of the recent-activity feed.
type ActivityRow struct {
	Avatar      string
	Name        string
	Description string
	Status      string
	TimeAgo     string
	Placeholder bool
}

// NoActivityLabel is the fixed placeholder shown when the feed is empty.
const NoActivityLabel = "No recent activity"

// RecentActivity returns the latest entries by calendar day, most recent
// first, capped at limit. An empty input yields exactly one placeholder row,
// never an empty slice.
func RecentActivity(entries []models.Entry, limit int) []ActivityRow {
	if len(entries) == 0 {
		return []ActivityRow{{
			Name:        NoActivityLabel,
			Description: "Submit your first bug report or feature request",
			Placeholder: true,
		}}
	}

	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateOnly() > sorted[j].DateOnly()
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	rows := make([]ActivityRow, 0, len(sorted))
	for _, e := range sorted {
		avatar := "B"
		if e.Kind == models.KindFeature {
			avatar = "F"
		}
		rows = append(rows, ActivityRow{
			Avatar:      avatar,
			Name:        e.Title,
			Description: string(e.Kind),
			Status:      string(e.Status),
			TimeAgo:     TimeAgo(e.CreatedAt, time.Now()),
		})
	}
	return rows
}

// TableRows projects the session list into display order. The list is already
// most-recent-first, so this is the identity projection.
func TableRows(entries []models.Entry) []models.Entry {
	rows := make([]models.Entry, len(entries))
	copy(rows, entries)
	return rows
}

// TimeAgo renders a compact relative age: "Just now", then hours, days and
// months.
func TimeAgo(t, now time.Time) string {
	hours := int(now.Sub(t).Hours())
	if hours < 1 {
		return "Just now"
	}
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}
	days := hours / 24
	if days < 30 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dm", days/30)
}
