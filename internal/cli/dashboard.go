package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/nymphhq/nymph/internal/messaging"
	"github.com/nymphhq/nymph/internal/views"
)

const (
	recentActivityLimit = 5
	barWidth            = 20
)

// Dashboard renders the stat cards, the bar chart and the recent activity
// feed from the current session list.
func (a *App) Dashboard(ctx context.Context) error {
	entries := a.tracker.All()
	counts := views.DashboardCounts(entries)
	pct := views.BarChartPercentages(counts)

	bold := color.New(color.Bold)

	fmt.Fprintln(a.out, bold.Sprint("\nDashboard"))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Open Bugs", counts.OpenBugs)
	tbl.AddRow("Resolved Bugs", counts.ResolvedBugs)
	tbl.AddRow("Features Implemented", counts.FeaturesImplemented)
	tbl.AddRow("Feature Requests", counts.TotalFeatureRequests)
	fmt.Fprintln(a.out, tbl)

	fmt.Fprintln(a.out, bold.Sprint("\nOverview"))
	chart := uitable.New()
	chart.Separator = "  "
	chart.AddRow("Features Implemented", bar(pct.FeaturesImplemented), counts.FeaturesImplemented)
	chart.AddRow("Open Bugs", bar(pct.OpenBugs), counts.OpenBugs)
	chart.AddRow("Resolved Bugs", bar(pct.ResolvedBugs), counts.ResolvedBugs)
	chart.AddRow("Feature Requests", bar(pct.TotalFeatureRequests), counts.TotalFeatureRequests)
	fmt.Fprintln(a.out, chart)

	fmt.Fprintln(a.out, bold.Sprint("\nRecent Activity"))
	activity := uitable.New()
	activity.Separator = "  "
	for _, row := range views.RecentActivity(entries, recentActivityLimit) {
		if row.Placeholder {
			activity.AddRow("", row.Name, row.Description, "", "")
			continue
		}
		activity.AddRow(row.Avatar, row.Name, row.Description, row.Status, row.TimeAgo)
	}
	fmt.Fprintln(a.out, activity)

	if unread := messaging.UnreadCount(a.messaging.List(ctx)); unread > 0 {
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprintf("You have %d unread message(s), type 'messages' to view", unread))
	}

	return nil
}

func bar(percent float64) string {
	n := int(percent / 100 * barWidth)
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}
