// Package view renders shifts and summaries as plain text for the bot and
// the command line.
package view

import (
	"fmt"
	"strings"

	"shift-tracker/internal/model"
	"shift-tracker/internal/stats"
	"shift-tracker/pkg/format"
)

// Line is the one-line form used in lists.
func Line(s model.Shift) string {
	return fmt.Sprintf("%s · %s · %s", format.Date(s.Date), s.Location, format.Currency(s.Earnings()))
}

// Card is the full description of a shift.
func Card(s model.Shift) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", format.Date(s.Date))
	fmt.Fprintf(&b, "📍 %s\n", s.Location)
	fmt.Fprintf(&b, "🕒 %s – %s (%.2fh)\n", s.StartTime, s.EndTime, s.Hours)
	fmt.Fprintf(&b, "💵 %s/h · Tips: %s · Total: %s\n",
		format.Currency(s.HourlyRate), format.Currency(s.Tips), format.Currency(s.Earnings()))
	if len(s.Tags) > 0 {
		fmt.Fprintf(&b, "🏷 %s\n", strings.Join(s.Tags, ", "))
	}
	if s.Notes != "" {
		fmt.Fprintf(&b, "📝 %s\n", s.Notes)
	}
	if len(s.Coworkers) > 0 {
		fmt.Fprintf(&b, "\nCoworkers (%d)\n", len(s.Coworkers))
		for i, c := range s.Coworkers {
			fmt.Fprintf(&b, "%d. %s", i+1, c.Name)
			if c.Position != "" {
				fmt.Fprintf(&b, " – %s", c.Position)
			}
			if c.StartTime != "" || c.EndTime != "" {
				fmt.Fprintf(&b, " (%s–%s)", c.StartTime, c.EndTime)
			}
			b.WriteByte('\n')
		}
	}
	if len(s.Parties) > 0 {
		fmt.Fprintf(&b, "\nParties/Events (%d)\n", len(s.Parties))
		for i, p := range s.Parties {
			fmt.Fprintf(&b, "%d. %s", i+1, p.Name)
			if p.Type != "" {
				fmt.Fprintf(&b, " [%s]", p.Type)
			}
			if p.StartTime != "" || p.EndTime != "" {
				fmt.Fprintf(&b, " (%s–%s)", p.StartTime, p.EndTime)
			}
			b.WriteByte('\n')
			if p.Details != "" {
				fmt.Fprintf(&b, "   %s\n", p.Details)
			}
			if len(p.Bartenders) > 0 {
				fmt.Fprintf(&b, "   Bartenders: %s\n", strings.Join(p.Bartenders, ", "))
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Summary is the dashboard.
func Summary(sum stats.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total earnings: %s\n", format.Currency(sum.TotalEarnings))
	fmt.Fprintf(&b, "Total hours: %.1f (%d shifts)\n", sum.TotalHours, sum.ShiftCount)
	fmt.Fprintf(&b, "Avg hourly with tips: %s\n", format.Currency(sum.AverageHourlyWithTips))
	fmt.Fprintf(&b, "This week: %s (%d shifts)", format.Currency(sum.ThisWeekEarnings), len(sum.ThisWeek))
	return b.String()
}
