// Package stats derives dashboard figures from a shift collection. Nothing is
// cached: every call recomputes from the shifts it is given.
package stats

import (
	"time"

	"shift-tracker/internal/model"
	"shift-tracker/pkg/format"
)

// Summary holds the dashboard figures for a shift collection.
type Summary struct {
	ShiftCount            int
	TotalHours            float64
	TotalTips             float64
	TotalWages            float64
	TotalEarnings         float64
	AverageHourlyWithTips float64

	WeekStart        time.Time
	WeekEnd          time.Time
	ThisWeek         []model.Shift
	ThisWeekEarnings float64
}

// Compute aggregates shifts as of now. The current week runs from the most
// recent Sunday at or before now (inclusive) for seven days (exclusive), on
// now's calendar.
func Compute(shifts []model.Shift, now time.Time) Summary {
	var sum Summary
	sum.ShiftCount = len(shifts)
	for _, s := range shifts {
		sum.TotalHours += s.Hours
		sum.TotalTips += s.Tips
		sum.TotalWages += s.Wages()
	}
	sum.TotalEarnings = sum.TotalTips + sum.TotalWages
	if sum.TotalHours > 0 {
		sum.AverageHourlyWithTips = sum.TotalEarnings / sum.TotalHours
	}

	sum.WeekStart, sum.WeekEnd = Week(now)
	sum.ThisWeek = InRange(shifts, sum.WeekStart, sum.WeekEnd)
	for _, s := range sum.ThisWeek {
		sum.ThisWeekEarnings += s.Earnings()
	}
	return sum
}

// Week returns the Sunday-to-Saturday window containing now as [start, end).
func Week(now time.Time) (start, end time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = today.AddDate(0, 0, -int(today.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

// InRange keeps the shifts dated within [from, to), reading each ISO date in
// from's location. Shifts with unreadable dates are skipped.
func InRange(shifts []model.Shift, from, to time.Time) []model.Shift {
	var out []model.Shift
	for _, s := range shifts {
		d, err := time.ParseInLocation(format.DateLayout, s.Date, from.Location())
		if err != nil {
			continue
		}
		if !d.Before(from) && d.Before(to) {
			out = append(out, s)
		}
	}
	return out
}
