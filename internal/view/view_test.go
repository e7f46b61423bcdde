package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shift-tracker/internal/model"
	"shift-tracker/internal/stats"
)

func TestCard(t *testing.T) {
	s := model.Shift{
		Date: "2024-03-05", Location: "Harbor Bar",
		StartTime: "18:00", EndTime: "02:00", Hours: 8,
		HourlyRate: 15, Tips: 1100,
		Tags:      []string{"busy", "patio"},
		Coworkers: []model.Coworker{{Name: "Sam", Position: "barback", StartTime: "18:00", EndTime: "00:00"}},
		Parties:   []model.Party{{Name: "Gala", Type: "wedding", Bartenders: []string{"Jo"}}},
	}
	want := `Tue, Mar 5, 2024
📍 Harbor Bar
🕒 18:00 – 02:00 (8.00h)
💵 $15.00/h · Tips: $1,100.00 · Total: $1,220.00
🏷 busy, patio

Coworkers (1)
1. Sam – barback (18:00–00:00)

Parties/Events (1)
1. Gala [wedding]
   Bartenders: Jo`
	assert.Equal(t, want, Card(s))
	assert.Equal(t, "Tue, Mar 5, 2024 · Harbor Bar · $1,220.00", Line(s))
}

func TestSummary(t *testing.T) {
	sum := stats.Summary{
		ShiftCount: 2, TotalHours: 12.5, TotalEarnings: 512.25,
		AverageHourlyWithTips: 40.98, ThisWeekEarnings: 200,
		ThisWeek: []model.Shift{{}},
	}
	want := "Total earnings: $512.25\n" +
		"Total hours: 12.5 (2 shifts)\n" +
		"Avg hourly with tips: $40.98\n" +
		"This week: $200.00 (1 shifts)"
	assert.Equal(t, want, Summary(sum))
}
