package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftTags(t *testing.T) {
	var s Shift
	assert.True(t, s.AddTag(" busy "))
	assert.True(t, s.AddTag("patio"))
	assert.False(t, s.AddTag("busy"))
	assert.False(t, s.AddTag("   "))
	assert.Equal(t, []string{"busy", "patio"}, s.Tags)

	assert.True(t, s.RemoveTag("busy"))
	assert.False(t, s.RemoveTag("busy"))
	assert.Equal(t, []string{"patio"}, s.Tags)
}

func TestShiftNormalize(t *testing.T) {
	s := Shift{
		ID:        "abc",
		StartTime: "21:30",
		EndTime:   "03:00",
		Hours:     99,
		Tags:      []string{"late", " late", "", "bar"},
		Coworkers: []Coworker{{ShiftID: "other", Name: "Sam"}},
		Parties:   []Party{{Name: "Wedding"}},
	}
	s.Normalize()

	assert.Equal(t, 5.5, s.Hours)
	assert.Equal(t, []string{"late", "bar"}, s.Tags)
	assert.Equal(t, "abc", s.Coworkers[0].ShiftID)
	assert.Equal(t, "abc", s.Parties[0].ShiftID)
}

func TestShiftEarnings(t *testing.T) {
	s := Shift{Hours: 6, HourlyRate: 12.5, Tips: 80}
	assert.Equal(t, 75.0, s.Wages())
	assert.Equal(t, 155.0, s.Earnings())
}

func TestShiftCloneIsDeep(t *testing.T) {
	s := Shift{
		Tags:      []string{"a"},
		Coworkers: []Coworker{{Name: "Sam"}},
		Parties:   []Party{{Name: "Gala", Bartenders: []string{"Jo"}}},
	}
	c := s.Clone()
	c.Tags[0] = "b"
	c.Coworkers[0].Name = "Max"
	c.Parties[0].Bartenders[0] = "Al"

	assert.Equal(t, "a", s.Tags[0])
	assert.Equal(t, "Sam", s.Coworkers[0].Name)
	assert.Equal(t, "Jo", s.Parties[0].Bartenders[0])
}

func TestNewCoworkerDefaults(t *testing.T) {
	s := Shift{ID: "x", Location: "Harbor Bar", StartTime: "18:00", EndTime: "01:00"}
	c := s.NewCoworker()
	assert.Equal(t, Coworker{ShiftID: "x", Location: "Harbor Bar", StartTime: "18:00", EndTime: "01:00"}, c)

	s.Coworkers = []Coworker{c}
	assert.False(t, s.RemoveCoworker(3))
	assert.True(t, s.RemoveCoworker(0))
	assert.Empty(t, s.Coworkers)
}
