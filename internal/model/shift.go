package model

import (
	"slices"
	"strings"

	"shift-tracker/pkg/clock"
)

// DefaultHourlyRate is the base pay a new shift starts with when nothing else
// is configured.
const DefaultHourlyRate = 15.0

type Shift struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
	Location   string     `json:"location"`
	Tips       float64    `json:"tips"`
	HourlyRate float64    `json:"hourly_rate"`
	Hours      float64    `json:"hours"`
	Notes      string     `json:"notes"`
	Tags       []string   `json:"tags"`
	Coworkers  []Coworker `json:"coworkers"`
	Parties    []Party    `json:"parties"`
}

// Coworker is someone who worked alongside the shift owner. It belongs to
// exactly one Shift.
type Coworker struct {
	ShiftID   string `json:"shift_id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Location  string `json:"location"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Party is a private event or booking held during a shift.
type Party struct {
	ShiftID    string   `json:"shift_id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Details    string   `json:"details"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	Bartenders []string `json:"bartenders"`
}

// Wages is the hourly pay earned on the shift, tips excluded.
func (s Shift) Wages() float64 {
	return s.Hours * s.HourlyRate
}

// Earnings is tips plus wages.
func (s Shift) Earnings() float64 {
	return s.Tips + s.Wages()
}

// AddTag appends tag unless it is blank or already present.
func (s *Shift) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || slices.Contains(s.Tags, tag) {
		return false
	}
	s.Tags = append(s.Tags, tag)
	return true
}

func (s *Shift) RemoveTag(tag string) bool {
	i := slices.Index(s.Tags, strings.TrimSpace(tag))
	if i < 0 {
		return false
	}
	s.Tags = slices.Delete(s.Tags, i, i+1)
	return true
}

// NewCoworker returns a coworker pre-filled with the shift's location and
// hours, the way a fresh coworker row starts out.
func (s Shift) NewCoworker() Coworker {
	return Coworker{
		ShiftID:   s.ID,
		Location:  s.Location,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func (s *Shift) RemoveCoworker(i int) bool {
	if i < 0 || i >= len(s.Coworkers) {
		return false
	}
	s.Coworkers = slices.Delete(s.Coworkers, i, i+1)
	return true
}

func (s *Shift) RemoveParty(i int) bool {
	if i < 0 || i >= len(s.Parties) {
		return false
	}
	s.Parties = slices.Delete(s.Parties, i, i+1)
	return true
}

// Normalize enforces the derived fields: Hours is recomputed from the time
// range, tags are trimmed and deduplicated, and owned records point back at
// this shift.
func (s *Shift) Normalize() {
	s.Hours = clock.ComputeHours(s.StartTime, s.EndTime)

	tags := s.Tags
	s.Tags = make([]string, 0, len(tags))
	for _, t := range tags {
		s.AddTag(t)
	}
	for i := range s.Coworkers {
		s.Coworkers[i].ShiftID = s.ID
	}
	for i := range s.Parties {
		s.Parties[i].ShiftID = s.ID
	}
}

// Clone returns a deep copy, so callers never share slices with the stored
// record.
func (s Shift) Clone() Shift {
	c := s
	c.Tags = slices.Clone(s.Tags)
	c.Coworkers = slices.Clone(s.Coworkers)
	if s.Parties != nil {
		c.Parties = make([]Party, len(s.Parties))
		for i, p := range s.Parties {
			p.Bartenders = slices.Clone(p.Bartenders)
			c.Parties[i] = p
		}
	}
	return c
}
