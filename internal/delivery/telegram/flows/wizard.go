package flows

import (
	"fmt"
	"strings"

	"shift-tracker/internal/model"
	"shift-tracker/pkg/format"
)

// Step is a question the new-shift wizard is waiting on.
type Step int

const (
	StepLocation Step = iota
	StepStart
	StepEnd
	StepRate
	StepTips
	StepNotes
	StepDone
)

// Draft is a shift being filled in one answer at a time. The date is set
// before the first question, from the date picker.
type Draft struct {
	Shift model.Shift
	Step  Step
}

func NewDraft(s model.Shift) *Draft {
	return &Draft{Shift: s, Step: StepLocation}
}

func (d *Draft) Prompt() string {
	switch d.Step {
	case StepLocation:
		return fmt.Sprintf("Shift on %s. Where did you work?", format.Date(d.Shift.Date))
	case StepStart:
		return "Start time? (e.g. 18:00)"
	case StepEnd:
		return "End time? (e.g. 02:00, past midnight is fine)"
	case StepRate:
		return fmt.Sprintf("Hourly rate? Send a number or keep %s.", format.Currency(d.Shift.HourlyRate))
	case StepTips:
		return "Tips? (e.g. 142.50)"
	case StepNotes:
		return "Any notes? Send text or skip."
	}
	return ""
}

// Skippable reports whether the current question has a default answer.
func (d *Draft) Skippable() bool {
	return d.Step == StepRate || d.Step == StepNotes
}

// Skip keeps the default answer and moves on.
func (d *Draft) Skip() {
	if d.Skippable() {
		d.Step++
	}
}

// Answer records input for the current question and advances. On error the
// step is unchanged so the question can be asked again.
func (d *Draft) Answer(input string) error {
	input = strings.TrimSpace(input)
	switch d.Step {
	case StepLocation:
		if input == "" {
			return fmt.Errorf("location is required")
		}
		d.Shift.Location = input
	case StepStart:
		t, err := ParseTime(input)
		if err != nil {
			return err
		}
		d.Shift.StartTime = t
	case StepEnd:
		t, err := ParseTime(input)
		if err != nil {
			return err
		}
		d.Shift.EndTime = t
	case StepRate:
		v, err := ParseMoney(input)
		if err != nil {
			return err
		}
		d.Shift.HourlyRate = v
	case StepTips:
		v, err := ParseMoney(input)
		if err != nil {
			return err
		}
		d.Shift.Tips = v
	case StepNotes:
		d.Shift.Notes = input
	default:
		return nil
	}
	d.Step++
	return nil
}

// stepFor maps validation error fields to the question that sets them.
var stepFor = map[string]Step{
	"location":    StepLocation,
	"start time":  StepStart,
	"end time":    StepEnd,
	"hourly rate": StepRate,
	"tips":        StepTips,
}

// Rewind goes back to the question that sets field. It reports false for
// fields the wizard never asks about.
func (d *Draft) Rewind(field string) bool {
	step, ok := stepFor[field]
	if ok {
		d.Step = step
	}
	return ok
}

func (d *Draft) Done() bool {
	return d.Step >= StepDone
}
