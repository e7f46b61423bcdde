package flows

import (
	"fmt"
	"strings"
	"time"

	"shift-tracker/internal/model"
	"shift-tracker/pkg/format"
)

// Field names a shift attribute that can be edited from the card.
type Field string

const (
	FieldDate     Field = "date"
	FieldLocation Field = "location"
	FieldStart    Field = "start"
	FieldEnd      Field = "end"
	FieldRate     Field = "rate"
	FieldTips     Field = "tips"
	FieldNotes    Field = "notes"
)

// EditableFields in the order they are offered.
var EditableFields = []Field{FieldDate, FieldLocation, FieldStart, FieldEnd, FieldRate, FieldTips, FieldNotes}

func (f Field) Label() string {
	switch f {
	case FieldStart:
		return "Start time"
	case FieldEnd:
		return "End time"
	case FieldRate:
		return "Hourly rate"
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// ApplyField parses input for f and writes it to s.
func ApplyField(s *model.Shift, f Field, input string) error {
	input = strings.TrimSpace(input)
	switch f {
	case FieldDate:
		if _, err := time.Parse(format.DateLayout, input); err != nil {
			return fmt.Errorf("%q is not a date like 2024-03-05", input)
		}
		s.Date = input
	case FieldLocation:
		if input == "" {
			return fmt.Errorf("location is required")
		}
		s.Location = input
	case FieldStart, FieldEnd:
		t, err := ParseTime(input)
		if err != nil {
			return err
		}
		if f == FieldStart {
			s.StartTime = t
		} else {
			s.EndTime = t
		}
	case FieldRate, FieldTips:
		v, err := ParseMoney(input)
		if err != nil {
			return err
		}
		if f == FieldRate {
			s.HourlyRate = v
		} else {
			s.Tips = v
		}
	case FieldNotes:
		s.Notes = input
	default:
		return fmt.Errorf("unknown field %q", f)
	}
	return nil
}
