package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

// Callback keys. Every key starts with "cal_" so a router can hand the whole
// family to the controller.
const (
	KeyDay    = "cal_day"
	KeyNav    = "cal_nav"
	KeyIgnore = "cal_ignore"

	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// CalendarController drives an inline month calendar used to pick a date.
type CalendarController struct {
	OnDate func(time.Time, telebot.Context) error
	Now    func() time.Time
}

// ShowCalendar sends, or edits into, the calendar for the current month.
func (cc *CalendarController) ShowCalendar(c telebot.Context) error {
	now := time.Now()
	if cc.Now != nil {
		now = cc.Now()
	}
	return SendCalendar(c, now.Year(), now.Month())
}

// SendCalendar renders the calendar for year/month onto the current message.
func SendCalendar(c telebot.Context, year int, month time.Month) error {
	title, markup := Build(year, month)
	if c.Callback() != nil {
		return c.Edit(title, markup)
	}
	return c.Send(title, markup)
}

// Build lays out one month, weeks starting on Sunday, with navigation to the
// neighbouring months underneath.
func Build(year int, month time.Month) (string, *telebot.ReplyMarkup) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	markup := &telebot.ReplyMarkup{}
	blank := func() telebot.Btn { return markup.Data("·", KeyIgnore) }

	header := telebot.Row{}
	for _, d := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		header = append(header, markup.Data(d, KeyIgnore))
	}
	rows := []telebot.Row{header}

	week := telebot.Row{}
	for i := 0; i < int(first.Weekday()); i++ {
		week = append(week, blank())
	}
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		week = append(week, markup.Data(strconv.Itoa(d.Day()), KeyDay, d.Format(dayLayout)))
		if len(week) == 7 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, blank())
		}
		rows = append(rows, week)
	}

	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)
	rows = append(rows, telebot.Row{
		markup.Data("‹ "+prev.Format("Jan"), KeyNav, prev.Format(monthLayout)),
		markup.Data(next.Format("Jan")+" ›", KeyNav, next.Format(monthLayout)),
	})
	markup.Inline(rows...)

	return "Pick a date: " + first.Format("January 2006"), markup
}

// Handle serves a calendar callback. key and payload are the callback data
// split at the first '|'.
func (cc *CalendarController) Handle(c telebot.Context, key, payload string) error {
	switch key {
	case KeyDay:
		date, err := ParseDay(payload)
		if err != nil {
			return c.Send("That date didn't parse, try again.")
		}
		if cc.OnDate == nil {
			return nil
		}
		return cc.OnDate(date, c)
	case KeyNav:
		year, month, err := ParseMonth(payload)
		if err != nil {
			return c.Send("That month didn't parse, try again.")
		}
		return SendCalendar(c, year, month)
	}
	return nil
}

func ParseDay(payload string) (time.Time, error) {
	return time.Parse(dayLayout, strings.TrimSpace(payload))
}

func ParseMonth(payload string) (int, time.Month, error) {
	t, err := time.Parse(monthLayout, strings.TrimSpace(payload))
	if err != nil {
		return 0, 0, fmt.Errorf("month %q: %w", payload, err)
	}
	return t.Year(), t.Month(), nil
}
