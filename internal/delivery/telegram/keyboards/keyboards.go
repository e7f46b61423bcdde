package keyboards

import (
	"strconv"

	"gopkg.in/telebot.v3"

	"shift-tracker/internal/delivery/telegram/flows"
	"shift-tracker/internal/model"
	"shift-tracker/internal/view"
)

// Callback keys.
const (
	NewToday     = "new_today"
	NewOtherDate = "new_other"
	Skip         = "skip"
	Cancel       = "cancel"
	Open         = "open"
	Edit         = "edit"
	EditField    = "edit_field"
	Tags         = "tags"
	Coworker     = "coworker"
	DropCoworker = "drop_coworker"
	Party        = "party"
	DropParty    = "drop_party"
	Delete       = "delete"
	ConfirmDel   = "delete_yes"
)

var (
	BtnNewShift  = telebot.Btn{Text: "➕ New shift"}
	BtnShifts    = telebot.Btn{Text: "📋 Shifts"}
	BtnDashboard = telebot.Btn{Text: "📊 Dashboard"}
)

// MaxListed caps how many shifts the list keyboard shows.
const MaxListed = 20

func MainMenu() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(BtnNewShift),
		markup.Row(BtnShifts, BtnDashboard),
	)
	return markup
}

func PickDate() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("Today", NewToday),
		markup.Data("Other date", NewOtherDate),
	))
	return markup
}

// WizardStep offers Skip where the current question has a default.
func WizardStep(skippable bool) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	row := telebot.Row{}
	if skippable {
		row = append(row, markup.Data("Skip", Skip))
	}
	row = append(row, markup.Data("Cancel", Cancel))
	markup.Inline(row)
	return markup
}

// ShiftList has one button per shift, newest first.
func ShiftList(shifts []model.Shift) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	for i, s := range shifts {
		if i == MaxListed {
			break
		}
		rows = append(rows, markup.Row(markup.Data(view.Line(s), Open, s.ID)))
	}
	markup.Inline(rows...)
	return markup
}

func ShiftCard(s model.Shift) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	rows := []telebot.Row{
		markup.Row(markup.Data("✏️ Edit", Edit, s.ID), markup.Data("🏷 Tags", Tags, s.ID)),
		markup.Row(markup.Data("👥 Add coworker", Coworker, s.ID), markup.Data("🎉 Add party", Party, s.ID)),
	}
	for i, c := range s.Coworkers {
		rows = append(rows, markup.Row(markup.Data("✖ "+c.Name, DropCoworker, s.ID, strconv.Itoa(i))))
	}
	for i, p := range s.Parties {
		rows = append(rows, markup.Row(markup.Data("✖ "+p.Name, DropParty, s.ID, strconv.Itoa(i))))
	}
	rows = append(rows, markup.Row(markup.Data("🗑 Delete", Delete, s.ID)))
	markup.Inline(rows...)
	return markup
}

func EditFields(id string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	row := telebot.Row{}
	for _, f := range flows.EditableFields {
		row = append(row, markup.Data(f.Label(), EditField, id, string(f)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = telebot.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(markup.Data("Back", Open, id)))
	markup.Inline(rows...)
	return markup
}

func ConfirmDelete(id string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("Yes, delete", ConfirmDel, id),
		markup.Data("Cancel", Open, id),
	))
	return markup
}
