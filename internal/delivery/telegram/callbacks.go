package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"shift-tracker/internal/delivery/telegram/flows"
	"shift-tracker/internal/delivery/telegram/keyboards"
	"shift-tracker/internal/delivery/telegram/middleware"
	"shift-tracker/internal/model"
	"shift-tracker/internal/view"
)

func (h *Handler) registerCallbacks() {
	r := h.Router

	r.Register(keyboards.NewToday, func(c telebot.Context, _ string) error {
		return h.startDraft(c, time.Now().In(h.Shifts.Location))
	})
	r.Register(keyboards.NewOtherDate, func(c telebot.Context, _ string) error {
		return h.Calendar.ShowCalendar(c)
	})

	r.Register(keyboards.Skip, func(c telebot.Context, _ string) error {
		d, ok, _ := h.sessions.updateDraft(c.Chat().ID, func(d *flows.Draft) error {
			d.Skip()
			return nil
		})
		if !ok {
			return nil
		}
		return h.advanceDraft(c, d)
	})
	r.Register(keyboards.Cancel, func(c telebot.Context, _ string) error {
		return h.handleCancel(c)
	})

	r.Register(keyboards.Open, func(c telebot.Context, id string) error {
		h.sessions.clear(c.Chat().ID)
		return h.showCard(c, id)
	})
	r.Register(keyboards.Edit, func(c telebot.Context, id string) error {
		return middleware.EditOrSend(c, "Which field?", keyboards.EditFields(id))
	})
	r.Register(keyboards.EditField, func(c telebot.Context, payload string) error {
		id, field, _ := strings.Cut(payload, "|")
		s, err := h.Shifts.Get(id)
		if err != nil {
			return h.fail(c, err)
		}
		f := flows.Field(field)
		h.sessions.setPending(c.Chat().ID, &pending{kind: pendingField, shiftID: id, field: f})
		return c.Send(fmt.Sprintf("Send the new %s (now: %s).", strings.ToLower(f.Label()), currentValue(s, f)))
	})
	r.Register(keyboards.Tags, func(c telebot.Context, id string) error {
		h.sessions.setPending(c.Chat().ID, &pending{kind: pendingTags, shiftID: id})
		return c.Send("Send tags separated by commas. Prefix a tag with - to remove it.")
	})
	r.Register(keyboards.Coworker, func(c telebot.Context, id string) error {
		h.sessions.setPending(c.Chat().ID, &pending{kind: pendingCoworker, shiftID: id})
		return c.Send("Send the coworker as: Name; Position; 18:00-00:00\nPosition and times are optional.")
	})
	r.Register(keyboards.Party, func(c telebot.Context, id string) error {
		h.sessions.setPending(c.Chat().ID, &pending{kind: pendingParty, shiftID: id})
		return c.Send("Send the party as: Name; Type; Details; 19:00-23:00; Bartender, Bartender\nOnly the name is required.")
	})
	r.Register(keyboards.DropCoworker, func(c telebot.Context, payload string) error {
		return h.dropChild(c, payload, h.Shifts.RemoveCoworker)
	})
	r.Register(keyboards.DropParty, func(c telebot.Context, payload string) error {
		return h.dropChild(c, payload, h.Shifts.RemoveParty)
	})

	r.Register(keyboards.Delete, func(c telebot.Context, id string) error {
		s, err := h.Shifts.Get(id)
		if err != nil {
			return h.fail(c, err)
		}
		return middleware.EditOrSend(c, "Delete this shift? Its coworkers and parties go with it.\n\n"+view.Card(s),
			keyboards.ConfirmDelete(id))
	})
	r.Register(keyboards.ConfirmDel, func(c telebot.Context, id string) error {
		err := h.Async.Run(h.Ctx, func() error {
			return h.Shifts.Delete(h.Ctx, id)
		})
		if err != nil {
			return h.fail(c, err)
		}
		h.Log.Info("shift deleted", zap.String("id", id))
		return middleware.EditOrSend(c, "Shift deleted.")
	})
}

func (h *Handler) showCard(c telebot.Context, id string) error {
	s, err := h.Shifts.Get(id)
	if err != nil {
		return h.fail(c, err)
	}
	return middleware.EditOrSend(c, view.Card(s), keyboards.ShiftCard(s))
}

// dropChild removes the coworker or party addressed by "shiftID|index".
func (h *Handler) dropChild(c telebot.Context, payload string, remove func(ctx context.Context, id string, i int) (model.Shift, error)) error {
	id, idx, _ := strings.Cut(payload, "|")
	i, err := strconv.Atoi(idx)
	if err != nil {
		return nil
	}
	var saved model.Shift
	err = h.Async.Run(h.Ctx, func() error {
		var rerr error
		saved, rerr = remove(h.Ctx, id, i)
		return rerr
	})
	if err != nil {
		return h.fail(c, err)
	}
	return middleware.EditOrSend(c, view.Card(saved), keyboards.ShiftCard(saved))
}

func currentValue(s model.Shift, f flows.Field) string {
	switch f {
	case flows.FieldDate:
		return s.Date
	case flows.FieldLocation:
		return s.Location
	case flows.FieldStart:
		return s.StartTime
	case flows.FieldEnd:
		return s.EndTime
	case flows.FieldRate:
		return strconv.FormatFloat(s.HourlyRate, 'f', 2, 64)
	case flows.FieldTips:
		return strconv.FormatFloat(s.Tips, 'f', 2, 64)
	case flows.FieldNotes:
		if s.Notes == "" {
			return "none"
		}
		return s.Notes
	}
	return ""
}
