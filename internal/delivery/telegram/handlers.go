package telegram

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"shift-tracker/internal/app/service"
	"shift-tracker/internal/delivery/telegram/flows"
	"shift-tracker/internal/delivery/telegram/keyboards"
	"shift-tracker/internal/delivery/telegram/middleware"
	"shift-tracker/internal/delivery/telegram/router"
	"shift-tracker/internal/domain"
	"shift-tracker/internal/model"
	"shift-tracker/internal/view"
	"shift-tracker/pkg/calendar"
	"shift-tracker/pkg/format"
)

type Handler struct {
	Ctx      context.Context
	Bot      *telebot.Bot
	Shifts   *service.ShiftServiceImpl
	Async    *service.AsyncService
	Calendar *calendar.CalendarController
	Router   *router.CallbackRouter
	Log      *zap.Logger

	sessions *sessions
}

func (h *Handler) Register() {
	h.sessions = newSessions()
	if h.Ctx == nil {
		h.Ctx = context.Background()
	}

	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/new", h.handleNew)
	h.Bot.Handle(&keyboards.BtnNewShift, h.handleNew)
	h.Bot.Handle("/shifts", h.handleList)
	h.Bot.Handle(&keyboards.BtnShifts, h.handleList)
	h.Bot.Handle("/dashboard", h.handleDashboard)
	h.Bot.Handle(&keyboards.BtnDashboard, h.handleDashboard)
	h.Bot.Handle("/cancel", h.handleCancel)
	h.Bot.Handle(telebot.OnText, h.handleText)

	if h.Calendar.Now == nil {
		h.Calendar.Now = func() time.Time { return time.Now().In(h.Shifts.Location) }
	}
	h.Calendar.OnDate = func(date time.Time, c telebot.Context) error {
		return h.startDraft(c, date)
	}
	h.Router.CalDelegate = h.Calendar.Handle
	h.registerCallbacks()
	h.Router.Attach(h.Bot)
}

func (h *Handler) handleStart(c telebot.Context) error {
	h.sessions.clear(c.Chat().ID)
	return c.Send("Welcome! Track your shifts, tips and earnings.", keyboards.MainMenu())
}

func (h *Handler) handleNew(c telebot.Context) error {
	h.sessions.clear(c.Chat().ID)
	return c.Send("When was the shift?", keyboards.PickDate())
}

func (h *Handler) handleCancel(c telebot.Context) error {
	h.sessions.clear(c.Chat().ID)
	return middleware.EditOrSend(c, "Cancelled.")
}

func (h *Handler) handleList(c telebot.Context) error {
	shifts := h.Shifts.List()
	if len(shifts) == 0 {
		return c.Send("No shifts recorded yet. Tap ➕ New shift to add one.", keyboards.MainMenu())
	}
	text := "Your shifts, newest first:"
	if len(shifts) > keyboards.MaxListed {
		text = "Your latest shifts:"
	}
	return middleware.EditOrSend(c, text, keyboards.ShiftList(shifts))
}

func (h *Handler) handleDashboard(c telebot.Context) error {
	return c.Send(view.Summary(h.Shifts.Summary(time.Now())))
}

// startDraft opens the new-shift wizard for date.
func (h *Handler) startDraft(c telebot.Context, date time.Time) error {
	s := h.Shifts.NewShift()
	s.Date = date.Format(format.DateLayout)
	d := flows.NewDraft(s)
	prompt, markup := d.Prompt(), keyboards.WizardStep(d.Skippable())
	h.sessions.setDraft(c.Chat().ID, d)
	h.Log.Debug("draft started", zap.Int64("chat", c.Chat().ID), zap.String("date", s.Date))
	return middleware.EditOrSend(c, prompt, markup)
}

func (h *Handler) handleText(c telebot.Context) error {
	chatID := c.Chat().ID
	d, ok, err := h.sessions.updateDraft(chatID, func(d *flows.Draft) error {
		return d.Answer(c.Text())
	})
	switch {
	case ok && err != nil:
		return c.Send(err.Error()+"\n"+d.Prompt(), keyboards.WizardStep(d.Skippable()))
	case ok:
		return h.advanceDraft(c, d)
	}
	if p := h.sessions.get(chatID).pending; p != nil {
		return h.answerPending(c, p)
	}
	return c.Send("Use the menu below.", keyboards.MainMenu())
}

// advanceDraft asks the next question, or saves the shift once all are
// answered. A shift the service rejects sends the wizard back to the
// offending question.
func (h *Handler) advanceDraft(c telebot.Context, d flows.Draft) error {
	if !d.Done() {
		return middleware.EditOrSend(c, d.Prompt(), keyboards.WizardStep(d.Skippable()))
	}
	var saved model.Shift
	err := h.Async.Run(h.Ctx, func() error {
		var err error
		saved, err = h.Shifts.Create(h.Ctx, d.Shift)
		return err
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) && d.Rewind(verr.Field) {
			prompt, markup := d.Prompt(), keyboards.WizardStep(d.Skippable())
			h.sessions.setDraft(c.Chat().ID, &d)
			if ferr := h.fail(c, err); ferr != nil {
				return ferr
			}
			return c.Send(prompt, markup)
		}
		return h.fail(c, err)
	}
	h.Log.Info("shift created", zap.String("id", saved.ID), zap.String("date", saved.Date))
	return c.Send("Saved!\n\n"+view.Card(saved), keyboards.ShiftCard(saved))
}

func (h *Handler) answerPending(c telebot.Context, p *pending) error {
	input := c.Text()
	var (
		saved model.Shift
		err   error
	)
	runErr := h.Async.Run(h.Ctx, func() error {
		switch p.kind {
		case pendingField:
			saved, err = h.Shifts.Edit(h.Ctx, p.shiftID, func(s *model.Shift) error {
				if err := flows.ApplyField(s, p.field, input); err != nil {
					return &domain.ValidationError{Field: p.field.Label(), Reason: err.Error()}
				}
				return nil
			})
		case pendingTags:
			add, remove := flows.ParseTags(input)
			saved, err = h.Shifts.Edit(h.Ctx, p.shiftID, func(s *model.Shift) error {
				for _, t := range add {
					s.AddTag(t)
				}
				for _, t := range remove {
					s.RemoveTag(t)
				}
				return nil
			})
		case pendingCoworker:
			cw, perr := flows.ParseCoworker(input)
			if perr != nil {
				return &domain.ValidationError{Field: "coworker", Reason: perr.Error()}
			}
			saved, err = h.Shifts.AddCoworker(h.Ctx, p.shiftID, cw)
		case pendingParty:
			party, perr := flows.ParseParty(input)
			if perr != nil {
				return &domain.ValidationError{Field: "party", Reason: perr.Error()}
			}
			saved, err = h.Shifts.AddParty(h.Ctx, p.shiftID, party)
		}
		return err
	})
	if runErr != nil {
		if domain.IsNotFound(runErr) {
			h.sessions.clear(c.Chat().ID)
		}
		return h.fail(c, runErr)
	}
	h.sessions.clear(c.Chat().ID)
	return c.Send(view.Card(saved), keyboards.ShiftCard(saved))
}

// fail tells the user what went wrong. Validation and lookup problems are
// expected; anything else is logged as an error.
func (h *Handler) fail(c telebot.Context, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Send("Can't save that: " + verr.Error() + "\nTry again or /cancel.")
	case domain.IsNotFound(err):
		return c.Send("That shift no longer exists.", keyboards.MainMenu())
	}
	h.Log.Error("request failed", zap.Int64("chat", c.Chat().ID), zap.Error(err))
	return c.Send("Something went wrong: " + err.Error())
}
