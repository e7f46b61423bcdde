package router

import (
	"strings"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter dispatches inline button presses by their unique key.
// Keys starting with "cal_" go to CalDelegate.
type CallbackRouter struct {
	handlers    map[string]HandlerFunc
	CalDelegate func(c telebot.Context, key, payload string) error
	log         *zap.Logger
}

func New(logger *zap.Logger) *CallbackRouter {
	return &CallbackRouter{handlers: make(map[string]HandlerFunc), log: logger}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

// Attach installs the router as the bot's callback handler.
func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		_, err := r.Dispatch(c)
		return err
	})
}

// Dispatch routes one callback and reports whether any handler took it.
func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	key, payload := Split(c.Data())
	r.log.Debug("callback", zap.String("key", key), zap.String("payload", payload))
	_ = c.Respond()

	if strings.HasPrefix(key, "cal_") {
		if r.CalDelegate != nil {
			return true, r.CalDelegate(c, key, payload)
		}
		return true, nil
	}
	if h, ok := r.handlers[key]; ok {
		return true, h(c, payload)
	}
	r.log.Warn("unhandled callback", zap.String("key", key))
	return false, nil
}

// Split turns raw callback data "\fkey|payload" into its parts.
func Split(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	key, payload, _ = strings.Cut(raw, "|")
	return key, payload
}
