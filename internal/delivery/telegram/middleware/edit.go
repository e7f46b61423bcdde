package middleware

import (
	"errors"

	"gopkg.in/telebot.v3"
)

// EditOrSend replaces the message a button was pressed on, or sends a new one
// when there is nothing to edit. Telegram rejects edits that change nothing;
// that case is treated as success.
func EditOrSend(c telebot.Context, text string, opts ...interface{}) error {
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}
	err := c.Edit(text, opts...)
	if err == nil || errors.Is(err, telebot.ErrSameMessageContent) {
		return nil
	}
	return c.Send(text, opts...)
}
