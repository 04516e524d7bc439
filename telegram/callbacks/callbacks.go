// Package callbacks provides helpers for reading inline-button callback data.
package callbacks

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Telebot encodes button callbacks as "\f<unique>|<payload>". For uniques
// with a registered handler the library strips the marker and pre-fills
// cb.Unique before dispatch; the generic OnCallback route receives the raw
// form. Split handles both.

// Split returns the callback's unique key and payload.
func Split(cb *tele.Callback) (unique, payload string) {
	if cb == nil {
		return "", ""
	}
	if cb.Unique != "" {
		return cb.Unique, cb.Data
	}
	raw := strings.TrimPrefix(cb.Data, "\f")
	unique, payload, _ = strings.Cut(raw, "|")
	return strings.TrimSpace(unique), payload
}

// CallbackKey returns the unique key of the pressed button, or an empty
// string when the update carries no callback.
func CallbackKey(c tele.Context) string {
	k, _ := Split(c.Callback())
	return k
}

// CallbackPayload returns the payload of the pressed button.
func CallbackPayload(c tele.Context) string {
	_, p := Split(c.Callback())
	return p
}
