// Package keyboard provides small builders for inline keyboards.
package keyboard

import (
	"github.com/samber/lo"
	tele "gopkg.in/telebot.v4"
)

const defaultCancelButtonText = "❌ Cancel"

// ToInlineKeyboard converts rows of tele.Btn into the raw inline-button grid
// expected by tele.ReplyMarkup.InlineKeyboard.
func ToInlineKeyboard(rows [][]tele.Btn) [][]tele.InlineButton {
	return lo.Map(rows, func(row []tele.Btn, _ int) []tele.InlineButton {
		return lo.Map(row, func(b tele.Btn, _ int) tele.InlineButton {
			return *b.Inline()
		})
	})
}

// ChunkButtons splits a flat list of buttons into rows of up to n per row.
// n below one falls back to one button per row.
func ChunkButtons(buttons []tele.Btn, n int) [][]tele.Btn {
	if n < 1 {
		n = 1
	}
	return lo.Chunk(buttons, n)
}

// CancelButton returns an inline cancel button bound to the given callback
// unique. An optional label overrides the default text.
func CancelButton(markup *tele.ReplyMarkup, unique string, label ...string) tele.Btn {
	text := defaultCancelButtonText
	if len(label) > 0 && label[0] != "" {
		text = label[0]
	}
	return markup.Data(text, unique)
}

// SingleCancelMarkup creates an inline keyboard holding a single cancel button.
func SingleCancelMarkup(unique string, label ...string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	btn := CancelButton(markup, unique, label...)
	markup.InlineKeyboard = [][]tele.InlineButton{{*btn.Inline()}}
	return markup
}
