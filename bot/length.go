package bot

import (
	"strconv"
	"strings"

	"github.com/m3rciful/pwgenbot/logger"
	"github.com/m3rciful/pwgenbot/settings"
	"github.com/m3rciful/pwgenbot/telegram/format"
	tghelpers "github.com/m3rciful/pwgenbot/telegram/helpers"
	"github.com/m3rciful/pwgenbot/telegram/keyboard"
	"github.com/m3rciful/pwgenbot/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// stateAwaitLength marks a user who was asked to type a custom length.
const stateAwaitLength state.State = "await_length"

// Scratch keys remembering which panel message to redraw once the typed
// length arrives.
const (
	tempPanelChatID    = "panel_chat_id"
	tempPanelMessageID = "panel_message_id"
)

// beginCustomLength stores the panel reference, arms the conversation state
// and asks for a number.
func (a *App) beginCustomLength(c tele.Context) error {
	userID := senderID(c)
	if msg := c.Message(); msg != nil && msg.Chat != nil {
		a.fsm.SetTemp(userID, tempPanelChatID, msg.Chat.ID)
		a.fsm.SetTemp(userID, tempPanelMessageID, int64(msg.ID))
	}
	a.fsm.SetState(userID, stateAwaitLength)

	if err := c.Respond(); err != nil {
		return err
	}
	return tghelpers.SendMD(c, promptLengthText, keyboard.SingleCancelMarkup(cbLengthCancel))
}

// cancelCustomLength drops the conversation state and disarms the prompt's
// cancel button by editing the prompt in place.
func (a *App) cancelCustomLength(c tele.Context) error {
	a.fsm.Clear(senderID(c))
	if err := c.Respond(&tele.CallbackResponse{Text: noticeCancelled}); err != nil {
		return err
	}
	return tghelpers.EditOrSendMD(c, lengthCancelledText)
}

// handleLengthInput consumes the next text message while stateAwaitLength is
// active. Valid input updates the length and redraws the remembered panel;
// anything else re-prompts and keeps the state armed.
func (a *App) handleLengthInput(c tele.Context) error {
	userID := senderID(c)

	n, ok := tghelpers.ParseInt(c.Text())
	if !ok || n < settings.MinLength || n > settings.MaxLength {
		return tghelpers.SendMD(c, invalidLengthText(c.Text()), keyboard.SingleCancelMarkup(cbLengthCancel))
	}

	var snap settings.Settings
	a.store.Update(userID, func(s *settings.Settings) {
		s.Length = n
		snap = *s
	})

	chatID, okChat := a.fsm.GetTempInt64(userID, tempPanelChatID)
	messageID, okMsg := a.fsm.GetTempInt64(userID, tempPanelMessageID)
	a.fsm.Clear(userID)

	text, markup := summaryText(snap), mainKeyboard(snap)
	if okChat && okMsg {
		stored := &tele.StoredMessage{
			MessageID: strconv.FormatInt(messageID, 10),
			ChatID:    chatID,
		}
		return tghelpers.EditStoredMD(c, stored, text, markup)
	}
	return tghelpers.SendMD(c, text, markup)
}

// invalidLengthText echoes the rejected input, trimmed and escaped so it
// cannot distort the Markdown reply.
func invalidLengthText(input string) string {
	compact := strings.Join(strings.Fields(logger.SanitizeLimit(input, 32)), " ")
	echo, err := format.EscapeMarkdown(compact, format.MarkdownV1)
	if err != nil || echo == "" {
		return "Send a number between 4 and 128."
	}
	return "\"" + echo + "\" is not a valid length. Send a number between 4 and 128."
}
