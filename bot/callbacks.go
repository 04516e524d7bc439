package bot

import (
	"errors"
	"log/slog"

	"github.com/m3rciful/pwgenbot/logger"
	"github.com/m3rciful/pwgenbot/passgen"
	"github.com/m3rciful/pwgenbot/settings"
	"github.com/m3rciful/pwgenbot/telegram/callbacks"
	tghelpers "github.com/m3rciful/pwgenbot/telegram/helpers"

	"github.com/samber/lo"
	tele "gopkg.in/telebot.v4"
)

// commandKind enumerates every button action the bot understands.
type commandKind int

const (
	cmdUnknown commandKind = iota
	cmdSelectLength
	cmdCustomLength
	cmdCancelLength
	cmdToggleClass
	cmdGenerate
	cmdRegenerate
	cmdClear
	cmdHelp
)

// command is a parsed button press. Fields beyond kind are set only for the
// kinds that carry them.
type command struct {
	kind   commandKind
	length int
	class  settings.Class
}

// parseCommand maps a callback unique and payload onto the closed command
// vocabulary. Anything outside it, malformed numbers and out-of-range
// lengths included, parses to cmdUnknown.
func parseCommand(unique, payload string) command {
	switch unique {
	case cbLength:
		if payload == payloadCustom {
			return command{kind: cmdCustomLength}
		}
		n, ok := tghelpers.ParseInt(payload)
		if !ok || n < settings.MinLength || n > settings.MaxLength {
			return command{kind: cmdUnknown}
		}
		return command{kind: cmdSelectLength, length: n}
	case cbLengthCancel:
		return command{kind: cmdCancelLength}
	case cbToggle:
		class, ok := settings.ParseClass(payload)
		if !ok {
			return command{kind: cmdUnknown}
		}
		return command{kind: cmdToggleClass, class: class}
	case cbAction:
		switch payload {
		case payloadGenerate:
			return command{kind: cmdGenerate}
		case payloadRegenerate:
			return command{kind: cmdRegenerate}
		case payloadClear:
			return command{kind: cmdClear}
		case payloadHelp:
			return command{kind: cmdHelp}
		}
	}
	return command{kind: cmdUnknown}
}

// unknownNotice picks the alert text for an unparseable press; toggles keep
// their own wording.
func unknownNotice(unique string) string {
	if unique == cbToggle {
		return noticeUnknownToggle
	}
	return noticeUnknownAction
}

// dispatchCallback is the single entry point for every registered callback
// unique. It parses the press and dispatches over the command kinds; each
// branch answers the callback exactly once.
func (a *App) dispatchCallback(c tele.Context) error {
	key, payload := callbacks.CallbackKey(c), callbacks.CallbackPayload(c)

	cmd := parseCommand(key, payload)
	switch cmd.kind {
	case cmdSelectLength:
		return a.selectLength(c, cmd.length)
	case cmdCustomLength:
		return a.beginCustomLength(c)
	case cmdCancelLength:
		return a.cancelCustomLength(c)
	case cmdToggleClass:
		return a.toggleClass(c, cmd.class)
	case cmdGenerate:
		return a.generate(c, false)
	case cmdRegenerate:
		return a.generate(c, true)
	case cmdClear:
		return a.clearPassword(c)
	case cmdHelp:
		return a.helpCallback(c)
	}
	return c.Respond(&tele.CallbackResponse{Text: unknownNotice(key), ShowAlert: true})
}

// renderPanel redraws the settings panel in place, or sends a fresh one when
// there is no message to edit.
func (a *App) renderPanel(c tele.Context, s settings.Settings) error {
	return tghelpers.EditOrSendMD(c, summaryText(s), mainKeyboard(s))
}

func (a *App) selectLength(c tele.Context, length int) error {
	var snap settings.Settings
	a.store.Update(senderID(c), func(s *settings.Settings) {
		s.Length = length
		snap = *s
	})
	if err := c.Respond(); err != nil {
		return err
	}
	return a.renderPanel(c, snap)
}

func (a *App) toggleClass(c tele.Context, class settings.Class) error {
	var snap settings.Settings
	a.store.Update(senderID(c), func(s *settings.Settings) {
		s.Toggle(class)
		snap = *s
	})
	if err := c.Respond(); err != nil {
		return err
	}
	return a.renderPanel(c, snap)
}

// generate creates a password from the user's current settings, remembers it
// and sends it as a separate message so the panel stays in place. Regenerate
// shares the path; it only changes the message prefix and toasts when there
// was nothing to regenerate.
func (a *App) generate(c tele.Context, regen bool) error {
	userID := senderID(c)
	s := a.store.GetOrCreate(userID)

	password, err := passgen.Generate(passgenOptions(s))
	if err != nil {
		if errors.Is(err, passgen.ErrNoClasses) {
			return c.Respond(&tele.CallbackResponse{Text: noticeEmptyPool, ShowAlert: true})
		}
		notice := lo.Ternary(regen, noticeRegenError, noticeGenerateError)
		if respErr := c.Respond(&tele.CallbackResponse{Text: notice, ShowAlert: true}); respErr != nil {
			return errors.Join(err, respErr)
		}
		return err
	}

	var snap settings.Settings
	a.store.Update(userID, func(st *settings.Settings) {
		st.LastPassword = password
		snap = *st
	})

	resp := &tele.CallbackResponse{}
	if regen && s.LastPassword == "" {
		resp.Text = noticeNoPrevious
	}
	if err := c.Respond(resp); err != nil {
		return err
	}

	ctx := tghelpers.BuildContext(c)
	logger.Debug(ctx, "app", "password.generated",
		slog.Int("len", len(password)),
		slog.Int("classes", snap.EnabledCount()),
		slog.Bool("regen", regen),
	)

	if err := tghelpers.SendMD(c, passwordMessage(password, regen)); err != nil {
		return err
	}
	return a.renderPanel(c, snap)
}

func (a *App) clearPassword(c tele.Context) error {
	var snap settings.Settings
	a.store.Update(senderID(c), func(s *settings.Settings) {
		s.LastPassword = ""
		snap = *s
	})
	if err := c.Respond(&tele.CallbackResponse{Text: noticeCleared}); err != nil {
		return err
	}
	return a.renderPanel(c, snap)
}

func (a *App) helpCallback(c tele.Context) error {
	if err := c.Respond(); err != nil {
		return err
	}
	return tghelpers.SendText(c, helpShortText)
}
