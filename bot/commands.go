package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/m3rciful/pwgenbot/buildinfo"
	"github.com/m3rciful/pwgenbot/settings"
	tghelpers "github.com/m3rciful/pwgenbot/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// startCommand makes sure the user has settings and opens the panel.
func (a *App) startCommand(c tele.Context) error {
	s := tghelpers.CurrentSettings[settings.Settings](c, a.store)
	return tghelpers.SendMD(c, startText(s), mainKeyboard(s))
}

func (a *App) helpCommand(c tele.Context) error {
	return tghelpers.SendMD(c, helpText)
}

// statsCommand reports runtime numbers to the admin: uptime, store size,
// outbound queue state and the build stamp.
func (a *App) statsCommand(c tele.Context) error {
	uptime := time.Since(a.startedAt).Round(time.Second)

	var queueDepth int
	var sendErrors uint64
	if d := a.disp; d != nil {
		queueDepth = d.QueueDepth()
		sendErrors = d.ErrorCount()
	}

	text := fmt.Sprintf(
		"📊 *Bot stats*\n\n"+
			"*Uptime:* %s\n"+
			"*Known users:* %d\n"+
			"*Send queue:* %d\n"+
			"*Send errors:* %d\n"+
			"*Version:* %s (%s)",
		uptime, a.store.Len(), queueDepth, sendErrors, buildinfo.Version, buildinfo.Commit,
	)
	return tghelpers.SendMD(c, text)
}

// textFallback answers free-form input that matched no command and no active
// conversation. Slash-prefixed text is an unknown command; everything else
// gets pointed at /start.
func (a *App) textFallback(c tele.Context) error {
	if strings.HasPrefix(strings.TrimSpace(c.Text()), "/") {
		return tghelpers.SendText(c, noticeUnknownCommand)
	}
	return tghelpers.SendText(c, strayPointerText)
}

// adminReject handles admin-only commands invoked by anyone else. The reply
// matches the unknown-command one so hidden commands stay hidden.
func (a *App) adminReject(c tele.Context) error {
	return tghelpers.SendText(c, noticeUnknownCommand)
}
