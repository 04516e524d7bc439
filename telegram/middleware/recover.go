package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/m3rciful/pwgenbot/logger"
	tghelpers "github.com/m3rciful/pwgenbot/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// RecoverMiddleware catches panics in handlers so a single bad update cannot
// crash the bot. Stack capture follows the logging configuration.
func RecoverMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		defer func() {
			if r := recover(); r != nil {
				ctx := tghelpers.BuildContext(c)
				attrs := []slog.Attr{slog.Any("err", r)}
				if logger.StacksEnabled() {
					attrs = append(attrs, slog.String("stack", string(debug.Stack())))
				}
				logger.Error(ctx, "tg", "tg.panic", attrs...)
			}
		}()
		return next(c)
	}
}
