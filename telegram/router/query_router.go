package router

import (
	"time"

	tg "github.com/m3rciful/pwgenbot/telegram"
	"github.com/m3rciful/pwgenbot/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// QueryRoute wraps an inline-query handler with the shared hardening chain.
func QueryRoute(handler tele.HandlerFunc) tg.Route {
	h := func(c tele.Context) error {
		start := time.Now()
		return handleWithSummary(c, "inline_query", start, "", "", func() error {
			return handler(c)
		})
	}
	return tg.Route{
		Endpoint: tele.OnQuery,
		Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(h)),
	}
}
