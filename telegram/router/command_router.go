package router

import (
	"time"

	"github.com/m3rciful/pwgenbot/logger"
	tg "github.com/m3rciful/pwgenbot/telegram"
	"github.com/m3rciful/pwgenbot/telegram/middleware"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// CommandRouteOptions configures how commands are wrapped and exposed.
type CommandRouteOptions struct {
	AdminID       int64
	OnAdminReject tele.HandlerFunc
}

// CommandRoutes prepares one route per registered command, wrapped with the
// shared hardening chain. Admin-only commands are gated before the handler
// runs, but after receipt logging so rejected attempts leave a trace.
func CommandRoutes(reg *tg.Registry, opts CommandRouteOptions) []tg.Route {
	if reg == nil {
		return nil
	}

	adminOpts := middleware.AdminOptions{
		AdminID:  opts.AdminID,
		OnReject: opts.OnAdminReject,
	}

	routes := make([]tg.Route, 0, len(reg.Commands()))
	for name, def := range reg.Commands() {
		summaryName := normalizeHandlerName(name)
		gated := middleware.WithAdminCheck(adminOpts, def.AdminOnly, def.Handler)

		h := func(c tele.Context) error {
			return handleWithSummary(c, summaryName, time.Now(), "", "", func() error {
				return gated(c)
			})
		}
		h = middleware.LoggerMiddleware(h)
		h = middleware.RecoverMiddleware(h)

		routes = append(routes, tg.Route{
			Endpoint: name,
			Handler:  h,
		})
	}

	logger.TWire.Info("tg.wire",
		slog.String("event", "complete"),
		slog.Int("commands", len(reg.Commands())),
		slog.Int("callbacks", len(reg.ListCallbacks())),
	)

	return routes
}
