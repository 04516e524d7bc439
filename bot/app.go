// Package bot implements the password generator bot on top of the telegram
// runtime: command and callback handlers, the settings panel and the inline
// share flow.
package bot

import (
	"context"
	"time"

	"github.com/m3rciful/pwgenbot/config"
	"github.com/m3rciful/pwgenbot/passgen"
	"github.com/m3rciful/pwgenbot/settings"
	"github.com/m3rciful/pwgenbot/telegram"
	"github.com/m3rciful/pwgenbot/telegram/commands"
	"github.com/m3rciful/pwgenbot/telegram/router"
	"github.com/m3rciful/pwgenbot/telegram/sender"
	"github.com/m3rciful/pwgenbot/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// App owns the bot's domain dependencies and exposes the run wiring.
type App struct {
	cfg       *config.Config
	store     settings.Store
	fsm       state.Manager
	disp      *sender.Dispatcher
	startedAt time.Time
}

// New assembles the application around a config and a settings store.
func New(cfg *config.Config, store settings.Store) *App {
	return &App{
		cfg:       cfg,
		store:     store,
		fsm:       state.NewMemoryManager(),
		startedAt: time.Now(),
	}
}

// RunOptions wires registry, routes and middlewares for telegram.RunTelegram.
func (a *App) RunOptions() telegram.RunOptions {
	reg := telegram.NewRegistry()
	a.registerCommands(reg)
	a.registerCallbacks(reg)
	reg.SetTextFallback(a.textFallback)

	state.RegisterHandler(stateAwaitLength, a.handleLengthInput)

	routes := []telegram.Route{
		router.CallbackRoute(reg, router.CallbackOptions{}),
	}
	routes = append(routes, router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID:       a.cfg.Telegram.AdminID,
		OnAdminReject: a.adminReject,
	})...)
	routes = append(routes, router.TextRoutes(a.fsm, reg, router.TextOptions{})...)
	routes = append(routes, router.QueryRoute(a.inlineQuery))

	return telegram.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: telegram.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
		OnStart: func(_ context.Context, rt telegram.Runtime) error {
			a.disp = rt.Dispatcher
			return nil
		},
	}
}

func (a *App) registerCommands(reg *telegram.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.startCommand,
		Description: "Open password generator UI",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.helpCommand,
		Description: "Usage instructions",
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     a.statsCommand,
		Description: "Runtime statistics",
		AdminOnly:   true,
		Hidden:      true,
	})
}

// registerCallbacks routes every button unique through dispatchCallback,
// which fans out over the parsed command vocabulary.
func (a *App) registerCallbacks(reg *telegram.Registry) {
	for _, key := range []string{cbLength, cbLengthCancel, cbToggle, cbAction} {
		_ = reg.RegisterCallback(key, a.dispatchCallback)
	}
}

func senderID(c tele.Context) int64 {
	if u := c.Sender(); u != nil {
		return u.ID
	}
	return 0
}

func passgenOptions(s settings.Settings) passgen.Options {
	return passgen.Options{
		Length:  s.Length,
		Lower:   s.Lower,
		Upper:   s.Upper,
		Digits:  s.Digits,
		Symbols: s.Symbols,
	}
}
