// Package cmd drives the application lifecycle: configuration, bootstrap,
// the telegram run loop and graceful shutdown.
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m3rciful/pwgenbot/config"
	"github.com/m3rciful/pwgenbot/logger"
	"github.com/m3rciful/pwgenbot/telegram"

	"log/slog"
)

// TelegramApp is the minimal surface the runner needs from an application.
type TelegramApp interface {
	RunOptions() telegram.RunOptions
}

// Options describe how to bootstrap the application.
type Options struct {
	// ConfigEnvVar names the environment variable holding the config path.
	// Empty selects CONFIG_PATH. An unset variable means env-only config.
	ConfigEnvVar string

	Bootstrap func(cfg *config.Config) (TelegramApp, error)
}

// Run loads configuration, bootstraps the application and runs the bot until
// SIGINT or SIGTERM. The logger is flushed on the way out.
func Run(opts Options) error {
	if opts.Bootstrap == nil {
		return fmt.Errorf("cmd: Bootstrap is required")
	}

	env := opts.ConfigEnvVar
	if env == "" {
		env = "CONFIG_PATH"
	}

	cfg, err := config.Load(os.Getenv(env))
	if err != nil {
		return fmt.Errorf("cmd: failed to load config: %w", err)
	}

	application, err := opts.Bootstrap(cfg)
	if err != nil {
		return fmt.Errorf("cmd: bootstrap failed: %w", err)
	}

	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()

	runOpts := application.RunOptions()

	startedAt := time.Now()
	prevStart := runOpts.OnStart
	runOpts.OnStart = func(ctx context.Context, rt telegram.Runtime) error {
		if prevStart != nil {
			if err := prevStart(ctx, rt); err != nil {
				return err
			}
		}
		logger.Info(ctx, "app", "ready",
			slog.Duration("startup", logger.RoundMS(time.Since(startedAt))),
		)
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return telegram.RunTelegram(ctx, runOpts)
}
