// Package bootstrap initializes process-wide infrastructure before the bot
// starts: the structured logger and the settings store.
package bootstrap

import (
	"fmt"

	"github.com/m3rciful/pwgenbot/config"
	"github.com/m3rciful/pwgenbot/logger"
	"github.com/m3rciful/pwgenbot/settings"
)

// Options control the bootstrap pipeline. Nil hooks select the defaults.
type Options struct {
	Config *config.Config

	LoggerInit func(*config.Config) error
	NewStore   func() settings.Store
}

// Result exposes the infrastructure initialized by the pipeline.
type Result struct {
	Store settings.Store
}

// Run initializes the logger and builds the settings store.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	newStore := opts.NewStore
	if newStore == nil {
		newStore = settings.NewStore
	}

	return &Result{Store: newStore()}, nil
}
