package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/m3rciful/pwgenbot/bootstrap"
	"github.com/m3rciful/pwgenbot/bot"
	"github.com/m3rciful/pwgenbot/cmd"
	"github.com/m3rciful/pwgenbot/config"
)

func main() {
	// A missing .env is fine, deployments set real environment variables.
	_ = godotenv.Load()

	err := cmd.Run(cmd.Options{
		Bootstrap: func(cfg *config.Config) (cmd.TelegramApp, error) {
			res, err := bootstrap.Run(bootstrap.Options{Config: cfg})
			if err != nil {
				return nil, err
			}
			return bot.New(cfg, res.Store), nil
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "pwgenbot:", err)
		os.Exit(1)
	}
}
