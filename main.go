package main

import (
	"os"

	"github.com/avstrong/hotelsearch/internal/app"
	"github.com/avstrong/hotelsearch/internal/config"
	"github.com/avstrong/hotelsearch/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		logger.New(logger.Config{}).LogErrorf("Failed to load config: %v", err.Error())

		return 1
	}

	l, closeSink, err := app.NewLogger(cfg)
	if err != nil {
		logger.New(logger.Config{}).LogErrorf("Failed to init logger: %v", err.Error())

		return 1
	}
	defer closeSink()

	for _, warning := range cfg.Warnings {
		l.LogWarnf("Config: %s", warning)
	}

	if err := app.Run(l, cfg); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())

		return 1
	}

	return 0
}
