// Package main is the entry point for the bunnylight viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/bunnylight/internal/app"
	"github.com/Faultbox/bunnylight/internal/config"
	"github.com/Faultbox/bunnylight/internal/engine/window"
	"github.com/Faultbox/bunnylight/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== bunnylight ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		if errors.Is(err, window.ErrContextUnavailable) {
			logger.Error("OpenGL isn't available", zap.Error(err))
		} else {
			logger.Error("failed to start viewer", zap.Error(err))
		}
		return 1
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}
