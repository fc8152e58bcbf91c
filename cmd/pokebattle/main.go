package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Neworly/one-year-one-code/internal/config"
	"github.com/Neworly/one-year-one-code/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	warnings, _ := cfg.ValidateWithWarnings()
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithSessionID(ctx, logger.GenerateSessionID())

	if err := run(ctx, cfg, os.Stdout); err != nil {
		logger.FromContext(ctx).Error("Tutorial failed", "error", err)
		stop()
		os.Exit(1)
	}
}
