package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"traveldesk/internal/console/cli"
	"traveldesk/internal/console/config"
	"traveldesk/internal/logging"
)

func main() {
	// A .env file is optional; flags and the JSON config still apply.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)
}
