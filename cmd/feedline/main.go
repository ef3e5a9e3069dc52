package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/olehkhomyk/feedline/internal/cli"
	"github.com/olehkhomyk/feedline/internal/config"
	"github.com/olehkhomyk/feedline/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
