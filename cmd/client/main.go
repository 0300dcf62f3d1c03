package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/mesto-client/internal/cli"
	"github.com/dmitrijs2005/mesto-client/internal/config"
	"github.com/dmitrijs2005/mesto-client/internal/logging"
	"github.com/lmittmann/tint"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	handler := tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})
	logger := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
