package main

import (
	"context"
	"fmt"
	"os"

	"artisthub/internal/config"
	"artisthub/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logging.SetGlobalLogger(logger)

	ctx := context.Background()

	artistStore, closer, err := openStore(ctx, cfg.Database)
	if err != nil {
		logger.Fatal(err, "open store")
	}
	defer closer.Close()

	if cfg.SeedDemoData {
		seeded, err := bootstrapDemoData(ctx, artistStore)
		if err != nil {
			logger.Fatal(err, "seed demo data")
		}
		if seeded > 0 {
			logger.Info(fmt.Sprintf("seeded %d demo artists", seeded))
		}
	}

	if err := serve(cfg.Server.Addr(), newHTTPHandler(cfg, artistStore)); err != nil {
		logger.Error(err, "server error")
		closer.Close()
		os.Exit(1)
	}
}
