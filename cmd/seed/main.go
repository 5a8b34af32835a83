package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/wearloom/storefront-backend/internal/seed"
	"github.com/wearloom/storefront-backend/pkg/config"
	"github.com/wearloom/storefront-backend/pkg/db"
	"github.com/wearloom/storefront-backend/pkg/logger"
)

// Loads the sample catalog into the configured database. Safe to rerun.
func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	result, err := seed.Apply(context.Background(), dbClient)
	if err != nil {
		logg.Error(context.Background(), "seeding failed", err)
		os.Exit(1)
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"products_created":   result.ProductsCreated,
		"variations_created": result.VariationsCreated,
	})
	logg.Info(ctx, "sample catalog seeded")
}
