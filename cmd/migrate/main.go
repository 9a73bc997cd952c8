package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"hospital-ops/internal/handler/middleware"
	"hospital-ops/internal/pkg/config"
	"hospital-ops/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const migrateTimeout = 2 * time.Minute

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := apply(ctx, cfg, logger); err != nil {
		logger.Error("migration failed", "error", err.Error(), "stack", errs.ExtractStackLines(err, 8))
		os.Exit(1)
	}
}

func apply(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(cfg.Migrate.Dir)),
	)
	if err != nil {
		return errs.Wrap(err, "failed to load migrations directory")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), cfg.Migrate.AtlasBin)
	if err != nil {
		return errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: cfg.DB.BuildDSN(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	logger.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
