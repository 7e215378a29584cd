package main

import (
	"context"
	"flag"
	"os"
	"time"

	"eventpro/internal/config"
	"eventpro/internal/database"
	"eventpro/internal/modules/upload"
	"eventpro/internal/pkg/logger"
	"eventpro/internal/repository"
)

func main() {
	minAge := flag.Duration("min-age", 24*time.Hour, "only remove files older than this")
	dryRun := flag.Bool("dry-run", false, "list orphaned files without deleting them")
	flag.Parse()

	cfg, err := config.Load()
	log := logger.New(cfg.Log.Level, "text", os.Stdout)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.DB.URL, log)
	if err != nil {
		log.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	ctx := context.Background()
	refs, err := repository.UploadRefs(ctx, db)
	if err != nil {
		log.Error("load upload references failed", "error", err)
		os.Exit(1)
	}

	svc := upload.NewService(cfg.Upload.Dir, cfg.Upload.MaxBytes, cfg.Upload.PublicBaseURL)
	removed, err := svc.PruneOrphans(ctx, refs, *minAge, *dryRun)
	if err != nil {
		log.Error("upload cleanup failed", "error", err, "removed", len(removed))
		os.Exit(1)
	}
	log.Info("upload cleanup completed", "dir", cfg.Upload.Dir, "removed", len(removed), "dry_run", *dryRun)
}
