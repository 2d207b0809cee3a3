package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/nymphhq/nymph/internal/auth"
	"github.com/nymphhq/nymph/internal/buildinfo"
	"github.com/nymphhq/nymph/internal/cli"
	"github.com/nymphhq/nymph/internal/config"
	"github.com/nymphhq/nymph/internal/export"
	"github.com/nymphhq/nymph/internal/logging"
	"github.com/nymphhq/nymph/internal/messaging"
	"github.com/nymphhq/nymph/internal/notify"
	"github.com/nymphhq/nymph/internal/snapshot"
	"github.com/nymphhq/nymph/internal/store"
	"github.com/nymphhq/nymph/internal/tracker"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewJSON(os.Stderr, slog.LevelWarn)

	var mgr store.Manager
	var err error
	switch cfg.Mode {
	case config.ModeHosted:
		mgr, err = store.NewPostgresManager(ctx, cfg.DatabaseDSN)
	case config.ModeLocal:
		mgr, err = store.NewSQLiteManager(ctx, cfg.SQLitePath)
	default:
		log.Fatalf("unknown mode %q", cfg.Mode)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer mgr.Close()

	gate, err := auth.NewGate(cfg.PIN, []byte(cfg.SecretKey), cfg.SessionTTL)
	if err != nil {
		log.Fatalf("%v", err)
	}

	cache := snapshot.New(cfg.SnapshotDir)
	trackerSvc := tracker.NewService(mgr.Bugs(), mgr.Features(), cache, logger)
	messagingSvc := messaging.NewService(mgr.Messages(), logger)

	exporter := &export.Exporter{
		Dir: cfg.ExportDir,
		S3: export.S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		},
	}

	notifier := notify.New(os.Stdout)

	app := cli.NewApp(cfg, trackerSvc, messagingSvc, gate, exporter, notifier, logger)
	app.Run(ctx)

}
