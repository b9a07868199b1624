// Command notification-maintenance runs the legacy notification repair sweep
// against the configured store. It is meant to be invoked as a one-off job;
// the sweep is idempotent, so re-running it is always safe.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Bernadoadk/Edofi-sub001/pkg/config"
	"github.com/Bernadoadk/Edofi-sub001/pkg/logger"
	"github.com/Bernadoadk/Edofi-sub001/pkg/mongo"
	"github.com/Bernadoadk/Edofi-sub001/pkg/notifications"
	"github.com/Bernadoadk/Edofi-sub001/pkg/pg"
)

type appConfig struct {
	Environment string        `env:"APP_ENV" envDefault:"development"`
	StoreDriver string        `env:"NOTIF_STORE_DRIVER" envDefault:"pg"` // pg or mongo
	Timeout     time.Duration `env:"NOTIF_MAINTENANCE_TIMEOUT" envDefault:"5m"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Environment, "notification-maintenance"))
	logger.SetAsDefault(log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "maintenance run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	var records notifications.RecordStore
	var prefs notifications.PreferenceStore

	switch cfg.StoreDriver {
	case "pg":
		var pgCfg pg.Config
		config.MustLoad(&pgCfg)

		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()

		if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}

		storage := notifications.NewPGStorage(pool)
		records, prefs = storage, storage

	case "mongo":
		var mongoCfg mongo.Config
		config.MustLoad(&mongoCfg)

		db, err := mongo.NewWithDatabase(ctx, mongoCfg)
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		defer func() {
			_ = db.Client().Disconnect(context.Background())
		}()

		storage := notifications.NewMongoStorage(db)
		records, prefs = storage, storage

	default:
		return fmt.Errorf("unknown store driver %q (want pg or mongo)", cfg.StoreDriver)
	}

	engine := notifications.NewEngine(records, prefs, notifications.WithEngineLogger(log))

	repaired, err := engine.RepairLegacyRecords(ctx)
	if err != nil {
		return fmt.Errorf("repair legacy records: %w", err)
	}

	log.InfoContext(ctx, "repair sweep completed", "repaired", repaired, "driver", cfg.StoreDriver)
	return nil
}
