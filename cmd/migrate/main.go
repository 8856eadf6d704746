package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"quiz-seed/database/migrations"
	"quiz-seed/internal/config"
	"quiz-seed/internal/database"
	"quiz-seed/internal/i18n"
	"quiz-seed/internal/logger"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet("migrate", pflag.ExitOnError)
	configPath := flags.String("config", "", "path to config.yaml")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.LoadConfig(*configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Get()
	t := i18n.Default().Translator(cfg.App.Locale)

	if err := migrate(context.Background(), cfg, log, t); err != nil {
		log.Error("Failed to run migrations", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func migrate(ctx context.Context, cfg *config.Config, log *zap.Logger, t i18n.TranslateFunc) error {
	db, err := database.NewDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info(t(i18n.KeyMigrationsStart), zap.String("source", migrationSource(cfg)))
	applied, err := database.RunMigrations(ctx, db, migrationFS(cfg), log)
	if err != nil {
		return err
	}
	log.Info(t(i18n.KeyMigrationsDone), zap.Int("applied", applied))
	return nil
}

// migrationFS prefers db.migrations_path over the embedded schema.
func migrationFS(cfg *config.Config) fs.FS {
	if cfg.DB.MigrationsPath != "" {
		return os.DirFS(cfg.DB.MigrationsPath)
	}
	return migrations.FS
}

func migrationSource(cfg *config.Config) string {
	if cfg.DB.MigrationsPath != "" {
		return cfg.DB.MigrationsPath
	}
	return "embedded"
}
