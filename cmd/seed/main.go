package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"quiz-seed/internal/adapter"
	"quiz-seed/internal/cache"
	"quiz-seed/internal/config"
	"quiz-seed/internal/content"
	"quiz-seed/internal/database"
	"quiz-seed/internal/domain"
	"quiz-seed/internal/i18n"
	"quiz-seed/internal/logger"
	"quiz-seed/internal/repository"
	"quiz-seed/internal/service"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const failurePrefix = "❌ Seed failed"

type seedRunner interface {
	Run(ctx context.Context) (service.SeedReport, error)
}

// openFunc wires a runner. The closers it returns are closed even when it
// also returns an error.
type openFunc func(ctx context.Context, cfg *config.Config, log *zap.Logger) (seedRunner, []io.Closer, error)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to config.yaml")
	flags.Bool("dry-run", false, "validate content and log the plan without writing")
	flags.StringSlice("topic", nil, "seed only this topic; repeatable")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", failurePrefix, err)
		return 1
	}

	cfg, err := config.LoadConfig(*configPath, flags)
	if err != nil {
		// Logger is not initialized yet
		fmt.Fprintf(os.Stderr, "%s: %v\n", failurePrefix, err)
		return 1
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "%s: failed to initialize logger: %v\n", failurePrefix, err)
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = i18n.WithTranslator(ctx, i18n.Default().Translator(cfg.App.Locale))

	return execute(ctx, cfg, openResources, logger.Get())
}

// execute runs one seed and returns the process exit code. Every closer
// handed out by open is closed before it returns.
func execute(ctx context.Context, cfg *config.Config, open openFunc, log *zap.Logger) int {
	runner, closers, err := open(ctx, cfg, log)
	defer closeAll(closers, log)
	if err != nil {
		log.Error(failurePrefix, zap.Error(err))
		return 1
	}

	report, err := runner.Run(ctx)
	if err != nil {
		log.Error(failurePrefix, zap.Error(err))
		return 1
	}

	log.Info("Seed report",
		zap.String("seed_run_id", report.RunID),
		zap.Bool("dry_run", report.DryRun),
		zap.Int("levels", report.Levels),
		zap.Int64("subjects_inserted", report.SubjectsInserted),
		zap.Int64("books_inserted", report.BooksInserted),
		zap.Int64("book_subjects_inserted", report.BookSubjectsInserted),
		zap.Int("topics", len(report.Topics)),
		zap.Duration("duration", report.Duration),
	)
	return 0
}

func closeAll(closers []io.Closer, log *zap.Logger) {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			log.Warn("Failed to close resource", zap.Error(err))
		}
	}
}

// openResources connects to Oracle and, when configured, Redis. A dry run
// needs neither.
func openResources(ctx context.Context, cfg *config.Config, log *zap.Logger) (seedRunner, []io.Closer, error) {
	catalog, err := content.DefaultCatalog()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load seed content: %w", err)
	}
	opts := service.SeedOptions{DryRun: cfg.Seed.DryRun, Topics: cfg.Seed.Topics}

	if opts.DryRun {
		return service.NewSeeder(catalog, nil, nil, nil, nil, opts, log), nil, nil
	}

	var closers []io.Closer
	db, err := database.NewDB(cfg)
	if err != nil {
		return nil, closers, err
	}
	closers = append(closers, db)
	log.Info("Connected to database", zap.String("driver", cfg.DB.Driver), zap.String("host", cfg.DB.Host))

	var invalidator domain.CacheInvalidator
	if cfg.Redis.Address != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, cache invalidation disabled", zap.Error(err))
		} else {
			closers = append(closers, client)
			invalidator = adapter.NewRedisCacheAdapter(client)
		}
	}

	seeder := service.NewSeeder(
		catalog,
		repository.NewReferenceDatabaseAdapter(db),
		repository.NewQuestionDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db, log),
		invalidator,
		opts,
		log,
	)
	return seeder, closers, nil
}
