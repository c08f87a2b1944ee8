package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/thkos/tms/internal/common/clock"
	"github.com/thkos/tms/internal/config"
	"github.com/thkos/tms/internal/handlers/tui"
	"github.com/thkos/tms/internal/logging"
	gameRepo "github.com/thkos/tms/internal/repositories/game"
	"github.com/thkos/tms/internal/repositories/localstore"
	"github.com/thkos/tms/internal/services/reporting"
	"github.com/thkos/tms/internal/services/station"
)

func main() {
	Execute()
}

// app bundles the wired application dependencies
type app struct {
	cfg        *config.Config
	logger     zerolog.Logger
	db         *gorm.DB
	redis      *redis.Client
	localStore localstore.Store
	store      station.Service
	reports    reporting.Service
}

// buildApp wires configuration, storage and services
func buildApp() (*app, error) {
	// Optional .env next to the binary, before viper reads the environment
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(cfg.Logging)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo, err := gameRepo.NewSQLite(&gameRepo.Config{
		DB: db,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game repository: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	store, err := localstore.NewRedis(&localstore.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create local store: %w", err)
	}

	tickInterval, err := time.ParseDuration(cfg.Billing.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid tick interval %q: %w", cfg.Billing.TickInterval, err)
	}

	stationSvc, err := station.New(&station.Config{
		TickInterval: tickInterval,
		GameRepo:     repo,
		LocalStore:   store,
		Clock:        &clock.DefaultClock{},
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create station store: %w", err)
	}

	reportSvc, err := reporting.New(&reporting.Config{
		GameRepo: repo,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reporting service: %w", err)
	}

	return &app{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		redis:      redisClient,
		localStore: store,
		store:      stationSvc,
		reports:    reportSvc,
	}, nil
}

// close releases storage handles
func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.redis.Close()
}

// runDashboard wires the app, recovers timers, runs the accrual loop and
// opens the dashboard
func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	output, err := a.store.Load(ctx, &station.LoadInput{})
	if err != nil {
		return fmt.Errorf("failed to load stations: %w", err)
	}
	a.logger.Info().
		Int("stations", output.Loaded).
		Int("recovered", output.Recovered).
		Msg("station store ready")

	// Accrual loop; serialized against user operations inside the store
	go func() {
		if err := a.store.Run(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error().Err(err).Msg("accrual loop stopped")
		}
	}()

	tuiErr := tui.Run(a.store, a.reports, a.cfg.UI.PIN)

	// Teardown wipes the timer store: a timer still running here comes
	// back idle on the next launch
	cancel()
	if err := a.localStore.Clear(context.Background(), &localstore.ClearInput{}); err != nil {
		a.logger.Warn().Err(err).Msg("failed to clear timer store on shutdown")
	}

	return tuiErr
}
