package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jekabolt/waitlister/app"
	"github.com/jekabolt/waitlister/config"
	"github.com/jekabolt/waitlister/internal/store"
	"github.com/spf13/cobra"
)

const migrateTimeout = 5 * time.Minute

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load a config %v", err.Error())
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.Level(cfg.Logger.Level),
		AddSource: cfg.Logger.AddSource,
	}))
	slog.SetDefault(logger)
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := app.New(cfg)
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("cannot start the application %v", err.Error())
	}

	logger := slog.Default()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	select {
	case s := <-sigCh:
		logger.With("signal", s.String()).Warn("signal received, exiting")
		a.Stop(ctx)
		logger.Info("application exited")
	case <-a.Done():
		logger.Error("application exited")
	}

	return nil
}

func migrateUp(cmd *cobra.Command, args []string) error {
	return withDB(func(ctx context.Context, cfg *config.Config) error {
		db, err := store.Open(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := store.MigrateWithContext(ctx, db.DB)
		if err != nil {
			return err
		}
		fmt.Printf("applied %d migrations\n", n)
		return nil
	})
}

func migrateDown(cmd *cobra.Command, args []string) error {
	return withDB(func(ctx context.Context, cfg *config.Config) error {
		db, err := store.Open(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := store.Rollback(ctx, db.DB, downSteps)
		if err != nil {
			return err
		}
		fmt.Printf("rolled back %d migrations\n", n)
		return nil
	})
}

func withDB(f func(ctx context.Context, cfg *config.Config) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DB.DSN == "" {
		return fmt.Errorf("mysql.dsn is required")
	}
	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()
	return f(ctx, cfg)
}
