package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/denisok6893-rgb/fragrance-matching/internal/config"
	httpapi "github.com/denisok6893-rgb/fragrance-matching/internal/http"
	"github.com/denisok6893-rgb/fragrance-matching/internal/logging"
	"github.com/denisok6893-rgb/fragrance-matching/internal/metrics"
	"github.com/denisok6893-rgb/fragrance-matching/internal/recommend"
	"github.com/denisok6893-rgb/fragrance-matching/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		logging.Fatal().Err(err).Str("db_path", cfg.Storage.DBPath).Msg("open store")
	}
	defer store.Close()

	rc, err := recommend.LoadConfigFromFile(cfg.Recommend.ConfigPath)
	if err != nil {
		logging.Warn().Err(err).Msg("use default recommendation settings")
	}
	engine := recommend.NewEngine(rc)

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      httpapi.NewServer(engine, store, cfg.Server.CORSOrigins).Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.Server.Address).Msg("API listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		logging.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("graceful shutdown")
		}
	}
}

func openStore(ctx context.Context, cfg config.StorageConfig) (*storage.SQLiteStore, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	if cfg.SeedPath != "" {
		n, err := store.SeedIfEmpty(ctx, cfg.SeedPath)
		if err != nil {
			logging.Warn().Err(err).Str("seed_path", cfg.SeedPath).Msg("seed skipped")
		} else if n > 0 {
			logging.Info().Int("perfumes", n).Msg("seeded collection")
		}
	}

	if n, err := store.CountPerfumes(ctx); err == nil {
		metrics.CollectionSize.Set(float64(n))
	}
	return store, nil
}
