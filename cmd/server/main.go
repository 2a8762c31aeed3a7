package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/config"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/infrastructure/objectstore"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/infrastructure/storage/postgres"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/utils/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = 12 * time.Hour
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := postgres.New(ctx, cfg)
	if err != nil {
		log.Error("failed to init storage", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	media, err := objectstore.NewS3(ctx, cfg)
	if err != nil {
		log.Error("failed to init object store", "error", err)
		os.Exit(1)
	}

	mux, err := api.New(cfg, storage, media, log)
	if err != nil {
		log.Error("failed to build api", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: mux,
	}

	go expiredSessionCleanup(ctx, storage, log)

	go func() {
		log.Info("server starting", "address", cfg.Server.RunAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
}

// expiredSessionCleanup deletes long-expired session rows so the table does
// not grow without bound. Expiry itself is enforced by query, this is only
// housekeeping.
func expiredSessionCleanup(ctx context.Context, storage *postgres.Storage, log *slog.Logger) {
	sessions := postgres.NewSessionRepository(storage.Pool(), log)

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := sessions.DeleteExpired(ctx)
			if err != nil {
				log.Error("session cleanup failed", "error", err)
				continue
			}
			if deleted > 0 {
				log.Info("expired sessions removed", "count", deleted)
			}
		}
	}
}
