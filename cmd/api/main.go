package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobportel/job-board-api/internal/api"
	"github.com/jobportel/job-board-api/internal/infrastructure/db/mongo"
	"github.com/jobportel/job-board-api/internal/infrastructure/db/redis"
	"github.com/jobportel/job-board-api/internal/infrastructure/storage"
	"github.com/jobportel/job-board-api/internal/pkg/config"
	"github.com/jobportel/job-board-api/internal/realtime"
	"github.com/jobportel/job-board-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	logg.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting job board api")

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	resumes, err := storage.NewResumeStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	hub := realtime.NewHub(logg)
	go hub.Run(ctx)

	e := api.NewRouter(db, rdb, hub, resumes, cfg, logg)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logg.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
