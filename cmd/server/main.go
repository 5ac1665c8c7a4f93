// Command server is the grievance backend entry point: it loads
// configuration, connects the stores, starts the notification dispatcher,
// and serves the HTTP API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/campusdesk/grievance-system/internal/api"
	"github.com/campusdesk/grievance-system/internal/infrastructure/config"
	"github.com/campusdesk/grievance-system/internal/infrastructure/db/postgres"
	"github.com/campusdesk/grievance-system/internal/infrastructure/db/redis"
	"github.com/campusdesk/grievance-system/internal/infrastructure/mail"
	"github.com/campusdesk/grievance-system/internal/infrastructure/queue"
	"github.com/campusdesk/grievance-system/internal/infrastructure/storage"
	"github.com/campusdesk/grievance-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres initialisation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis initialisation failed")
	}
	defer rdb.Close()

	mailer, err := mail.New(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("smtp initialisation failed")
	}

	dispatcher := queue.NewDispatcher(cfg.SMTP.Workers, mailer, log)
	dispatcher.Start(ctx)

	images := storage.NewLocalStore(cfg.UploadDir)

	e := api.NewRouter(db, rdb, dispatcher, images, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = e.Shutdown(context.Background())
	}()

	log.Info().Str("port", cfg.Port).Msg("grievance backend listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
