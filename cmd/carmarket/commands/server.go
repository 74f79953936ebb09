package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"carmarket/config"
	"carmarket/data"
	"carmarket/event"
	"carmarket/handler"
	"carmarket/logging/logger"
	"carmarket/metrics"
	"carmarket/observes"
	"carmarket/service"
	"carmarket/validation"
	"carmarket/version"
)

// NewServerCommand creates the HTTP server command.
func NewServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(configPath(cmd))
		},
	}
}

func runServer(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cleanupLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer cleanupLogger()
	log := logger.StdLogger()
	log.SetVersion(version.Get().Version)

	// Hot-reload the log level on config file changes. Watch needs an
	// explicit file, so skip it when the config came from the search paths.
	if cfgPath != "" {
		if err := config.Watch(cfgPath, func(updated *config.Config) {
			log.SetLevel(logrus.Level(updated.Logger.Level))
			log.Info(context.Background(), "Configuration reloaded", "level", updated.Logger.Level)
		}); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	flushSentry, err := observes.NewSentry(&observes.SentryOptions{
		Dsn:         cfg.Observes.SentryDSN,
		Name:        cfg.AppName,
		Release:     version.Get().Version,
		Environment: cfg.RunMode,
	})
	if err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}
	defer flushSentry()

	if err := validation.RegisterCustom(); err != nil {
		return err
	}

	d, err := data.New(cfg.Data, log)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	if err := d.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	// The publisher is optional: without brokers the API runs, it just
	// skips the registration event.
	var publisher service.RegistrationPublisher
	if cfg.Data.Kafka != nil && len(cfg.Data.Kafka.Brokers) > 0 {
		p, err := event.NewPublisher(cfg.Data.Kafka, log)
		if err != nil {
			return err
		}
		defer p.Close()
		publisher = p
	} else {
		log.Warn(ctx, "No kafka brokers configured, registration events disabled")
	}

	svc := service.New(d, cfg, publisher, log)
	collector := metrics.NewCollector()
	router := handler.NewRouter(cfg, svc, d, collector, log)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info(ctx, "Starting server", "addr", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info(ctx, "Server stopped")
	return nil
}
