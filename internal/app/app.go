package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/reed-jobs-mcp/infrastructure"
	"github.com/reed-jobs-mcp/internal/config"
	"github.com/reed-jobs-mcp/internal/logger"
	"github.com/reed-jobs-mcp/internal/metrics"
	"github.com/reed-jobs-mcp/internal/reed"
	"github.com/reed-jobs-mcp/internal/repo"
	"github.com/reed-jobs-mcp/internal/services"
	"github.com/reed-jobs-mcp/internal/tools"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// App wires configuration, logging, the Reed client and the optional archive and analyzer.
type App struct {
	Config   *config.AppConfig
	Logger   *slog.Logger
	Handlers *tools.Handlers

	closers []func() error
}

func New(cfg *config.AppConfig, dbConfig infrastructure.DBConfig) (*App, error) {
	a := &App{Config: cfg}

	log, err := a.buildLogger()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Logger = log.With("app", cfg.AppName)

	client := reed.NewClient(reed.Config{
		BaseURL:           cfg.Reed.BaseURL,
		APIKey:            cfg.Reed.APIKey,
		RequestTimeout:    cfg.Reed.RequestTimeout,
		RequestsPerSecond: cfg.Reed.RequestsPerSecond,
		Burst:             cfg.Reed.Burst,
	})
	if cfg.Reed.APIKey == "" {
		a.Logger.Warn("REED_API_KEY is not set, requests will be sent without credentials")
	}

	opts := []tools.Option{tools.WithJobsBaseURL(cfg.Reed.JobsBaseURL)}

	if dbConfig.Enabled() {
		db, err := openDatabase(dbConfig)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		opts = append(opts, tools.WithArchive(repo.NewArchive(db)))
		a.Logger.Info("Job archive enabled")
	}

	if cfg.OpenRouter.APIKey != "" {
		opts = append(opts, tools.WithAnalyzer(services.NewOpenRouterService(cfg.OpenRouter.Model, cfg.OpenRouter.APIKey)))
		a.Logger.Info("Job fit analysis enabled", "model", cfg.OpenRouter.Model)
	}

	a.Handlers = tools.NewHandlers(client, a.Logger, opts...)
	return a, nil
}

func (a *App) buildLogger() (*slog.Logger, error) {
	cfg := logger.Config{
		Level:    logger.ParseLevel(a.Config.Logger.Level),
		IsJSON:   a.Config.Logger.Format == "json",
		UseColor: a.Config.Logger.Color,
	}

	if a.Config.FluentBit.Enabled {
		client, err := logger.NewFluentClient(a.Config.FluentBit.Host, a.Config.FluentBit.Port)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)

		handler, err := logger.NewFluentHandler(client, a.Config.AppName, logger.ParseLevel(a.Config.FluentBit.Level))
		if err != nil {
			return nil, err
		}
		cfg.Extra = append(cfg.Extra, handler)
	}

	return logger.New(cfg), nil
}

func openDatabase(dbConfig infrastructure.DBConfig) (*sql.DB, error) {
	db, err := infrastructure.NewConnection(dbConfig)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := infrastructure.RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// ServeMetrics exposes /metrics until ctx is cancelled. It is a no-op without METRICS_ADDR.
func (a *App) ServeMetrics(ctx context.Context) {
	if a.Config.Metrics.Addr == "" {
		return
	}

	srv := &http.Server{
		Addr:              a.Config.Metrics.Addr,
		Handler:           metrics.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		a.Logger.Info("Metrics listener started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Error("Metrics listener failed", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}

// Close releases the database and the Fluent Bit connection.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
