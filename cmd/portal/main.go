package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autorent_portal/internal/history"
	"autorent_portal/internal/hosts"
	apphttp "autorent_portal/internal/http"
	"autorent_portal/internal/http/router"
	"autorent_portal/internal/listings"
	"autorent_portal/internal/mycars"
	"autorent_portal/internal/searchui"
	"autorent_portal/platform/config"
	"autorent_portal/platform/logger"
	"autorent_portal/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	historyStore, closeHistory := initHistoryStore(cfg, log)
	if closeHistory != nil {
		defer closeHistory()
	}

	listingsClient := listings.NewClient(cfg, log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	searchModule := searchui.NewModule(listingsClient, historyStore, val, cfg, log)
	myCarsModule := mycars.NewModule(listingsClient, cfg, log)
	hostsModule := hosts.NewModule(cfg, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			searchModule,
			myCarsModule,
			hostsModule,
		},
	}

	engine := router.New(app)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initHistoryStore picks Redis-backed history when a URL is configured and
// falls back to the in-process store otherwise.
func initHistoryStore(cfg *config.Config, log *logger.Logger) (history.Store, func()) {
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not configured; search history kept in memory")
		return history.NewMemoryStore(cfg.HistoryLimit), nil
	}

	store, err := history.NewRedisStore(cfg.RedisURL, cfg.HistoryLimit, log)
	if err != nil {
		log.Error("failed to initialize redis search history", "error", err)
		log.Warn("falling back to in-memory search history")
		return history.NewMemoryStore(cfg.HistoryLimit), nil
	}

	return store, func() {
		_ = store.Close()
	}
}
