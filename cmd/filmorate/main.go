package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-filmorate/internal/cache"
	"github.com/pribylovaa/go-filmorate/internal/config"
	"github.com/pribylovaa/go-filmorate/internal/service"
	"github.com/pribylovaa/go-filmorate/internal/storage"
	"github.com/pribylovaa/go-filmorate/internal/storage/memory"
	"github.com/pribylovaa/go-filmorate/internal/storage/postgres"
	"github.com/pribylovaa/go-filmorate/internal/tracing"
	filmhttp "github.com/pribylovaa/go-filmorate/internal/transport/http"
	"github.com/pribylovaa/go-filmorate/internal/transport/http/handlers"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// pinger — хранилище, умеющее проверять соединение (postgres).
type pinger interface {
	Ping(ctx context.Context) error
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting filmorate", "env", cfg.Env, "storage", cfg.Storage.Driver)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	shutdownTracing, err := tracing.Setup(rootCtx, cfg.Tracing)
	if err != nil {
		log.Error("tracing_setup_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTracing(ctx); err != nil {
			log.Warn("tracing_shutdown_failed", slog.String("err", err.Error()))
		}
	}()
	if cfg.Tracing.Endpoint != "" {
		log.Info("tracing_enabled", slog.String("endpoint", cfg.Tracing.Endpoint))
	}

	store, err := openStorage(rootCtx, cfg)
	if err != nil {
		log.Error("storage_open_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer store.Close()
	log.Info("storage_opened", slog.String("driver", cfg.Storage.Driver))

	dict := service.NewDictionaryService(store)

	if cfg.Redis.URL != "" {
		cacheCtx, cacheCancel := context.WithTimeout(rootCtx, 5*time.Second)
		dc, err := cache.NewRedisCache(cacheCtx, cfg.Redis.URL, cfg.Redis.Prefix, cfg.Redis.TTL)
		cacheCancel()
		if err != nil {
			log.Error("redis_connect_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if cerr := dc.Close(); cerr != nil {
				log.Warn("redis_close_failed", slog.String("err", cerr.Error()))
			}
		}()

		dict.SetCache(dc)
		log.Info("redis_connected")
	}

	h := handlers.New(
		service.NewFilmService(store, store, dict, cfg.Limits),
		service.NewPersonService(store),
		dict,
		cfg.Limits.PopularDefault,
	)
	log.Info("service_initialized")

	apiHandler := filmhttp.NewRouter(h, filmhttp.Options{
		Logger:  log,
		Timeout: cfg.Timeouts.Service,
	})

	var ready atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if !ready.Load() {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		if p, ok := store.(pinger); ok {
			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			defer cancel()

			if err := p.Ping(ctx); err != nil {
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	ready.Store(true)
	log.Info("filmorate_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	ready.Store(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// openStorage выбирает хранилище по storage.driver.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		st, err := postgres.New(dbCtx, cfg.Postgres.URL)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return memory.New(), nil
	}
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
