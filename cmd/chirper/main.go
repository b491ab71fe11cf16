package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/chirper/internal/auth"
	"github.com/pribylovaa/chirper/internal/cache"
	"github.com/pribylovaa/chirper/internal/config"
	apierrors "github.com/pribylovaa/chirper/internal/errors"
	"github.com/pribylovaa/chirper/internal/events"
	httpapi "github.com/pribylovaa/chirper/internal/http"
	"github.com/pribylovaa/chirper/internal/service"
	"github.com/pribylovaa/chirper/internal/storage/minio"
	"github.com/pribylovaa/chirper/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	// .env необязателен: в контейнере всё приходит через окружение.
	_ = godotenv.Load()

	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting chirper", slog.String("env", cfg.Env))

	apierrors.SetExposeInternal(cfg.ExposeInternalErrors())

	// Порт занимаем до подключения к ресурсам.
	httpAddr := cfg.HTTP.Addr()
	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	if err := run(cfg, log, ln); err != nil {
		log.Error("service_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("service_stopped")
}

// run владеет всеми ресурсами процесса; они закрываются через defer при любом выходе.
func run(cfg *config.Config, log *slog.Logger, ln net.Listener) error {
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	st, err := postgres.New(rootCtx, cfg.DB)
	if err != nil {
		_ = ln.Close()
		return fmt.Errorf("storage init: %w", err)
	}
	defer st.Close()

	log.Info("storage_initialized")

	tokens := auth.NewManager(cfg.Auth)
	hasher := auth.NewHasher(auth.PasswordParams{
		MemoryKiB:   cfg.Password.MemoryKiB,
		Iterations:  cfg.Password.Iterations,
		Parallelism: cfg.Password.Parallelism,
	})

	svc := service.New(st, tokens, hasher, cfg.Limits)

	if cfg.Redis.URL != "" {
		pc, err := cache.NewRedisCache(rootCtx, cfg.Redis.URL, cfg.Redis.Prefix, cfg.Redis.TTL)
		if err != nil {
			log.Warn("profile_cache_disabled", slog.String("err", err.Error()))
		} else {
			svc.SetProfileCache(pc)
			defer func() {
				if cerr := pc.Close(); cerr != nil {
					log.Warn("redis_close_failed", slog.String("err", cerr.Error()))
				}
			}()
			log.Info("profile_cache_enabled")
		}
	}

	if cfg.NATS.URL != "" {
		pub, err := events.NewNATSPublisher(cfg.NATS, log)
		if err != nil {
			log.Warn("events_disabled", slog.String("err", err.Error()))
		} else {
			svc.SetPublisher(pub)
			defer pub.Close()
			log.Info("events_enabled", slog.String("subject_prefix", cfg.NATS.SubjectPrefix))
		}
	}

	if cfg.S3.Endpoint != "" {
		av, err := minio.New(rootCtx, cfg.S3, cfg.Avatar)
		if err != nil {
			log.Warn("avatars_disabled", slog.String("err", err.Error()))
		} else {
			svc.SetAvatars(av)
			log.Info("avatars_enabled", slog.String("bucket", cfg.S3.Bucket))
		}
	}

	opts := httpapi.Options{
		Logger:         log,
		Timeout:        cfg.Timeouts.Request,
		BasePath:       cfg.HTTP.BasePath,
		Verifier:       tokens,
		Limits:         cfg.Limits,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowLocalhost: cfg.Env != envProd,
		AuthRateLimit:  cfg.RateLimit.AuthRequests,
		AuthRateWindow: cfg.RateLimit.Window,
	}

	apiHandler := httpapi.NewRouter(svc, opts)

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

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := svc.Ping(ctx); err != nil {
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpSrv := &http.Server{
		Addr:              ln.Addr().String(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("http_listen_start", slog.String("addr", ln.Addr().String()), slog.String("base_path", cfg.HTTP.BasePath))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	ready.Store(true)
	log.Info("chirper_ready")

	var serveErr error
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case serveErr = <-serveErrCh:
		if serveErr != nil {
			log.Error("http_serve_failed", slog.String("err", serveErr.Error()))
		}
	}

	ready.Store(false)

	shutdownTimeout := cfg.Timeouts.Shutdown
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	return serveErr
}

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
