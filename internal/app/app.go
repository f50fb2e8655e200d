package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/phonics-backend/internal/adapter/cache"
	"github.com/heartmarshall/phonics-backend/internal/adapter/postgres"
	usagerepo "github.com/heartmarshall/phonics-backend/internal/adapter/postgres/usage"
	"github.com/heartmarshall/phonics-backend/internal/auth"
	"github.com/heartmarshall/phonics-backend/internal/config"
	"github.com/heartmarshall/phonics-backend/internal/transport/middleware"
	"github.com/heartmarshall/phonics-backend/internal/transport/rest"
	"github.com/heartmarshall/phonics-backend/internal/usage"
)

// Run is the application entry point. It loads configuration from the
// default location and serves until ctx is cancelled or SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return Serve(ctx, cfg)
}

// Serve wires every component described by cfg and runs the HTTP server.
func Serve(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTracing, err := InitTracing(ctx, cfg.Tracing, nil, logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	srv, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           srv.Handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return srv.Drain(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// Server is the assembled application minus the listener.
type Server struct {
	Handler http.Handler

	recorder *usage.Recorder
	closers  []func()
}

// Build constructs storage, cache, usage recording, auth and the router.
// Optional components stay disabled when their config is empty.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	s := &Server{}
	ok := false
	defer func() {
		if !ok {
			s.Drain(context.Background()) //nolint:errcheck
			s.Close()
		}
	}()

	deps := make(map[string]rest.Pinger)
	var collab Collaborators

	var usageStore *usagerepo.Repo
	if cfg.Database.Enabled() {
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
				return nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, pool.Close)
		usageStore = usagerepo.New(pool)
		deps["database"] = usageStore
		logger.Info("database connected", slog.String("application_name", cfg.Database.ApplicationName))
	}

	switch cfg.Cache.Backend {
	case config.CacheMemory:
		collab.Cache = cache.NewMemory(cfg.Cache.Size, cfg.Cache.TTL)
	case config.CacheRedis:
		rc, err := cache.NewRedis(ctx, cache.RedisConfig{
			Addr:      cfg.Cache.Redis.Addr,
			Password:  cfg.Cache.Redis.Password,
			DB:        cfg.Cache.Redis.DB,
			KeyPrefix: cfg.Cache.Redis.KeyPrefix,
			TTL:       cfg.Cache.TTL,
		})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = rc.Close() })
		collab.Cache = rc
		deps["cache"] = rc
	}
	logger.Info("bundle cache", slog.String("backend", cfg.Cache.Backend))

	if cfg.Usage.Enabled {
		var sink usage.Sink = usage.NewLogSink(logger)
		if usageStore != nil {
			sink = usageStore
		}
		s.recorder = usage.NewRecorder(logger, sink, usage.Config{
			BufferSize:    cfg.Usage.BufferSize,
			BatchSize:     cfg.Usage.BatchSize,
			FlushInterval: cfg.Usage.FlushInterval,
		})
		collab.Usage = s.recorder
	}

	svc, err := NewPhonicsService(ctx, cfg, logger, collab)
	if err != nil {
		return nil, err
	}

	var authMW middleware.Middleware
	if cfg.Auth.Enabled() {
		jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		authMW = middleware.Auth(jwtMgr, logger)
	} else {
		logger.Warn("auth disabled: admin endpoints will reject every request")
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, cfg.RateLimit.TrustProxy)
		s.closers = append(s.closers, limiter.Stop)
	}

	admin := rest.NewAdminHandler(nil, logger)
	if usageStore != nil {
		admin = rest.NewAdminHandler(usageStore, logger)
	}

	s.Handler = rest.NewRouter(rest.RouterDeps{
		Phonemes:          rest.NewPhonemeHandler(svc, logger, cfg.Server.MaxBodyBytes),
		Health:            rest.NewHealthHandler(svc, BuildVersion(), deps),
		Admin:             admin,
		Auth:              authMW,
		Limiter:           limiter,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		CORS:              cfg.CORS,
		Logger:            logger,
	})

	ok = true
	return s, nil
}

// Drain flushes buffered usage events. Call it after the HTTP server has
// stopped accepting requests.
func (s *Server) Drain(ctx context.Context) error {
	if s.recorder == nil {
		return nil
	}
	if err := s.recorder.Close(ctx); err != nil {
		return fmt.Errorf("drain usage recorder: %w", err)
	}
	return nil
}

// Close releases connections and background workers in reverse order of
// creation. It does not drain the usage recorder.
func (s *Server) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
