package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres"
	"github.com/heartmarshall/deeplisten-backend/internal/auth"
	"github.com/heartmarshall/deeplisten-backend/internal/config"
	"github.com/heartmarshall/deeplisten-backend/internal/transport/middleware"
	"github.com/heartmarshall/deeplisten-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, and runs the HTTP server and the job worker until ctx is
// cancelled or either of them fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc, cleanup, err := Build(ctx, cfg, logger, pool)
	if err != nil {
		return err
	}
	defer cleanup()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	health := rest.NewHealthHandler(pool, BuildVersion())
	if svc.Redis != nil {
		health.AddCheck("redis", rest.PingFunc(func(ctx context.Context) error {
			return svc.Redis.Ping(ctx).Err()
		}))
	}

	handler := rest.NewRouter(rest.Handlers{
		Health:   health,
		Study:    rest.NewStudyHandler(svc.Study, logger),
		Content:  rest.NewContentHandler(svc.Content, logger),
		Activity: rest.NewActivityHandler(svc.Activity, logger),
		Admin:    rest.NewAdminHandler(svc.Queue, logger),
	}, rest.RouterConfig{
		Global: []middleware.Middleware{
			middleware.RequestID,
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS, "/api/"),
			middleware.Auth(auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)),
			middleware.Logger(logger),
		},
		ReviewLimit:  limiter.Limit("reviews", cfg.RateLimit.ReviewsPerMinute),
		ExtractLimit: limiter.Limit("extract", cfg.RateLimit.ExtractPerMinute),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return svc.Queue.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
