package main

import (
	"context"
	"errors"
	"myblog/internal/api"
	"myblog/internal/api/handler/v1handler"
	"myblog/internal/auth"
	"myblog/internal/blog"
	"myblog/internal/config"
	"myblog/internal/worker"
	"myblog/pkg/logger"
	"myblog/pkg/metrics"
	"myblog/pkg/storage/postgres"
	"myblog/pkg/urlmeta"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newResolver(ctx context.Context, cfg *config.Config) *urlmeta.Client {
	meterProvider, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}

	resolver, err := urlmeta.New(urlmeta.Options{
		Timeout:       cfg.Metadata.Timeout,
		UserAgent:     cfg.Metadata.UserAgent,
		MaxBodyBytes:  cfg.Metadata.MaxBodyBytes,
		MeterProvider: meterProvider,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create metadata resolver", zap.Error(err))
	}

	return resolver
}

func setupServer(ctx context.Context, cfg *config.Config, pg *postgres.PgSQL, resolver urlmeta.Resolver) func(ctx context.Context) {
	tokens, err := auth.NewTokens(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
	}

	server := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Auth:        auth.New(pg, tokens),
			Resolver:    resolver,
			Categories:  blog.NewCategories(pg),
			Tags:        blog.NewTags(pg),
			Articles:    blog.NewArticles(pg),
			Comments:    blog.NewComments(pg),
			Guestbook:   blog.NewGuestbook(pg),
			FriendLinks: blog.NewFriendLinks(pg),
			Settings:    blog.NewSettings(pg),
		},
		Ping: pg.Ping,
	}, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context, cfg *config.Config, pg *postgres.PgSQL, resolver urlmeta.Resolver) func(ctx context.Context) {
	if !cfg.Worker.Enabled {
		logger.Info(ctx, "background workers are disabled")

		return func(context.Context) {}
	}

	riverClient, err := worker.Start(ctx, pg.Pool, worker.Deps{
		Storage:  pg,
		Resolver: resolver,
	}, cfg.Worker.MaxWorkers)
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			resolver := newResolver(ctx, cfg)

			// workers get a context that outlives the signal so Stop can drain them
			stopWorkers := setupWorkers(context.WithoutCancel(ctx), cfg, pg, resolver)
			stopWebserver := setupServer(ctx, cfg, pg, resolver)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
