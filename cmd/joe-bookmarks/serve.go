package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/joestump/joe-bookmarks/internal/api"
	"github.com/joestump/joe-bookmarks/internal/auth"
	"github.com/joestump/joe-bookmarks/internal/bookmarks"
	"github.com/joestump/joe-bookmarks/internal/build"
	"github.com/joestump/joe-bookmarks/internal/cache"
	"github.com/joestump/joe-bookmarks/internal/handler"
	"github.com/joestump/joe-bookmarks/internal/httpserver"
	"github.com/joestump/joe-bookmarks/internal/logger"
	"github.com/joestump/joe-bookmarks/internal/metrics"
	"github.com/joestump/joe-bookmarks/internal/shortcode"
	"github.com/joestump/joe-bookmarks/internal/store"
	"github.com/joestump/joe-bookmarks/internal/trace"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			e, err := setup()
			if err != nil {
				return err
			}
			defer e.close()
			return serve(ctx, e)
		},
	}
}

func serve(ctx context.Context, e *env) error {
	cfg, log := e.cfg, e.log
	log.Info("starting joe-bookmarks", logger.String("version", build.Version), logger.String("driver", cfg.DB.Driver))

	codes, err := shortcode.New(cfg.ShortCode.Alphabet, cfg.ShortCode.MinLength)
	if err != nil {
		return err
	}
	bookmarkStore := store.NewBookmarkStore(e.db, codes)
	tokenStore := auth.NewSQLTokenStore(e.db)

	var urlCache bookmarks.URLCache
	if cfg.Redis.Addr != "" {
		client, err := cache.Connect(ctx, cache.DefaultConnectOptions(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), log)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		urlCache = cache.NewURLCache(client, cfg.Redis.TTL)
	}

	verifiers, err := buildVerifiers(ctx, e, tokenStore)
	if err != nil {
		return err
	}

	apiRouter := api.NewAPIRouter(api.Deps{
		Auth:      auth.NewBearerAuth(log, verifiers...),
		Bookmarks: bookmarks.NewService(bookmarkStore, urlCache, log),
		Tokens:    tokenStore,
		Logger:    log,
	})
	var root http.Handler = handler.NewRouter(handler.Deps{
		API:        apiRouter,
		Redirector: bookmarks.NewRedirector(bookmarkStore, urlCache, log),
		DB:         e.db,
		Logger:     log,
	})

	if cfg.Trace.Enabled {
		shutdownTracing, err := trace.Init(ctx, cfg.Trace.Endpoint, cfg.Trace.ServiceName)
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(sctx); err != nil {
				log.Warn("flush traces", logger.Error(err))
			}
		}()
		root = trace.Handler(root, "joe-bookmarks")
		log.Info("tracing enabled", logger.String("endpoint", cfg.Trace.Endpoint))
	}

	go metrics.RefreshBookmarksTotal(ctx, bookmarkStore, time.Minute, log)

	srv := httpserver.New(cfg.HTTP.Addr, root, log)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", logger.Duration("timeout", cfg.HTTP.ShutdownTimeout))
	sctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errCh
}

// buildVerifiers returns the bearer credential checks in the order they are
// tried: JWT, then personal access tokens, then OIDC id tokens.
func buildVerifiers(ctx context.Context, e *env, tokens auth.TokenStore) ([]auth.Verifier, error) {
	cfg := e.cfg
	var verifiers []auth.Verifier
	if cfg.JWT.Secret != "" {
		jwtSvc, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
		if err != nil {
			return nil, err
		}
		verifiers = append(verifiers, jwtSvc)
	} else {
		e.log.Warn("JB_JWT_SECRET not set; JWT bearer tokens are disabled")
	}

	verifiers = append(verifiers, auth.NewPATVerifier(tokens, e.log))

	if cfg.OIDC.Issuer != "" {
		oidcVerifier, err := auth.NewOIDCVerifier(ctx, cfg.OIDC.Issuer, cfg.OIDC.ClientID)
		if err != nil {
			return nil, err
		}
		verifiers = append(verifiers, oidcVerifier)
	}
	return verifiers, nil
}
