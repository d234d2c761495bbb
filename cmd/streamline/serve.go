package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.etcd.io/bbolt"

	"github.com/alorle/streamline/internal/adapter/driven"
	"github.com/alorle/streamline/internal/adapter/driver"
	"github.com/alorle/streamline/internal/api"
	"github.com/alorle/streamline/internal/application"
)

func newServeCommand(ctx *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), ctx.cfg, ctx.logger)
		},
	}

	cmd.Flags().StringVar(&ctx.cfg.Port, "port", ctx.cfg.Port, "HTTP listen port")
	cmd.Flags().StringVar(&ctx.cfg.DBPath, "db", ctx.cfg.DBPath, "Favorites database path")
	cmd.Flags().DurationVar(&ctx.cfg.CatalogTTL, "ttl", ctx.cfg.CatalogTTL, "How long a loaded catalog is served before reloading")

	return cmd
}

// services groups the application services exposed over HTTP.
type services struct {
	catalog   *application.CatalogService
	favorites *application.FavoritesService
	playlist  *application.PlaylistService
	health    *application.HealthService
}

// newHTTPHandler builds the root router: API under /api/, the playlist export
// and Prometheus metrics at the root.
func newHTTPHandler(svc services) (http.Handler, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validationDoc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}

	channelHandler := driver.NewChannelHTTPHandler(svc.catalog, svc.favorites)
	favoritesHandler := driver.NewFavoritesHTTPHandler(svc.favorites)

	apiMux := http.NewServeMux()
	apiMux.Handle("/channels", channelHandler)
	apiMux.Handle("/channels/", channelHandler)
	apiMux.Handle("/categories", driver.NewCategoryHTTPHandler(svc.catalog))
	apiMux.Handle("/catalog/refresh", driver.NewCatalogHTTPHandler(svc.catalog))
	apiMux.Handle("/favorites", favoritesHandler)
	apiMux.Handle("/favorites/", favoritesHandler)
	apiMux.Handle("/health", driver.NewHealthHTTPHandler(svc.health))
	apiMux.Handle("/openapi.json", driver.NewOpenAPIHTTPHandler(doc))

	rootMux := http.NewServeMux()
	rootMux.Handle("/api/", http.StripPrefix("/api", api.RequestValidator(validationDoc)(apiMux)))
	rootMux.Handle("/playlist.m3u", driver.NewPlaylistHTTPHandler(svc.playlist))
	rootMux.Handle("/metrics", promhttp.Handler())

	return rootMux, nil
}

func runServe(ctx context.Context, cfg config, logger *slog.Logger) error {
	logger.Info("starting streamline",
		"port", cfg.Port,
		"playlist_url", cfg.PlaylistURL,
		"db_path", cfg.DBPath,
		"log_level", cfg.LogLevel.String(),
		"fetch_timeout", cfg.FetchTimeout,
		"catalog_ttl", cfg.CatalogTTL,
	)

	db, err := bbolt.Open(cfg.DBPath, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database", "error", err)
		}
	}()

	favoritesRepo, err := driven.NewFavoritesBoltDBRepository(db)
	if err != nil {
		return fmt.Errorf("failed to create favorites repository: %w", err)
	}

	source := driven.NewPlaylistHTTPSource(cfg.PlaylistURL, &http.Client{Timeout: cfg.FetchTimeout})

	catalogService := application.NewCatalogService(source, nil, logger, application.WithTTL(cfg.CatalogTTL))
	favoritesService := application.NewFavoritesService(favoritesRepo, logger)

	handler, err := newHTTPHandler(services{
		catalog:   catalogService,
		favorites: favoritesService,
		playlist:  application.NewPlaylistService(catalogService, favoritesService),
		health:    application.NewHealthService(favoritesRepo, catalogService),
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.FetchTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Warm the catalog so the first request does not wait for the download.
	go func() {
		if _, err := catalogService.Refresh(ctx); err != nil {
			logger.Warn("initial catalog load failed", "error", err)
		}
	}()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received, shutting down gracefully")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
	return nil
}
