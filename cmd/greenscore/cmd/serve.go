package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/greenverse/greenscore/internal/api/handlers"
	"github.com/greenverse/greenscore/internal/api/middleware"
	"github.com/greenverse/greenscore/internal/catalog"
	"github.com/greenverse/greenscore/internal/config"
	"github.com/greenverse/greenscore/internal/engine"
	"github.com/greenverse/greenscore/pkg/logger"
)

func serveCmd() *cobra.Command {
	var serverCfgFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and catalog refresh scheduler",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(serverCfgFile)
		},
	}
	cmd.Flags().StringVar(&serverCfgFile, "server-config", "config.yaml", "server config file path")

	return cmd
}

func runServe(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	policy, err := cfg.Policy()
	if err != nil {
		return fmt.Errorf("resolving scoring policy: %w", err)
	}

	var source catalog.Source
	if cfg.Catalog.URL != "" {
		source = catalog.NewHTTPSource(cfg.Catalog.URL, cfg.Catalog.FetchPerSecond, cfg.Catalog.FetchBurst)
	} else {
		source = &catalog.FileSource{Path: cfg.Catalog.Path}
	}

	holder := catalog.NewHolder()
	eng := engine.New(holder, source,
		engine.WithLogger(log),
		engine.WithPolicy(policy),
	)

	// Load the initial snapshot. A missing catalog is not fatal: the
	// scoring endpoints still work, and the scheduler keeps retrying.
	if err := eng.RefreshCatalog(context.Background()); err != nil {
		log.Warn("initial catalog load failed, alternatives disabled until refresh succeeds", "error", err)
	}

	scheduler, err := engine.NewScheduler(eng, cfg.Catalog.RefreshInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	scheduler.Start()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Ready once a catalog snapshot is live.
	e.GET("/readyz", func(c echo.Context) error {
		if _, err := eng.CatalogStats(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "catalog not loaded"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("greenscore API", Version))
	handlers.RegisterAssessRoutes(api, handlers.NewAssessHandler(eng))
	handlers.RegisterAlternativesRoutes(api, handlers.NewAlternativesHandler(eng))
	handlers.RegisterCategoriesRoutes(api, handlers.NewCategoriesHandler())
	handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(eng))
	handlers.RegisterSavingsRoutes(api, handlers.NewSavingsHandler(eng))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "policy", policy.Name)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	<-scheduler.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
