// Package main is the entrypoint for the Viral Cart API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bornBrian/ViralCart/internal/analytics"
	"github.com/bornBrian/ViralCart/internal/cache"
	"github.com/bornBrian/ViralCart/internal/config"
	"github.com/bornBrian/ViralCart/internal/handler"
	"github.com/bornBrian/ViralCart/internal/metrics"
	"github.com/bornBrian/ViralCart/internal/middleware"
	"github.com/bornBrian/ViralCart/internal/repository"
	"github.com/bornBrian/ViralCart/internal/server"
	"github.com/bornBrian/ViralCart/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to database")

	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to Redis")

	metricsRecorder := metrics.NewInMemory()

	clickRepo := repository.NewClickRepository(repo)
	productService := service.NewProductService(repo, cacheClient, cfg.AffiliateTag, metricsRecorder)
	clickRecorder := analytics.NewRecorder(clickRepo, logger, metricsRecorder)

	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	catalogHandler := handler.NewCatalogHandler(productService, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	trackHandler := handler.NewTrackHandler(clickRepo, cfg.GeoCountryHeader, logger)
	redirectHandler := handler.NewRedirectHandler(productService, clickRecorder, cfg.GeoCountryHeader, logger)
	analyticsHandler := handler.NewAnalyticsHandler(productService, clickRepo, logger)
	metricsHandler := handler.NewMetricsHandler(metricsRecorder)

	r := setupRouter(routerDeps{
		base:      h,
		health:    healthHandler,
		catalog:   catalogHandler,
		product:   productHandler,
		track:     trackHandler,
		redirect:  redirectHandler,
		analytics: analyticsHandler,
		metrics:   metricsHandler,
	}, cfg, logger)

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("postgres", func(context.Context) error {
		repo.Close()
		return nil
	})
	srv.OnShutdown("redis", func(context.Context) error {
		return cacheClient.Close()
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"admin_enabled", cfg.AdminTokenHash != "",
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// routerDeps bundles the handlers wired into the router.
type routerDeps struct {
	base      *handler.Handler
	health    *handler.HealthHandler
	catalog   *handler.CatalogHandler
	product   *handler.ProductHandler
	track     *handler.TrackHandler
	redirect  *handler.RedirectHandler
	analytics *handler.AnalyticsHandler
	metrics   *handler.MetricsHandler
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.RequestSize(cfg.MaxRequestBodySize))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	// Health endpoints (no auth required)
	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)

	r.Get("/", deps.base.Hello)

	// Click ingestion handles its own permissive CORS, all methods.
	r.HandleFunc("/api/track-click", deps.track.Track)

	// Outbound affiliate redirect (no auth required)
	r.Get("/go/{id}", deps.redirect.Redirect)

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CORS(corsCfg))

		// Public storefront surface
		r.Get("/catalog", deps.catalog.Get)
		r.Get("/products", deps.product.List)
		r.Get("/products/{id}", deps.product.Get)

		// Admin surface, enabled only when a token hash is configured.
		if cfg.AdminTokenHash != "" {
			adminCfg := middleware.AdminAuthConfig{
				Logger:    logger,
				TokenHash: cfg.AdminTokenHash,
			}
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminAuth(adminCfg))

				r.Post("/products", deps.product.Create)
				r.Put("/products/{id}", deps.product.Update)
				r.Delete("/products/{id}", deps.product.Delete)
				r.Get("/analytics", deps.analytics.Overview)
				r.Get("/metrics", deps.metrics.Metrics)
			})
		} else {
			logger.Warn("ADMIN_TOKEN_HASH not set, admin routes disabled")
		}
	})

	r.NotFound(deps.base.NotFound)
	r.MethodNotAllowed(deps.base.MethodNotAllowed)

	return r
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

// redactURL strips credentials from connection URLs before logging.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		if username := parsed.User.Username(); username != "" {
			parsed.User = url.User(username)
		} else {
			parsed.User = url.User("redacted")
		}
	}

	return parsed.String()
}

// sanitizeError removes known secrets from error messages.
func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
