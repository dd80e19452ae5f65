package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/unilink/campus-api/internal/api/docs"
	"github.com/unilink/campus-api/internal/api/handler"
	"github.com/unilink/campus-api/internal/api/middleware"
	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

// Deps are the services the HTTP layer is wired to.
type Deps struct {
	Logger    zerolog.Logger
	Auth      ports.AuthService
	Guard     ports.Guard
	Content   ports.ContentService
	Locations ports.LocationDirectory

	// Health lists the dependencies checked by /health/ready.
	Health map[string]handler.Pinger

	// Registry receives the echoprometheus request metrics. /metrics serves it
	// together with the default registry. Nil gives the router a fresh registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metricsConfig := echoprometheus.MiddlewareConfig{
		Namespace:  "unilink",
		Subsystem:  "http",
		Registerer: registry,
	}
	metricsHandler := echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{registry, prometheus.DefaultGatherer},
	})

	// --- Global middleware ---
	// The request logger hands errors to HTTPErrorHandler, so the metrics
	// middleware sits outside it to observe the final status.
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsConfig))
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.BodyLimit("1M"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	posts := handler.NewContentHandler(deps.Content, domain.KindPost)
	news := handler.NewContentHandler(deps.Content, domain.KindNews)
	internships := handler.NewContentHandler(deps.Content, domain.KindInternship)
	statsHandler := handler.NewStatsHandler(deps.Content)
	locationHandler := handler.NewLocationHandler(deps.Locations)
	healthHandler := handler.NewHealthHandler(deps.Health)

	adminOnly := []echo.MiddlewareFunc{
		middleware.Authenticate(deps.Guard),
		middleware.RequireAdmin(deps.Guard),
	}

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/health", authHandler.Health)

	// --- Admin content routes: reads are public, writes need an admin ---
	admin := e.Group("/api/admin")
	admin.GET("/stats", statsHandler.Get, adminOnly...)

	admin.GET("/posts", posts.List)
	admin.POST("/posts", posts.Create, adminOnly...)
	admin.DELETE("/posts/:id", posts.Delete, adminOnly...)

	admin.GET("/news", news.List)
	admin.POST("/news", news.Create, adminOnly...)
	admin.DELETE("/news/:id", news.Delete, adminOnly...)

	admin.GET("/internships", internships.List)
	admin.GET("/internships/:id", internships.Get)
	admin.POST("/internships", internships.Create, adminOnly...)
	admin.PUT("/internships/:id", internships.Update, adminOnly...)
	admin.DELETE("/internships/:id", internships.Delete, adminOnly...)

	// --- Public feed ---
	e.GET("/api/users/posts", posts.List)

	// --- Campus map ---
	locations := e.Group("/api/locations")
	locations.GET("", locationHandler.List)
	locations.GET("/categories", locationHandler.Categories)
	locations.GET("/:id", locationHandler.Get)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
