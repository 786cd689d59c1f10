package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/advise-clothes/backend/docs"
	"github.com/advise-clothes/backend/internal/api/handler"
	"github.com/advise-clothes/backend/internal/api/middleware"
	"github.com/advise-clothes/backend/internal/core/ports"
	"github.com/advise-clothes/backend/internal/infrastructure/http/handlers"
)

// Dependencies are the services and probes the router wires into handlers.
type Dependencies struct {
	Users    ports.UserService
	Sessions ports.SessionService
	Catalog  ports.CatalogService
	// Pingers are checked by the readiness probe, keyed by dependency name.
	Pingers map[string]handlers.Pinger
	Logger  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(deps.Users, deps.Logger)
	sessionHandler := handler.NewSessionHandler(deps.Sessions)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	requireSession := middleware.Session(deps.Sessions)

	// --- Users ---
	e.GET("/users", userHandler.Find)
	e.GET("/users/list", userHandler.List)
	e.POST("/users", userHandler.Create)
	e.PUT("/users/:account", userHandler.Update)
	e.DELETE("/users/:account", userHandler.Delete)
	e.DELETE("/users/:account/reset", userHandler.Restore)

	// --- Sessions ---
	e.POST("/sessions", sessionHandler.Create)
	e.GET("/sessions/:key", sessionHandler.Get)
	e.DELETE("/sessions/:key", sessionHandler.Delete)

	me := e.Group("/me", requireSession)
	me.GET("", userHandler.Me)
	me.PUT("", userHandler.UpdateMe)

	// --- Catalog ---
	e.POST("/companies", catalogHandler.CreateCompany)
	e.GET("/companies", catalogHandler.ListCompanies)
	e.GET("/companies/:id", catalogHandler.GetCompany)
	e.POST("/clothes", catalogHandler.CreateClothes)
	e.GET("/clothes", catalogHandler.ListClothes)
	e.GET("/clothes/:id", catalogHandler.GetClothes)

	// --- Health probes ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Pingers)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics & docs ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
