package server

import (
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the collaborators the HTTP API is built from
type Dependencies struct {
	DB                 handlers.DatabaseChecker
	TransactionService services.TransactionServiceInterface
	RateLimiter        *middleware.RateLimiter

	// SampleGenerator enables the development endpoints when set
	SampleGenerator services.SampleGeneratorInterface
}

// New builds the echo instance with middleware and all routes registered
func New(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	if deps.RateLimiter != nil {
		e.Use(deps.RateLimiter.Middleware())
	}

	RegisterRoutes(e, deps)

	return e
}

// RegisterRoutes mounts health, metrics and the versioned API on e
func RegisterRoutes(e *echo.Echo, deps Dependencies) {
	health := handlers.NewHealthCheckHandler(deps.DB)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	transactions := handlers.NewTransactionHandler(deps.TransactionService)
	txns := api.Group("/transactions")
	txns.POST("", transactions.CreateTransaction)
	txns.GET("", transactions.ListTransactions)
	txns.GET("/by-category", transactions.GetTransactionsByCategory)
	txns.GET("/:id", transactions.GetTransaction)
	txns.PUT("/:id", transactions.UpdateTransaction)
	txns.DELETE("/:id", transactions.DeleteTransaction)

	if deps.SampleGenerator != nil {
		dev := handlers.NewDevHandler(deps.SampleGenerator)
		api.POST("/dev/sample-transactions", dev.GenerateSampleTransactions)
	}
}
