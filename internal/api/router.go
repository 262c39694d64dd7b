package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/agrifarm/farm-management-api/docs"
	"github.com/agrifarm/farm-management-api/internal/api/handler"
	"github.com/agrifarm/farm-management-api/internal/api/middleware"
	"github.com/agrifarm/farm-management-api/internal/token"
)

// Dependencies carries everything the router needs, constructed once in
// main. Route and middleware registration happens only here — there is
// no global mutable registration.
type Dependencies struct {
	Tokens      *token.Service
	Policy      middleware.Policy
	LoginLimit  *middleware.RateLimiter
	CORSOrigin  string
	Log         zerolog.Logger
	Auth        *handler.AuthHandler
	Users       *handler.UserHandler
	Fields      *handler.FieldHandler
	Crops       *handler.CropHandler
	Plantings   *handler.PlantingHandler
	Harvests    *handler.HarvestHandler
	Purchases   *handler.PurchaseHandler
	Monitoring  *handler.MonitoringHandler
	Dashboards  *handler.DashboardHandler
	Health      *handler.HealthHandler
	Readiness   *handler.ReadinessHandler
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{deps.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("farm"))

	// --- Operational endpoints (outside the auth gate) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.GET("/health", deps.Health.Liveness)
	e.GET("/health/ready", deps.Readiness.Readiness)

	// --- API surface: everything under /api passes the role gate ---
	api := e.Group("/api", middleware.RoleGate(deps.Tokens, deps.Policy))

	// Public auth routes (exact-match bypass in the gate's policy).
	api.POST("/user/login", deps.Auth.Login, deps.LoginLimit.Middleware())
	api.POST("/user/register", deps.Auth.Register)
	api.POST("/user/reset-password", deps.Auth.ResetPassword)

	// Admin area.
	admin := api.Group("/admin")
	admin.GET("/dashboard", deps.Dashboards.Admin)
	admin.GET("/users", deps.Users.List)
	admin.GET("/users/:id", deps.Users.Get)
	admin.PUT("/users/:id", deps.Users.Update)
	admin.DELETE("/users/:id", deps.Users.Delete)

	// Manager area.
	manager := api.Group("/manager")
	manager.GET("/dashboard", deps.Dashboards.Manager)
	manager.GET("/summary", deps.Dashboards.Summary)
	manager.POST("/hasil-panen", deps.Harvests.Create)
	manager.GET("/hasil-panen", deps.Harvests.List)
	manager.GET("/hasil-panen/:id", deps.Harvests.Get)
	manager.PUT("/hasil-panen/:id", deps.Harvests.Update)
	manager.DELETE("/hasil-panen/:id", deps.Harvests.Delete)
	manager.POST("/monitoring", deps.Monitoring.Create)
	manager.GET("/monitoring", deps.Monitoring.List)
	manager.GET("/monitoring/:id", deps.Monitoring.Get)
	manager.PUT("/monitoring/:id", deps.Monitoring.Update)
	manager.DELETE("/monitoring/:id", deps.Monitoring.Delete)
	manager.GET("/tanaman", deps.Crops.List)
	manager.GET("/tanaman/:id", deps.Crops.Get)
	manager.GET("/tanaman-lahan", deps.Plantings.List)
	manager.GET("/tanaman-lahan/:id", deps.Plantings.Get)
	manager.POST("/tanaman-lahan", deps.Plantings.Create)
	manager.DELETE("/tanaman-lahan/:id", deps.Plantings.Delete)
	manager.GET("/pembelian", deps.Purchases.List)
	manager.GET("/pembelian/:id", deps.Purchases.Get)
	manager.PUT("/pembelian/:id", deps.Purchases.Update)
	manager.DELETE("/pembelian/:id", deps.Purchases.Delete)

	// Buyer area.
	buyer := api.Group("/pembeli")
	buyer.GET("/dashboard", deps.Dashboards.Buyer)
	buyer.POST("", deps.Purchases.Create)
	buyer.GET("/pembelian", deps.Purchases.List)
	buyer.GET("/pembelian/:id", deps.Purchases.Get)
	buyer.GET("/hasil-panen", deps.Harvests.List)
	buyer.GET("/hasil-panen/:id", deps.Harvests.Get)

	// Shared entity routes: any authenticated role.
	fields := api.Group("/lahan")
	fields.GET("", deps.Fields.List)
	fields.GET("/:id", deps.Fields.Get)
	fields.POST("", deps.Fields.Create)
	fields.PUT("/:id", deps.Fields.Update)
	fields.DELETE("/:id", deps.Fields.Delete)

	crops := api.Group("/tanaman")
	crops.GET("", deps.Crops.List)
	crops.GET("/:id", deps.Crops.Get)
	crops.POST("", deps.Crops.Create)
	crops.PUT("/:id", deps.Crops.Update)
	crops.DELETE("/:id", deps.Crops.Delete)

	plantings := api.Group("/tanaman_lahan")
	plantings.GET("", deps.Plantings.List)
	plantings.GET("/:id", deps.Plantings.Get)
	plantings.PUT("/:id", deps.Plantings.Update)
	plantings.DELETE("/:id", deps.Plantings.Delete)

	harvests := api.Group("/hasil_panen")
	harvests.GET("", deps.Harvests.List)
	harvests.GET("/:id", deps.Harvests.Get)
	harvests.PUT("/:id", deps.Harvests.Update)
	harvests.DELETE("/:id", deps.Harvests.Delete)

	monitoring := api.Group("/monitoring")
	monitoring.POST("", deps.Monitoring.Create)
	monitoring.GET("", deps.Monitoring.List)
	monitoring.GET("/:id", deps.Monitoring.Get)
	monitoring.PUT("/:id", deps.Monitoring.Update)
	monitoring.DELETE("/:id", deps.Monitoring.Delete)
	monitoring.POST("/batch", deps.Monitoring.Ingest)

	return e
}
