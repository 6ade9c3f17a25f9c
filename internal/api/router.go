package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/rentaldesk/rental-api/internal/api/handler"
	"github.com/rentaldesk/rental-api/internal/api/middleware"
	"github.com/rentaldesk/rental-api/internal/core/ports"
	infrahttp "github.com/rentaldesk/rental-api/internal/infrastructure/http"
	"github.com/rentaldesk/rental-api/internal/infrastructure/http/handlers"
	"github.com/rentaldesk/rental-api/pkg/logger"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Log       zerolog.Logger
	JWTSecret string

	Auth          ports.AuthService
	Houses        ports.HouseService
	Rooms         ports.RoomService
	Assets        ports.AssetService
	Tenancy       ports.TenancyService
	Billing       ports.BillingService
	Reports       ports.ReportService
	RevenueReport ports.RevenueReportService

	// HealthChecks are probed by /health/ready.
	HealthChecks map[string]handlers.Check
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("rental"))
	e.Use(logger.Middleware(d.Log))

	// --- Operational routes (no auth required) ---
	infrahttp.RegisterOperational(e, d.HealthChecks)

	authHandler := handler.NewAuthHandler(d.Auth)
	houseHandler := handler.NewHouseHandler(d.Houses)
	roomHandler := handler.NewRoomHandler(d.Rooms)
	assetHandler := handler.NewAssetHandler(d.Assets)
	rentalHandler := handler.NewRentalHandler(d.Tenancy)
	invoiceHandler := handler.NewInvoiceHandler(d.Billing)
	reportHandler := handler.NewReportHandler(d.Reports, d.RevenueReport)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	protected := []echo.MiddlewareFunc{middleware.Auth(d.JWTSecret, d.Auth)}

	users := e.Group("/users", protected...)
	users.GET("/me", authHandler.Me)
	users.PATCH("/me", authHandler.UpdateMe)
	users.PATCH("/me/password", authHandler.ChangePassword)
	users.GET("/roles", authHandler.Roles)

	houses := e.Group("/houses", protected...)
	houses.POST("", houseHandler.Create)
	houses.GET("", houseHandler.List)
	houses.GET("/:id", houseHandler.Get)
	houses.PUT("/:id", houseHandler.Update)
	houses.DELETE("/:id", houseHandler.Delete)

	rooms := e.Group("/rooms", protected...)
	rooms.POST("", roomHandler.Create)
	rooms.GET("", roomHandler.List)
	rooms.GET("/available", roomHandler.ListAvailable)
	rooms.GET("/house/:house_id", roomHandler.ListByHouse)
	rooms.GET("/:id", roomHandler.Get)
	rooms.GET("/:id/details", roomHandler.Details)
	rooms.PUT("/:id", roomHandler.Update)
	rooms.DELETE("/:id", roomHandler.Delete)

	assets := e.Group("/assets", protected...)
	assets.POST("", assetHandler.Create)
	assets.GET("/room/:room_id", assetHandler.ListByRoom)
	assets.GET("/:id", assetHandler.Get)
	assets.PUT("/:id", assetHandler.Update)
	assets.DELETE("/:id", assetHandler.Delete)

	rented := e.Group("/rented-rooms", protected...)
	rented.POST("", rentalHandler.Create)
	rented.GET("", rentalHandler.List)
	rented.GET("/room/:room_id", rentalHandler.ListByRoom)
	rented.GET("/:id", rentalHandler.Get)
	rented.GET("/:id/history", rentalHandler.History)
	rented.PUT("/:id", rentalHandler.Update)
	rented.POST("/:id/terminate", rentalHandler.Terminate)
	rented.DELETE("/:id", rentalHandler.Delete)

	invoices := e.Group("/invoices", protected...)
	invoices.POST("", invoiceHandler.Create)
	invoices.GET("", invoiceHandler.List)
	invoices.GET("/pending", invoiceHandler.Pending)
	invoices.GET("/rented-room/:rr_id", invoiceHandler.ListByContract)
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.PUT("/:id", invoiceHandler.Update)
	invoices.POST("/:id/pay", invoiceHandler.Pay)
	invoices.DELETE("/:id", invoiceHandler.Delete)

	reports := e.Group("/reports", protected...)
	reports.POST("/revenue-stats", reportHandler.RevenueStats)
	reports.GET("/system-overview", reportHandler.SystemOverview)

	ai := e.Group("/ai", protected...)
	ai.POST("/generate-revenue-report", reportHandler.RevenueReport)

	return e
}
