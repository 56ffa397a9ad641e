package routes

import (
	"github.com/gin-gonic/gin"

	"slotly/internal/interfaces/http/handlers"
	"slotly/internal/interfaces/http/middleware"
	"slotly/internal/shared/auth"
)

// BookingRouteConfig holds dependencies for the tenant-facing booking API.
type BookingRouteConfig struct {
	BookingHandler      *handlers.BookingHandler
	AvailabilityHandler *handlers.AvailabilityHandler
	CatalogHandler      *handlers.CatalogHandler
	AuthMiddleware      *middleware.AuthMiddleware
	TenantMiddleware    *middleware.TenantMiddleware
	APIQuotaMiddleware  *middleware.APIQuotaMiddleware
}

// SetupBookingRoutes configures the public booking API. Every route is
// tenant-scoped: the tenant middleware resolves the tenant up front and the
// daily API quota is enforced after resolution.
func SetupBookingRoutes(engine *gin.Engine, cfg *BookingRouteConfig) {
	api := engine.Group("/api/v1")
	api.Use(
		cfg.TenantMiddleware.Resolve(),
		middleware.RequireTenant(),
		cfg.APIQuotaMiddleware.Enforce(),
	)

	catalog := api.Group("")
	{
		catalog.GET("/locations", cfg.CatalogHandler.ListLocations)
		catalog.GET("/employees", cfg.CatalogHandler.ListEmployees)
		catalog.GET("/employees/:id/schedule", cfg.CatalogHandler.GetSchedule)
		catalog.GET("/services", cfg.CatalogHandler.ListServices)
	}

	api.GET("/availability", cfg.AvailabilityHandler.GetSlots)

	appointments := api.Group("/appointments")
	appointments.Use(cfg.AuthMiddleware.OptionalAuth())
	{
		appointments.POST("", cfg.BookingHandler.Book)
		appointments.GET("/:id", cfg.BookingHandler.Get)
		appointments.POST("/:id/cancel", cfg.BookingHandler.Cancel)
		appointments.POST("/:id/reschedule", cfg.BookingHandler.Reschedule)
	}

	// Staff operations require an authenticated principal with the manage
	// permission.
	staff := api.Group("/appointments")
	staff.Use(cfg.AuthMiddleware.RequireAuth(), middleware.RequirePermission(auth.PermManageAppointments))
	{
		staff.GET("", cfg.BookingHandler.List)
		staff.POST("/:id/fulfill", cfg.BookingHandler.Fulfill)
		staff.DELETE("/:id", cfg.BookingHandler.Delete)
	}
}
