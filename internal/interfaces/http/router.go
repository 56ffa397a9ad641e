package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	availabilityusecases "slotly/internal/application/availability/usecases"
	bookingusecases "slotly/internal/application/booking/usecases"
	catalogusecases "slotly/internal/application/catalog/usecases"
	quotausecases "slotly/internal/application/quota/usecases"
	tenantusecases "slotly/internal/application/tenant/usecases"
	"slotly/internal/domain/billing"
	infraauth "slotly/internal/infrastructure/auth"
	"slotly/internal/infrastructure/cache"
	"slotly/internal/infrastructure/config"
	"slotly/internal/infrastructure/repository"
	"slotly/internal/interfaces/http/handlers"
	"slotly/internal/interfaces/http/middleware"
	"slotly/internal/interfaces/http/routes"
	shareddb "slotly/internal/shared/db"
	"slotly/internal/shared/logger"
)

// Router wires the booking API: repositories, use cases, handlers and
// middleware.
type Router struct {
	engine *gin.Engine
}

func NewRouter(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	policies billing.PolicyProvider,
	log logger.Interface,
) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Repositories
	tenantRepo := repository.NewTenantRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	requestCounter := cache.NewRequestCounter(redisClient)
	txMgr := shareddb.NewTransactionManager(db)

	// Use cases
	resolveTenantUC := tenantusecases.NewResolveTenantUseCase(
		tenantRepo, cfg.Server.BaseDomain, cfg.Server.ReservedLabels, log)
	checkQuotaUC := quotausecases.NewCheckQuotaUseCase(
		locationRepo, employeeRepo, serviceRepo, appointmentRepo, requestCounter, policies, log)
	computeSlotsUC := availabilityusecases.NewComputeSlotsUseCase(
		serviceRepo, scheduleRepo, appointmentRepo, log)
	bookUC := bookingusecases.NewBookAppointmentUseCase(
		serviceRepo, employeeRepo, appointmentRepo, checkQuotaUC, log)
	cancelUC := bookingusecases.NewCancelAppointmentUseCase(appointmentRepo, log)
	rescheduleUC := bookingusecases.NewRescheduleAppointmentUseCase(appointmentRepo, log)
	fulfillUC := bookingusecases.NewFulfillAppointmentUseCase(appointmentRepo, log)
	deleteUC := bookingusecases.NewDeleteAppointmentUseCase(appointmentRepo, txMgr, log)
	getUC := bookingusecases.NewGetAppointmentUseCase(appointmentRepo)
	listUC := bookingusecases.NewListAppointmentsUseCase(appointmentRepo)
	listLocationsUC := catalogusecases.NewListLocationsUseCase(locationRepo)
	listEmployeesUC := catalogusecases.NewListEmployeesUseCase(employeeRepo)
	listServicesUC := catalogusecases.NewListServicesUseCase(serviceRepo)
	getScheduleUC := catalogusecases.NewGetScheduleUseCase(scheduleRepo)

	// Handlers and middleware
	jwtService := infraauth.NewJWTService(cfg.Auth.JWT.Secret)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	tenantMiddleware := middleware.NewTenantMiddleware(resolveTenantUC, log)
	apiQuotaMiddleware := middleware.NewAPIQuotaMiddleware(requestCounter, policies, log)

	bookingHandler := handlers.NewBookingHandler(
		bookUC, cancelUC, rescheduleUC, fulfillUC, deleteUC, getUC, listUC, log)
	availabilityHandler := handlers.NewAvailabilityHandler(computeSlotsUC, log)
	catalogHandler := handlers.NewCatalogHandler(
		listLocationsUC, listEmployeesUC, listServicesUC, getScheduleUC, log)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupBookingRoutes(engine, &routes.BookingRouteConfig{
		BookingHandler:      bookingHandler,
		AvailabilityHandler: availabilityHandler,
		CatalogHandler:      catalogHandler,
		AuthMiddleware:      authMiddleware,
		TenantMiddleware:    tenantMiddleware,
		APIQuotaMiddleware:  apiQuotaMiddleware,
	})

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
