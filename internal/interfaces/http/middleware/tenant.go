package middleware

import (
	"github.com/gin-gonic/gin"

	tenantusecases "slotly/internal/application/tenant/usecases"
	"slotly/internal/domain/tenant"
	"slotly/internal/shared/logger"
	"slotly/internal/shared/utils"
)

// TenantHeader is the explicit tenant identifier used by mobile clients that
// cannot present a tenant hostname.
const TenantHeader = "X-Tenant-ID"

// TenantQueryParam is the query-string fallback for the same identifier.
const TenantQueryParam = "tenant"

type TenantMiddleware struct {
	resolver *tenantusecases.ResolveTenantUseCase
	logger   logger.Interface
}

func NewTenantMiddleware(resolver *tenantusecases.ResolveTenantUseCase, logger logger.Interface) *TenantMiddleware {
	return &TenantMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

// Resolve maps the request to a tenant and attaches it to the context.
// Reserved hosts (the platform apex, www, admin) pass through without a
// tenant; every tenant-scoped handler then fails fast on the missing
// context instead of operating tenant-less.
func (m *TenantMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		explicit := c.GetHeader(TenantHeader)
		if explicit == "" {
			explicit = c.Query(TenantQueryParam)
		}

		result, err := m.resolver.Execute(c.Request.Context(), tenantusecases.ResolveTenantCommand{
			ExplicitID: explicit,
			Hostname:   c.Request.Host,
		})
		if err != nil {
			if err == tenantusecases.ErrReservedHost {
				c.Next()
				return
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		ctx := tenant.NewContext(c.Request.Context(), result.Tenant)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireTenant aborts requests that reach a tenant-scoped route without a
// resolved tenant.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := tenant.FromContext(c.Request.Context()); !ok {
			utils.ErrorResponse(c, 404, "tenant not found")
			c.Abort()
			return
		}
		c.Next()
	}
}
