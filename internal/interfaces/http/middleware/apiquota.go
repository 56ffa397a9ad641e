package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"slotly/internal/domain/billing"
	"slotly/internal/domain/tenant"
	"slotly/internal/infrastructure/cache"
	"slotly/internal/shared/errors"
	"slotly/internal/shared/logger"
	"slotly/internal/shared/utils"
)

type APIQuotaMiddleware struct {
	counter  *cache.RequestCounter
	policies billing.PolicyProvider
	logger   logger.Interface
}

func NewAPIQuotaMiddleware(counter *cache.RequestCounter, policies billing.PolicyProvider, logger logger.Interface) *APIQuotaMiddleware {
	return &APIQuotaMiddleware{
		counter:  counter,
		policies: policies,
		logger:   logger,
	}
}

// Enforce increments the tenant's daily request counter and rejects once the
// plan's daily ceiling is reached. Counter outages fail open: a cache
// failure must not take the booking API down.
func (m *APIQuotaMiddleware) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := tenant.FromContext(c.Request.Context())
		if !ok {
			c.Next()
			return
		}

		now := time.Now().In(t.Location())
		current, err := m.counter.Incr(c.Request.Context(), t.ID(), now)
		if err != nil {
			m.logger.Warnw("request counter unavailable, skipping daily quota",
				"tenant_id", t.ID(),
				"error", err)
			c.Next()
			return
		}

		limit := m.policies.PolicyFor(t.Plan()).Limits.For(billing.ResourceAPIRequestsDay)
		if limit > 0 && current > limit {
			m.logger.Infow("daily request quota exceeded",
				"tenant_id", t.ID(),
				"plan", t.Plan().String(),
				"limit", limit,
				"current", current)
			utils.ErrorResponseWithError(c, errors.NewQuotaExceededError(
				billing.ResourceAPIRequestsDay.String(), limit, current))
			c.Abort()
			return
		}

		c.Next()
	}
}
