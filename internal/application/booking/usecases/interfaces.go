package usecases

import (
	"context"

	quotausecases "slotly/internal/application/quota/usecases"
)

// QuotaChecker guards booking mutations against the tenant's plan limits.
type QuotaChecker interface {
	Execute(ctx context.Context, cmd quotausecases.CheckQuotaCommand) (*quotausecases.CheckQuotaResult, error)
}
