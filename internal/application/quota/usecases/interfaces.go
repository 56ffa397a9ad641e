package usecases

import (
	"context"
	"time"
)

// RequestCounter reads the per-tenant daily API request counter kept in the
// external fast store.
type RequestCounter interface {
	Current(ctx context.Context, tenantID uint, now time.Time) (int64, error)
}
