package tenant

import "context"

type tenantKey struct{}

// NewContext returns a context carrying the resolved tenant. Middleware
// attaches the tenant here once; everything downstream reads it back instead
// of re-resolving or mutating shared request state.
func NewContext(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, tenantKey{}, t)
}

// FromContext extracts the resolved tenant from the context. Tenant-scoped
// operations must fail fast when the second return value is false.
func FromContext(ctx context.Context) (*Tenant, bool) {
	t, ok := ctx.Value(tenantKey{}).(*Tenant)
	return t, ok && t != nil
}
