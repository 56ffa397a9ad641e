package tenant

import "context"

// Repository is the tenant lookup boundary used by the resolver.
type Repository interface {
	FindByID(ctx context.Context, id uint) (*Tenant, error)
	FindByPublicID(ctx context.Context, publicID string) (*Tenant, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*Tenant, error)
	FindByCustomDomain(ctx context.Context, domain string) (*Tenant, error)
}
