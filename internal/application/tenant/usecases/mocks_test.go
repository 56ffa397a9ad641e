package usecases

import (
	"context"

	"slotly/internal/domain/tenant"
	"slotly/internal/shared/logger"
)

type mockTenantRepository struct {
	FindByIDFunc           func(ctx context.Context, id uint) (*tenant.Tenant, error)
	FindByPublicIDFunc     func(ctx context.Context, publicID string) (*tenant.Tenant, error)
	FindBySubdomainFunc    func(ctx context.Context, subdomain string) (*tenant.Tenant, error)
	FindByCustomDomainFunc func(ctx context.Context, domain string) (*tenant.Tenant, error)
}

func (m *mockTenantRepository) FindByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTenantRepository) FindByPublicID(ctx context.Context, publicID string) (*tenant.Tenant, error) {
	if m.FindByPublicIDFunc != nil {
		return m.FindByPublicIDFunc(ctx, publicID)
	}
	return nil, nil
}

func (m *mockTenantRepository) FindBySubdomain(ctx context.Context, subdomain string) (*tenant.Tenant, error) {
	if m.FindBySubdomainFunc != nil {
		return m.FindBySubdomainFunc(ctx, subdomain)
	}
	return nil, nil
}

func (m *mockTenantRepository) FindByCustomDomain(ctx context.Context, domain string) (*tenant.Tenant, error) {
	if m.FindByCustomDomainFunc != nil {
		return m.FindByCustomDomainFunc(ctx, domain)
	}
	return nil, nil
}

type mockLogger struct {
	WarnwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface    { return m }
func (m *mockLogger) Named(name string) logger.Interface   { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
