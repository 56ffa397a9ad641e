package usecases

import (
	"context"
	"time"

	"slotly/internal/domain/appointment"
	"slotly/internal/domain/billing"
	"slotly/internal/domain/catalog"
	vo "slotly/internal/domain/tenant/valueobjects"
	"slotly/internal/shared/logger"
)

type mockLocationRepository struct {
	FindByIDFunc      func(ctx context.Context, tenantID, id uint) (*catalog.Location, error)
	ListByTenantFunc  func(ctx context.Context, tenantID uint) ([]*catalog.Location, error)
	CountByTenantFunc func(ctx context.Context, tenantID uint) (int64, error)
}

func (m *mockLocationRepository) FindByID(ctx context.Context, tenantID, id uint) (*catalog.Location, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, tenantID, id)
	}
	return nil, nil
}

func (m *mockLocationRepository) ListByTenant(ctx context.Context, tenantID uint) ([]*catalog.Location, error) {
	if m.ListByTenantFunc != nil {
		return m.ListByTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

func (m *mockLocationRepository) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	if m.CountByTenantFunc != nil {
		return m.CountByTenantFunc(ctx, tenantID)
	}
	return 0, nil
}

type mockEmployeeRepository struct {
	FindByIDFunc       func(ctx context.Context, tenantID, id uint) (*catalog.Employee, error)
	ListByTenantFunc   func(ctx context.Context, tenantID uint) ([]*catalog.Employee, error)
	ListByLocationFunc func(ctx context.Context, tenantID, locationID uint) ([]*catalog.Employee, error)
	CountByTenantFunc  func(ctx context.Context, tenantID uint) (int64, error)
	WorksAtFunc        func(ctx context.Context, tenantID, employeeID, locationID uint) (bool, error)
}

func (m *mockEmployeeRepository) FindByID(ctx context.Context, tenantID, id uint) (*catalog.Employee, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, tenantID, id)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) ListByTenant(ctx context.Context, tenantID uint) ([]*catalog.Employee, error) {
	if m.ListByTenantFunc != nil {
		return m.ListByTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) ListByLocation(ctx context.Context, tenantID, locationID uint) ([]*catalog.Employee, error) {
	if m.ListByLocationFunc != nil {
		return m.ListByLocationFunc(ctx, tenantID, locationID)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	if m.CountByTenantFunc != nil {
		return m.CountByTenantFunc(ctx, tenantID)
	}
	return 0, nil
}

func (m *mockEmployeeRepository) WorksAt(ctx context.Context, tenantID, employeeID, locationID uint) (bool, error) {
	if m.WorksAtFunc != nil {
		return m.WorksAtFunc(ctx, tenantID, employeeID, locationID)
	}
	return false, nil
}

type mockServiceRepository struct {
	FindByIDFunc      func(ctx context.Context, tenantID, id uint) (*catalog.Service, error)
	ListByTenantFunc  func(ctx context.Context, tenantID uint) ([]*catalog.Service, error)
	CountByTenantFunc func(ctx context.Context, tenantID uint) (int64, error)
}

func (m *mockServiceRepository) FindByID(ctx context.Context, tenantID, id uint) (*catalog.Service, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, tenantID, id)
	}
	return nil, nil
}

func (m *mockServiceRepository) ListByTenant(ctx context.Context, tenantID uint) ([]*catalog.Service, error) {
	if m.ListByTenantFunc != nil {
		return m.ListByTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

func (m *mockServiceRepository) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	if m.CountByTenantFunc != nil {
		return m.CountByTenantFunc(ctx, tenantID)
	}
	return 0, nil
}

type mockAppointmentRepository struct {
	appointment.Repository

	CountForTenantInMonthFunc func(ctx context.Context, tenantID uint, ref time.Time) (int64, error)
}

func (m *mockAppointmentRepository) CountForTenantInMonth(ctx context.Context, tenantID uint, ref time.Time) (int64, error) {
	if m.CountForTenantInMonthFunc != nil {
		return m.CountForTenantInMonthFunc(ctx, tenantID, ref)
	}
	return 0, nil
}

type mockRequestCounter struct {
	CurrentFunc func(ctx context.Context, tenantID uint, now time.Time) (int64, error)
}

func (m *mockRequestCounter) Current(ctx context.Context, tenantID uint, now time.Time) (int64, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx, tenantID, now)
	}
	return 0, nil
}

type mockPolicyProvider struct {
	PolicyForFunc func(plan vo.Plan) billing.PlanPolicy
}

func (m *mockPolicyProvider) PolicyFor(plan vo.Plan) billing.PlanPolicy {
	if m.PolicyForFunc != nil {
		return m.PolicyForFunc(plan)
	}
	return billing.PlanPolicy{}
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
