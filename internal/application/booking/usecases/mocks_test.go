package usecases

import (
	"context"
	"time"

	quotausecases "slotly/internal/application/quota/usecases"
	"slotly/internal/domain/appointment"
	"slotly/internal/domain/catalog"
	"slotly/internal/shared/logger"
)

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
	return true, nil
}

type mockAppointmentRepository struct {
	CreateIfNoConflictFunc              func(ctx context.Context, appt *appointment.Appointment) error
	FindByPublicIDFunc                  func(ctx context.Context, tenantID uint, publicID string) (*appointment.Appointment, error)
	ListScheduledForEmployeeBetweenFunc func(ctx context.Context, tenantID, employeeID uint, from, to time.Time) ([]*appointment.Appointment, error)
	ListForTenantFunc                   func(ctx context.Context, tenantID uint, filter appointment.Filter) ([]*appointment.Appointment, int64, error)
	UpdateFunc                          func(ctx context.Context, appt *appointment.Appointment) error
	UpdateStartTimeIfNoConflictFunc     func(ctx context.Context, appt *appointment.Appointment, newStart time.Time) error
	DeleteFunc                          func(ctx context.Context, tenantID, id uint) error
	CountForTenantInMonthFunc           func(ctx context.Context, tenantID uint, ref time.Time) (int64, error)
}

func (m *mockAppointmentRepository) CreateIfNoConflict(ctx context.Context, appt *appointment.Appointment) error {
	if m.CreateIfNoConflictFunc != nil {
		return m.CreateIfNoConflictFunc(ctx, appt)
	}
	return nil
}

func (m *mockAppointmentRepository) FindByPublicID(ctx context.Context, tenantID uint, publicID string) (*appointment.Appointment, error) {
	if m.FindByPublicIDFunc != nil {
		return m.FindByPublicIDFunc(ctx, tenantID, publicID)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) ListScheduledForEmployeeBetween(ctx context.Context, tenantID, employeeID uint, from, to time.Time) ([]*appointment.Appointment, error) {
	if m.ListScheduledForEmployeeBetweenFunc != nil {
		return m.ListScheduledForEmployeeBetweenFunc(ctx, tenantID, employeeID, from, to)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) ListForTenant(ctx context.Context, tenantID uint, filter appointment.Filter) ([]*appointment.Appointment, int64, error) {
	if m.ListForTenantFunc != nil {
		return m.ListForTenantFunc(ctx, tenantID, filter)
	}
	return nil, 0, nil
}

func (m *mockAppointmentRepository) Update(ctx context.Context, appt *appointment.Appointment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, appt)
	}
	return nil
}

func (m *mockAppointmentRepository) UpdateStartTimeIfNoConflict(ctx context.Context, appt *appointment.Appointment, newStart time.Time) error {
	if m.UpdateStartTimeIfNoConflictFunc != nil {
		return m.UpdateStartTimeIfNoConflictFunc(ctx, appt, newStart)
	}
	return nil
}

func (m *mockAppointmentRepository) Delete(ctx context.Context, tenantID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tenantID, id)
	}
	return nil
}

func (m *mockAppointmentRepository) CountForTenantInMonth(ctx context.Context, tenantID uint, ref time.Time) (int64, error) {
	if m.CountForTenantInMonthFunc != nil {
		return m.CountForTenantInMonthFunc(ctx, tenantID, ref)
	}
	return 0, nil
}

type mockQuotaChecker struct {
	ExecuteFunc func(ctx context.Context, cmd quotausecases.CheckQuotaCommand) (*quotausecases.CheckQuotaResult, error)
}

func (m *mockQuotaChecker) Execute(ctx context.Context, cmd quotausecases.CheckQuotaCommand) (*quotausecases.CheckQuotaResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &quotausecases.CheckQuotaResult{Allowed: true}, nil
}

type mockLogger struct {
	WarnwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any)      {}
func (m *mockLogger) Info(msg string, args ...any)       {}
func (m *mockLogger) Warn(msg string, args ...any)       {}
func (m *mockLogger) Error(msg string, args ...any)      {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
