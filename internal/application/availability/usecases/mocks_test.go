package usecases

import (
	"context"
	"time"

	"slotly/internal/domain/appointment"
	"slotly/internal/domain/catalog"
	"slotly/internal/domain/schedule"
	svo "slotly/internal/domain/schedule/valueobjects"
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

type mockScheduleRepository struct {
	FindWorkingHoursFunc func(ctx context.Context, tenantID, employeeID, locationID uint, weekday svo.Weekday) (*schedule.Schedule, error)
	ListForEmployeeFunc  func(ctx context.Context, tenantID, employeeID, locationID uint) ([]*schedule.Schedule, error)
}

func (m *mockScheduleRepository) FindWorkingHours(ctx context.Context, tenantID, employeeID, locationID uint, weekday svo.Weekday) (*schedule.Schedule, error) {
	if m.FindWorkingHoursFunc != nil {
		return m.FindWorkingHoursFunc(ctx, tenantID, employeeID, locationID, weekday)
	}
	return nil, nil
}

func (m *mockScheduleRepository) ListForEmployee(ctx context.Context, tenantID, employeeID, locationID uint) ([]*schedule.Schedule, error) {
	if m.ListForEmployeeFunc != nil {
		return m.ListForEmployeeFunc(ctx, tenantID, employeeID, locationID)
	}
	return nil, nil
}

type mockAppointmentRepository struct {
	CreateIfNoConflictFunc            func(ctx context.Context, appt *appointment.Appointment) error
	FindByPublicIDFunc                func(ctx context.Context, tenantID uint, publicID string) (*appointment.Appointment, error)
	ListScheduledForEmployeeBetweenFunc func(ctx context.Context, tenantID, employeeID uint, from, to time.Time) ([]*appointment.Appointment, error)
	ListForTenantFunc                 func(ctx context.Context, tenantID uint, filter appointment.Filter) ([]*appointment.Appointment, int64, error)
	UpdateFunc                        func(ctx context.Context, appt *appointment.Appointment) error
	UpdateStartTimeIfNoConflictFunc   func(ctx context.Context, appt *appointment.Appointment, newStart time.Time) error
	DeleteFunc                        func(ctx context.Context, tenantID, id uint) error
	CountForTenantInMonthFunc         func(ctx context.Context, tenantID uint, ref time.Time) (int64, error)
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
