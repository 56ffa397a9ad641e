package usecases

import (
	"context"
	"time"

	"slotly/internal/domain/appointment"
	vo "slotly/internal/domain/appointment/valueobjects"
	"slotly/internal/domain/tenant"
	"slotly/internal/shared/errors"
)

type ListAppointmentsCommand struct {
	EmployeeID *uint
	LocationID *uint
	UserID     *string
	Status     *string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

type ListAppointmentsResult struct {
	Appointments []*appointment.Appointment
	Total        int64
}

type ListAppointmentsUseCase struct {
	appointmentRepo appointment.Repository
}

func NewListAppointmentsUseCase(appointmentRepo appointment.Repository) *ListAppointmentsUseCase {
	return &ListAppointmentsUseCase{appointmentRepo: appointmentRepo}
}

func (uc *ListAppointmentsUseCase) Execute(ctx context.Context, cmd ListAppointmentsCommand) (*ListAppointmentsResult, error) {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, errors.NewForbiddenError("tenant context is required")
	}

	if cmd.Status != nil {
		if _, err := vo.NewAppointmentStatus(*cmd.Status); err != nil {
			return nil, errors.NewValidationError("invalid appointment status filter")
		}
	}

	limit := cmd.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	list, total, err := uc.appointmentRepo.ListForTenant(ctx, t.ID(), appointment.Filter{
		EmployeeID: cmd.EmployeeID,
		LocationID: cmd.LocationID,
		UserID:     cmd.UserID,
		Status:     cmd.Status,
		From:       cmd.From,
		To:         cmd.To,
		Limit:      limit,
		Offset:     cmd.Offset,
	})
	if err != nil {
		return nil, err
	}

	return &ListAppointmentsResult{Appointments: list, Total: total}, nil
}
