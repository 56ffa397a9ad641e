package usecases

import (
	"context"

	"slotly/internal/domain/appointment"
	"slotly/internal/domain/tenant"
	"slotly/internal/shared/errors"
)

type GetAppointmentCommand struct {
	PublicID string
}

type GetAppointmentResult struct {
	Appointment *appointment.Appointment
}

type GetAppointmentUseCase struct {
	appointmentRepo appointment.Repository
}

func NewGetAppointmentUseCase(appointmentRepo appointment.Repository) *GetAppointmentUseCase {
	return &GetAppointmentUseCase{appointmentRepo: appointmentRepo}
}

func (uc *GetAppointmentUseCase) Execute(ctx context.Context, cmd GetAppointmentCommand) (*GetAppointmentResult, error) {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, errors.NewForbiddenError("tenant context is required")
	}

	appt, err := uc.appointmentRepo.FindByPublicID(ctx, t.ID(), cmd.PublicID)
	if err != nil {
		return nil, err
	}

	return &GetAppointmentResult{Appointment: appt}, nil
}
