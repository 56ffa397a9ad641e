package usecases

import (
	"context"
	"time"

	"slotly/internal/domain/appointment"
	"slotly/internal/domain/tenant"
	"slotly/internal/shared/errors"
	"slotly/internal/shared/logger"
)

type FulfillAppointmentCommand struct {
	PublicID string
}

type FulfillAppointmentResult struct {
	Appointment *appointment.Appointment
}

type FulfillAppointmentUseCase struct {
	appointmentRepo appointment.Repository
	logger          logger.Interface
}

func NewFulfillAppointmentUseCase(
	appointmentRepo appointment.Repository,
	logger logger.Interface,
) *FulfillAppointmentUseCase {
	return &FulfillAppointmentUseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

func (uc *FulfillAppointmentUseCase) Execute(ctx context.Context, cmd FulfillAppointmentCommand) (*FulfillAppointmentResult, error) {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, errors.NewForbiddenError("tenant context is required")
	}

	appt, err := uc.appointmentRepo.FindByPublicID(ctx, t.ID(), cmd.PublicID)
	if err != nil {
		return nil, err
	}

	if err := appt.Fulfill(time.Now()); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}

	uc.logger.Infow("appointment fulfilled",
		"tenant_id", t.ID(),
		"public_id", appt.PublicID())

	return &FulfillAppointmentResult{Appointment: appt}, nil
}
