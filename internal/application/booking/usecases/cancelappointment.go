package usecases

import (
	"context"
	"fmt"
	"time"

	"slotly/internal/domain/appointment"
	"slotly/internal/domain/tenant"
	"slotly/internal/shared/auth"
	"slotly/internal/shared/errors"
	"slotly/internal/shared/logger"
)

type CancelAppointmentCommand struct {
	PublicID string
	Reason   string
}

type CancelAppointmentResult struct {
	Appointment *appointment.Appointment
}

type CancelAppointmentUseCase struct {
	appointmentRepo appointment.Repository
	logger          logger.Interface
}

func NewCancelAppointmentUseCase(
	appointmentRepo appointment.Repository,
	logger logger.Interface,
) *CancelAppointmentUseCase {
	return &CancelAppointmentUseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

func (uc *CancelAppointmentUseCase) Execute(ctx context.Context, cmd CancelAppointmentCommand) (*CancelAppointmentResult, error) {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, errors.NewForbiddenError("tenant context is required")
	}

	appt, err := uc.appointmentRepo.FindByPublicID(ctx, t.ID(), cmd.PublicID)
	if err != nil {
		return nil, err
	}

	p, _ := auth.FromContext(ctx)
	if !p.HasPermission(auth.PermManageAppointments) {
		limit := t.RescheduleLimitHours()
		if !appt.WithinChangeWindow(time.Now(), limit) {
			return nil, errors.NewPolicyViolationError(
				"reschedule_time_limit",
				fmt.Sprintf("appointments can only be changed at least %d hours in advance", limit),
			)
		}
	}

	canceledBy := anonymousIdentity
	if !p.IsAnonymous() {
		canceledBy = p.SubjectID
	}

	if err := appt.Cancel(canceledBy, cmd.Reason); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}

	uc.logger.Infow("appointment cancelled",
		"tenant_id", t.ID(),
		"public_id", appt.PublicID(),
		"canceled_by", canceledBy)

	return &CancelAppointmentResult{Appointment: appt}, nil
}
