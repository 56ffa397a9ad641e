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

type RescheduleAppointmentCommand struct {
	PublicID     string
	NewStartTime time.Time
}

type RescheduleAppointmentResult struct {
	Appointment *appointment.Appointment
}

type RescheduleAppointmentUseCase struct {
	appointmentRepo appointment.Repository
	logger          logger.Interface
}

func NewRescheduleAppointmentUseCase(
	appointmentRepo appointment.Repository,
	logger logger.Interface,
) *RescheduleAppointmentUseCase {
	return &RescheduleAppointmentUseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

func (uc *RescheduleAppointmentUseCase) Execute(ctx context.Context, cmd RescheduleAppointmentCommand) (*RescheduleAppointmentResult, error) {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, errors.NewForbiddenError("tenant context is required")
	}

	if cmd.NewStartTime.IsZero() {
		return nil, errors.NewValidationError("new start time is required")
	}
	if !cmd.NewStartTime.After(time.Now()) {
		return nil, errors.NewValidationError("new start time must be in the future")
	}

	appt, err := uc.appointmentRepo.FindByPublicID(ctx, t.ID(), cmd.PublicID)
	if err != nil {
		return nil, err
	}

	if !appt.Status().IsScheduled() {
		return nil, errors.NewConflictError(
			fmt.Sprintf("cannot reschedule appointment with status %s", appt.Status()))
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

	if err := uc.appointmentRepo.UpdateStartTimeIfNoConflict(ctx, appt, cmd.NewStartTime); err != nil {
		return nil, err
	}

	uc.logger.Infow("appointment rescheduled",
		"tenant_id", t.ID(),
		"public_id", appt.PublicID(),
		"new_start_time", cmd.NewStartTime)

	return &RescheduleAppointmentResult{Appointment: appt}, nil
}
