package usecases

import (
	"context"
	"time"

	"slotly/internal/domain/appointment"
	"slotly/internal/domain/tenant"
	"slotly/internal/shared/db"
	"slotly/internal/shared/errors"
	"slotly/internal/shared/logger"
)

type DeleteAppointmentCommand struct {
	PublicID string
}

type DeleteAppointmentUseCase struct {
	appointmentRepo appointment.Repository
	txMgr           *db.TransactionManager
	logger          logger.Interface
}

func NewDeleteAppointmentUseCase(
	appointmentRepo appointment.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteAppointmentUseCase {
	return &DeleteAppointmentUseCase{
		appointmentRepo: appointmentRepo,
		txMgr:           txMgr,
		logger:          logger,
	}
}

func (uc *DeleteAppointmentUseCase) Execute(ctx context.Context, cmd DeleteAppointmentCommand) error {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return errors.NewForbiddenError("tenant context is required")
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		appt, err := uc.appointmentRepo.FindByPublicID(txCtx, t.ID(), cmd.PublicID)
		if err != nil {
			return err
		}

		if !appt.Deletable(time.Now()) {
			return errors.NewPolicyViolationError(
				"appointment_deletion",
				"only cancelled or past appointments can be deleted",
			)
		}

		return uc.appointmentRepo.Delete(txCtx, t.ID(), appt.ID())
	})
	if txErr != nil {
		return txErr
	}

	uc.logger.Infow("appointment deleted",
		"tenant_id", t.ID(),
		"public_id", cmd.PublicID)

	return nil
}
