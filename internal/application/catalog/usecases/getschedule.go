package usecases

import (
	"context"

	"slotly/internal/domain/schedule"
	"slotly/internal/domain/tenant"
	"slotly/internal/shared/errors"
)

type GetScheduleCommand struct {
	EmployeeID uint
	LocationID uint
}

type GetScheduleUseCase struct {
	scheduleRepo schedule.Repository
}

func NewGetScheduleUseCase(scheduleRepo schedule.Repository) *GetScheduleUseCase {
	return &GetScheduleUseCase{scheduleRepo: scheduleRepo}
}

// Execute returns every weekly block for an employee at a location, ordered
// by weekday then start time.
func (uc *GetScheduleUseCase) Execute(ctx context.Context, cmd GetScheduleCommand) ([]*schedule.Schedule, error) {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, errors.NewForbiddenError("tenant context is required")
	}
	return uc.scheduleRepo.ListForEmployee(ctx, t.ID(), cmd.EmployeeID, cmd.LocationID)
}
