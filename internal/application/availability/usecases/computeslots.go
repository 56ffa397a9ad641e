package usecases

import (
	"context"
	"time"

	"slotly/internal/domain/appointment"
	"slotly/internal/domain/catalog"
	"slotly/internal/domain/schedule"
	svo "slotly/internal/domain/schedule/valueobjects"
	"slotly/internal/domain/tenant"
	"slotly/internal/shared/errors"
	"slotly/internal/shared/logger"
)

// scanStepMinutes is the fixed interval between candidate slot starts. It is
// independent of the slot duration, so slots may sit closer together than one
// slot's length.
const scanStepMinutes = 30

type ComputeSlotsCommand struct {
	ServiceID  uint
	EmployeeID uint
	LocationID uint
	Date       string // calendar day in the tenant's zone, formatted 2006-01-02
}

// Slot is a bookable interval. Start and End are absolute instants; the
// half-open convention means End of one slot may equal Start of the next.
type Slot struct {
	Start time.Time
	End   time.Time
}

type ComputeSlotsResult struct {
	Slots []Slot
}

type ComputeSlotsUseCase struct {
	serviceRepo     catalog.ServiceRepository
	scheduleRepo    schedule.Repository
	appointmentRepo appointment.Repository
	logger          logger.Interface
}

func NewComputeSlotsUseCase(
	serviceRepo catalog.ServiceRepository,
	scheduleRepo schedule.Repository,
	appointmentRepo appointment.Repository,
	logger logger.Interface,
) *ComputeSlotsUseCase {
	return &ComputeSlotsUseCase{
		serviceRepo:     serviceRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

func (uc *ComputeSlotsUseCase) Execute(ctx context.Context, cmd ComputeSlotsCommand) (*ComputeSlotsResult, error) {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, errors.NewForbiddenError("tenant context is required")
	}

	day, err := time.ParseInLocation("2006-01-02", cmd.Date, t.Location())
	if err != nil {
		return nil, errors.NewValidationError("invalid date, expected YYYY-MM-DD")
	}

	svc, err := uc.serviceRepo.FindByID(ctx, t.ID(), cmd.ServiceID)
	if err != nil {
		return nil, err
	}
	duration := svc.Duration()

	// The weekday is taken from the tenant's wall-clock day, not UTC.
	weekday := svo.WeekdayOf(day)

	block, err := uc.scheduleRepo.FindWorkingHours(ctx, t.ID(), cmd.EmployeeID, cmd.LocationID, weekday)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("no schedule for this day")
		}
		return nil, err
	}

	windowStart, windowEnd := block.Window(day.Year(), day.Month(), day.Day(), t.Location())

	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)
	busy, err := uc.appointmentRepo.ListScheduledForEmployeeBetween(ctx, t.ID(), cmd.EmployeeID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := computeSlots(windowStart, windowEnd, duration, busy)

	uc.logger.Debugw("computed availability",
		"tenant_id", t.ID(),
		"employee_id", cmd.EmployeeID,
		"date", cmd.Date,
		"slot_count", len(slots))

	return &ComputeSlotsResult{Slots: slots}, nil
}

// computeSlots walks the working window in fixed steps and keeps every
// candidate that fits before the window end and touches no busy interval.
// Boundary contact with a busy interval is not a conflict.
func computeSlots(windowStart, windowEnd time.Time, duration time.Duration, busy []*appointment.Appointment) []Slot {
	slots := []Slot{}

	for t := windowStart; ; t = t.Add(scanStepMinutes * time.Minute) {
		end := t.Add(duration)
		if end.After(windowEnd) {
			break
		}

		if !overlapsAny(t, end, busy) {
			slots = append(slots, Slot{Start: t, End: end})
		}
	}

	return slots
}

func overlapsAny(start, end time.Time, busy []*appointment.Appointment) bool {
	for _, appt := range busy {
		if appt.OverlapsInterval(start, end) {
			return true
		}
	}
	return false
}
