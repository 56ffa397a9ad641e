package schedule

import (
	"context"

	vo "slotly/internal/domain/schedule/valueobjects"
)

// Repository is the read-only view over weekly working-hour blocks.
type Repository interface {
	// FindWorkingHours returns the WORKING_HOURS block for the given
	// employee, location and weekday, or a not-found error when the
	// employee has no schedule that day.
	FindWorkingHours(ctx context.Context, tenantID, employeeID, locationID uint, weekday vo.Weekday) (*Schedule, error)

	// ListForEmployee returns all blocks for an employee at a location,
	// ordered by weekday then start time.
	ListForEmployee(ctx context.Context, tenantID, employeeID, locationID uint) ([]*Schedule, error)
}
