package appointment

import (
	"context"
	"time"
)

// Filter narrows tenant-scoped appointment listings.
type Filter struct {
	EmployeeID *uint
	LocationID *uint
	UserID     *string
	Status     *string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// Repository is the appointment store boundary.
//
// CreateIfNoConflict is the one operation requiring a true transaction: the
// overlap check and the insert must be atomic and isolated so that two
// concurrent bookings for overlapping intervals on the same employee can
// never both succeed.
type Repository interface {
	CreateIfNoConflict(ctx context.Context, appt *Appointment) error

	FindByPublicID(ctx context.Context, tenantID uint, publicID string) (*Appointment, error)

	// ListScheduledForEmployeeBetween returns SCHEDULED appointments for the
	// employee whose start falls in [from, to), with each appointment's
	// service duration resolved so busy intervals can be derived.
	ListScheduledForEmployeeBetween(ctx context.Context, tenantID, employeeID uint, from, to time.Time) ([]*Appointment, error)

	ListForTenant(ctx context.Context, tenantID uint, filter Filter) ([]*Appointment, int64, error)

	Update(ctx context.Context, appt *Appointment) error

	// UpdateStartTimeIfNoConflict atomically re-checks the overlap guard for
	// the new interval and moves the appointment. Same isolation contract as
	// CreateIfNoConflict.
	UpdateStartTimeIfNoConflict(ctx context.Context, appt *Appointment, newStart time.Time) error

	Delete(ctx context.Context, tenantID, id uint) error

	// CountForTenantInMonth counts non-cancelled appointments created in the
	// calendar month containing ref, for quota enforcement.
	CountForTenantInMonth(ctx context.Context, tenantID uint, ref time.Time) (int64, error)
}
