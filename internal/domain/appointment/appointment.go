package appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	vo "slotly/internal/domain/appointment/valueobjects"
)

// Appointment is a booked time slot for one employee/location/service
// combination. The effective end time is always derived from the service
// duration captured at booking time; it is never stored.
type Appointment struct {
	id              uint
	publicID        string
	tenantID        uint
	serviceID       uint
	employeeID      uint
	locationID      uint
	startTime       time.Time
	durationMinutes int
	status          vo.AppointmentStatus
	bookedBy        string
	bookedByName    string
	userID          string
	canceledBy      *string
	cancelReason    *string
	paymentStatus   vo.PaymentStatus
	paymentAmount   *decimal.Decimal
	fulfillmentDate *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// Customer is the identity captured at booking time. It is a snapshot, not a
// live foreign key.
type Customer struct {
	BookedBy     string
	BookedByName string
	UserID       string
}

func NewAppointment(
	tenantID, serviceID, employeeID, locationID uint,
	startTime time.Time,
	durationMinutes int,
	customer Customer,
	paymentAmount *decimal.Decimal,
) (*Appointment, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if serviceID == 0 || employeeID == 0 || locationID == 0 {
		return nil, fmt.Errorf("service, employee and location are required")
	}
	if startTime.IsZero() {
		return nil, fmt.Errorf("start time is required")
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}
	if customer.BookedBy == "" {
		return nil, fmt.Errorf("booking identity is required")
	}

	now := time.Now()
	return &Appointment{
		publicID:        uuid.NewString(),
		tenantID:        tenantID,
		serviceID:       serviceID,
		employeeID:      employeeID,
		locationID:      locationID,
		startTime:       startTime,
		durationMinutes: durationMinutes,
		status:          vo.StatusScheduled,
		bookedBy:        customer.BookedBy,
		bookedByName:    customer.BookedByName,
		userID:          customer.UserID,
		paymentStatus:   vo.PaymentUnpaid,
		paymentAmount:   paymentAmount,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructAppointment(
	id uint,
	publicID string,
	tenantID, serviceID, employeeID, locationID uint,
	startTime time.Time,
	durationMinutes int,
	status vo.AppointmentStatus,
	customer Customer,
	canceledBy, cancelReason *string,
	paymentStatus vo.PaymentStatus,
	paymentAmount *decimal.Decimal,
	fulfillmentDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Appointment, error) {
	if id == 0 {
		return nil, fmt.Errorf("appointment ID cannot be zero")
	}
	if publicID == "" {
		return nil, fmt.Errorf("appointment public ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid appointment status: %s", status)
	}
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", paymentStatus)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	return &Appointment{
		id:              id,
		publicID:        publicID,
		tenantID:        tenantID,
		serviceID:       serviceID,
		employeeID:      employeeID,
		locationID:      locationID,
		startTime:       startTime,
		durationMinutes: durationMinutes,
		status:          status,
		bookedBy:        customer.BookedBy,
		bookedByName:    customer.BookedByName,
		userID:          customer.UserID,
		canceledBy:      canceledBy,
		cancelReason:    cancelReason,
		paymentStatus:   paymentStatus,
		paymentAmount:   paymentAmount,
		fulfillmentDate: fulfillmentDate,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (a *Appointment) ID() uint                        { return a.id }
func (a *Appointment) PublicID() string                { return a.publicID }
func (a *Appointment) TenantID() uint                  { return a.tenantID }
func (a *Appointment) ServiceID() uint                 { return a.serviceID }
func (a *Appointment) EmployeeID() uint                { return a.employeeID }
func (a *Appointment) LocationID() uint                { return a.locationID }
func (a *Appointment) StartTime() time.Time            { return a.startTime }
func (a *Appointment) DurationMinutes() int            { return a.durationMinutes }
func (a *Appointment) Status() vo.AppointmentStatus    { return a.status }
func (a *Appointment) BookedBy() string                { return a.bookedBy }
func (a *Appointment) BookedByName() string            { return a.bookedByName }
func (a *Appointment) UserID() string                  { return a.userID }
func (a *Appointment) CanceledBy() *string             { return a.canceledBy }
func (a *Appointment) CancelReason() *string           { return a.cancelReason }
func (a *Appointment) PaymentStatus() vo.PaymentStatus { return a.paymentStatus }
func (a *Appointment) PaymentAmount() *decimal.Decimal { return a.paymentAmount }
func (a *Appointment) FulfillmentDate() *time.Time     { return a.fulfillmentDate }
func (a *Appointment) CreatedAt() time.Time            { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time            { return a.updatedAt }

// EndTime is the derived effective end: startTime + service duration.
func (a *Appointment) EndTime() time.Time {
	return a.startTime.Add(time.Duration(a.durationMinutes) * time.Minute)
}

func (a *Appointment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("appointment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("appointment ID cannot be zero")
	}
	a.id = id
	return nil
}

// OverlapsInterval applies the half-open overlap test: equality at the
// boundaries is not a conflict.
func (a *Appointment) OverlapsInterval(start, end time.Time) bool {
	return start.Before(a.EndTime()) && end.After(a.startTime)
}

// WithinChangeWindow reports whether the appointment still has at least
// limitHours of lead time, the condition for reschedule and cancellation.
func (a *Appointment) WithinChangeWindow(now time.Time, limitHours int) bool {
	return a.startTime.Sub(now) >= time.Duration(limitHours)*time.Hour
}

// Cancel transitions the appointment to CANCELLED, recording who and why.
func (a *Appointment) Cancel(canceledBy, reason string) error {
	if !a.status.CanTransitionTo(vo.StatusCancelled) {
		return fmt.Errorf("cannot cancel appointment with status %s", a.status)
	}
	a.status = vo.StatusCancelled
	a.canceledBy = &canceledBy
	if reason != "" {
		a.cancelReason = &reason
	}
	a.updatedAt = time.Now()
	return nil
}

// Fulfill transitions the appointment to FULFILLED, stamping the fulfillment
// date. Terminal.
func (a *Appointment) Fulfill(now time.Time) error {
	if !a.status.CanTransitionTo(vo.StatusFulfilled) {
		return fmt.Errorf("cannot fulfill appointment with status %s", a.status)
	}
	a.status = vo.StatusFulfilled
	a.fulfillmentDate = &now
	a.updatedAt = now
	return nil
}

// Reschedule moves a scheduled appointment to a new start time.
func (a *Appointment) Reschedule(newStart time.Time) error {
	if !a.status.IsScheduled() {
		return fmt.Errorf("cannot reschedule appointment with status %s", a.status)
	}
	if newStart.IsZero() {
		return fmt.Errorf("new start time is required")
	}
	a.startTime = newStart
	a.updatedAt = time.Now()
	return nil
}

// MarkPaid records a completed payment.
func (a *Appointment) MarkPaid(amount decimal.Decimal) error {
	if a.paymentStatus == vo.PaymentPaid {
		return fmt.Errorf("appointment is already paid")
	}
	a.paymentStatus = vo.PaymentPaid
	a.paymentAmount = &amount
	a.updatedAt = time.Now()
	return nil
}

// Deletable reports whether the appointment may be removed: only cancelled
// appointments or ones already in the past.
func (a *Appointment) Deletable(now time.Time) bool {
	return a.status.IsCancelled() || a.startTime.Before(now)
}
