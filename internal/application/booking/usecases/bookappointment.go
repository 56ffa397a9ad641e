package usecases

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	quotausecases "slotly/internal/application/quota/usecases"
	"slotly/internal/domain/appointment"
	"slotly/internal/domain/billing"
	"slotly/internal/domain/catalog"
	"slotly/internal/domain/tenant"
	"slotly/internal/shared/auth"
	"slotly/internal/shared/errors"
	"slotly/internal/shared/logger"
)

// anonymousIdentity is recorded when no authenticated principal is present.
// TODO: require authentication for booking once the widget flow carries a
// guest token.
const anonymousIdentity = "unknown"

type BookAppointmentCommand struct {
	ServiceID  uint
	EmployeeID uint
	LocationID uint
	StartTime  time.Time
}

type BookAppointmentResult struct {
	Appointment *appointment.Appointment
}

type BookAppointmentUseCase struct {
	serviceRepo     catalog.ServiceRepository
	employeeRepo    catalog.EmployeeRepository
	appointmentRepo appointment.Repository
	quota           QuotaChecker
	logger          logger.Interface
}

func NewBookAppointmentUseCase(
	serviceRepo catalog.ServiceRepository,
	employeeRepo catalog.EmployeeRepository,
	appointmentRepo appointment.Repository,
	quota QuotaChecker,
	logger logger.Interface,
) *BookAppointmentUseCase {
	return &BookAppointmentUseCase{
		serviceRepo:     serviceRepo,
		employeeRepo:    employeeRepo,
		appointmentRepo: appointmentRepo,
		quota:           quota,
		logger:          logger,
	}
}

func (uc *BookAppointmentUseCase) Execute(ctx context.Context, cmd BookAppointmentCommand) (*BookAppointmentResult, error) {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, errors.NewForbiddenError("tenant context is required")
	}

	if cmd.StartTime.IsZero() {
		return nil, errors.NewValidationError("start time is required")
	}
	if !cmd.StartTime.After(time.Now()) {
		return nil, errors.NewValidationError("start time must be in the future")
	}

	svc, err := uc.serviceRepo.FindByID(ctx, t.ID(), cmd.ServiceID)
	if err != nil {
		return nil, err
	}

	worksAt, err := uc.employeeRepo.WorksAt(ctx, t.ID(), cmd.EmployeeID, cmd.LocationID)
	if err != nil {
		return nil, err
	}
	if !worksAt {
		return nil, errors.NewValidationError("employee does not work at this location")
	}

	if _, err := uc.quota.Execute(ctx, quotausecases.CheckQuotaCommand{
		Resource: billing.ResourceAppointmentsMonth,
	}); err != nil {
		return nil, err
	}

	customer := uc.customerFromContext(ctx, t.ID())

	appt, err := appointment.NewAppointment(
		t.ID(),
		svc.ID(),
		cmd.EmployeeID,
		cmd.LocationID,
		cmd.StartTime,
		svc.DurationMinutes(),
		customer,
		svc.Price(),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Transient store failures retry with backoff; a Conflict is final and
	// surfaces immediately.
	backoff := retry.WithMaxRetries(3, retry.NewExponential(100*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		createErr := uc.appointmentRepo.CreateIfNoConflict(ctx, appt)
		if errors.IsUnavailableError(createErr) {
			return retry.RetryableError(createErr)
		}
		return createErr
	})
	if err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Infow("booking conflict",
				"tenant_id", t.ID(),
				"employee_id", cmd.EmployeeID,
				"start_time", cmd.StartTime)
		}
		return nil, err
	}

	uc.logger.Infow("appointment booked",
		"tenant_id", t.ID(),
		"appointment_id", appt.ID(),
		"public_id", appt.PublicID(),
		"employee_id", cmd.EmployeeID,
		"start_time", cmd.StartTime)

	return &BookAppointmentResult{Appointment: appt}, nil
}

func (uc *BookAppointmentUseCase) customerFromContext(ctx context.Context, tenantID uint) appointment.Customer {
	p, ok := auth.FromContext(ctx)
	if !ok || p.IsAnonymous() {
		uc.logger.Warnw("booking without authenticated principal, recording anonymous identity",
			"tenant_id", tenantID)
		return appointment.Customer{BookedBy: anonymousIdentity}
	}

	bookedBy := p.Email
	if bookedBy == "" {
		bookedBy = p.SubjectID
	}

	return appointment.Customer{
		BookedBy:     bookedBy,
		BookedByName: p.Name,
		UserID:       p.SubjectID,
	}
}
