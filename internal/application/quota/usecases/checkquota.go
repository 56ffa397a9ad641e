package usecases

import (
	"context"
	"time"

	"slotly/internal/domain/appointment"
	"slotly/internal/domain/billing"
	"slotly/internal/domain/catalog"
	"slotly/internal/domain/tenant"
	"slotly/internal/shared/errors"
	"slotly/internal/shared/logger"
)

type CheckQuotaCommand struct {
	Resource billing.Resource
}

type CheckQuotaResult struct {
	Allowed bool
	Limit   int64 // zero means unrestricted
	Current int64
}

// CheckQuotaUseCase compares a tenant's live usage of one resource against
// its plan limit. The check and any following mutation are deliberately not
// atomic; a small overshoot under concurrent requests is accepted.
type CheckQuotaUseCase struct {
	locationRepo    catalog.LocationRepository
	employeeRepo    catalog.EmployeeRepository
	serviceRepo     catalog.ServiceRepository
	appointmentRepo appointment.Repository
	requestCounter  RequestCounter
	policies        billing.PolicyProvider
	logger          logger.Interface
}

func NewCheckQuotaUseCase(
	locationRepo catalog.LocationRepository,
	employeeRepo catalog.EmployeeRepository,
	serviceRepo catalog.ServiceRepository,
	appointmentRepo appointment.Repository,
	requestCounter RequestCounter,
	policies billing.PolicyProvider,
	logger logger.Interface,
) *CheckQuotaUseCase {
	return &CheckQuotaUseCase{
		locationRepo:    locationRepo,
		employeeRepo:    employeeRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		requestCounter:  requestCounter,
		policies:        policies,
		logger:          logger,
	}
}

func (uc *CheckQuotaUseCase) Execute(ctx context.Context, cmd CheckQuotaCommand) (*CheckQuotaResult, error) {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, errors.NewForbiddenError("tenant context is required")
	}

	if !cmd.Resource.IsValid() {
		return nil, errors.NewValidationError("invalid quota resource")
	}

	policy := uc.policies.PolicyFor(t.Plan())
	limit := policy.Limits.For(cmd.Resource)

	// Zero means unrestricted; skip the count entirely.
	if limit == 0 {
		return &CheckQuotaResult{Allowed: true, Limit: 0}, nil
	}

	current, err := uc.currentUsage(ctx, t, cmd.Resource)
	if err != nil {
		uc.logger.Errorw("failed to count resource usage",
			"tenant_id", t.ID(),
			"resource", cmd.Resource.String(),
			"error", err)
		return nil, err
	}

	if current >= limit {
		uc.logger.Infow("quota exceeded",
			"tenant_id", t.ID(),
			"plan", t.Plan().String(),
			"resource", cmd.Resource.String(),
			"limit", limit,
			"current", current)
		return nil, errors.NewQuotaExceededError(cmd.Resource.String(), limit, current)
	}

	return &CheckQuotaResult{Allowed: true, Limit: limit, Current: current}, nil
}

func (uc *CheckQuotaUseCase) currentUsage(ctx context.Context, t *tenant.Tenant, resource billing.Resource) (int64, error) {
	switch resource {
	case billing.ResourceLocations:
		return uc.locationRepo.CountByTenant(ctx, t.ID())
	case billing.ResourceEmployees:
		return uc.employeeRepo.CountByTenant(ctx, t.ID())
	case billing.ResourceServices:
		return uc.serviceRepo.CountByTenant(ctx, t.ID())
	case billing.ResourceAppointmentsMonth:
		return uc.appointmentRepo.CountForTenantInMonth(ctx, t.ID(), time.Now().In(t.Location()))
	case billing.ResourceAPIRequestsDay:
		return uc.requestCounter.Current(ctx, t.ID(), time.Now().In(t.Location()))
	}
	return 0, errors.NewValidationError("invalid quota resource")
}
