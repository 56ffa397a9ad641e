package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"slotly/internal/domain/billing"
	"slotly/internal/domain/tenant"
	vo "slotly/internal/domain/tenant/valueobjects"
	"slotly/internal/shared/errors"
)

func quotaTenantContext(t *testing.T, plan vo.Plan) context.Context {
	t.Helper()
	now := time.Now()
	tn, err := tenant.ReconstructTenant(
		1, "a0b1c2d3-0000-4000-8000-000000000002", "acme", nil,
		vo.StatusActive, plan, nil, nil, nil, now, now,
	)
	if err != nil {
		t.Fatalf("ReconstructTenant: %v", err)
	}
	return tenant.NewContext(context.Background(), tn)
}

func fixedPolicies(limits billing.Limits) *mockPolicyProvider {
	return &mockPolicyProvider{
		PolicyForFunc: func(plan vo.Plan) billing.PlanPolicy {
			return billing.PlanPolicy{Limits: limits}
		},
	}
}

func newCheckQuota(
	locations, employees, services int64,
	appointments int64,
	requests int64,
	policies billing.PolicyProvider,
) *CheckQuotaUseCase {
	locationRepo := &mockLocationRepository{
		CountByTenantFunc: func(ctx context.Context, tenantID uint) (int64, error) { return locations, nil },
	}
	employeeRepo := &mockEmployeeRepository{
		CountByTenantFunc: func(ctx context.Context, tenantID uint) (int64, error) { return employees, nil },
	}
	serviceRepo := &mockServiceRepository{
		CountByTenantFunc: func(ctx context.Context, tenantID uint) (int64, error) { return services, nil },
	}
	appointmentRepo := &mockAppointmentRepository{
		CountForTenantInMonthFunc: func(ctx context.Context, tenantID uint, ref time.Time) (int64, error) {
			return appointments, nil
		},
	}
	counter := &mockRequestCounter{
		CurrentFunc: func(ctx context.Context, tenantID uint, now time.Time) (int64, error) { return requests, nil },
	}
	return NewCheckQuotaUseCase(locationRepo, employeeRepo, serviceRepo, appointmentRepo, counter, policies, &mockLogger{})
}

func TestCheckQuota_ZeroLimitIsUnrestricted(t *testing.T) {
	uc := newCheckQuota(1000, 1000, 1000, 1000, 1000, fixedPolicies(billing.Limits{}))

	result, err := uc.Execute(quotaTenantContext(t, vo.PlanPro), CheckQuotaCommand{
		Resource: billing.ResourceAppointmentsMonth,
	})

	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, int64(0), result.Limit)
}

func TestCheckQuota_UnderLimitAllowed(t *testing.T) {
	uc := newCheckQuota(0, 0, 0, 49, 0, fixedPolicies(billing.Limits{AppointmentsPerMonth: 50}))

	result, err := uc.Execute(quotaTenantContext(t, vo.PlanFree), CheckQuotaCommand{
		Resource: billing.ResourceAppointmentsMonth,
	})

	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, int64(50), result.Limit)
	assert.Equal(t, int64(49), result.Current)
}

func TestCheckQuota_AtLimitExceeded(t *testing.T) {
	uc := newCheckQuota(0, 0, 0, 50, 0, fixedPolicies(billing.Limits{AppointmentsPerMonth: 50}))

	_, err := uc.Execute(quotaTenantContext(t, vo.PlanFree), CheckQuotaCommand{
		Resource: billing.ResourceAppointmentsMonth,
	})

	assert.Error(t, err)
	assert.True(t, errors.IsQuotaExceededError(err))

	appErr := errors.GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, int64(50), appErr.Meta["limit"])
		assert.Equal(t, int64(50), appErr.Meta["current"])
		assert.Equal(t, "appointments_per_month", appErr.Meta["resource"])
	}
}

func TestCheckQuota_ResourceRouting(t *testing.T) {
	limits := billing.Limits{
		Locations:            10,
		Employees:            10,
		Services:             10,
		AppointmentsPerMonth: 10,
		APIRequestsPerDay:    10,
	}
	// Distinct usage per resource so the routing is observable.
	uc := newCheckQuota(1, 2, 3, 4, 5, fixedPolicies(limits))

	tests := []struct {
		resource billing.Resource
		current  int64
	}{
		{billing.ResourceLocations, 1},
		{billing.ResourceEmployees, 2},
		{billing.ResourceServices, 3},
		{billing.ResourceAppointmentsMonth, 4},
		{billing.ResourceAPIRequestsDay, 5},
	}

	ctx := quotaTenantContext(t, vo.PlanBasic)
	for _, tt := range tests {
		t.Run(tt.resource.String(), func(t *testing.T) {
			result, err := uc.Execute(ctx, CheckQuotaCommand{Resource: tt.resource})
			assert.NoError(t, err)
			assert.Equal(t, tt.current, result.Current)
		})
	}
}

func TestCheckQuota_InvalidResource(t *testing.T) {
	uc := newCheckQuota(0, 0, 0, 0, 0, fixedPolicies(billing.Limits{}))

	_, err := uc.Execute(quotaTenantContext(t, vo.PlanFree), CheckQuotaCommand{
		Resource: billing.Resource("widgets"),
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestCheckQuota_MissingTenantContext(t *testing.T) {
	uc := newCheckQuota(0, 0, 0, 0, 0, fixedPolicies(billing.Limits{}))

	_, err := uc.Execute(context.Background(), CheckQuotaCommand{
		Resource: billing.ResourceLocations,
	})

	assert.Error(t, err)
}
