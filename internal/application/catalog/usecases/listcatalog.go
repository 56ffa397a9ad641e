package usecases

import (
	"context"

	"slotly/internal/domain/catalog"
	"slotly/internal/domain/tenant"
	"slotly/internal/shared/errors"
)

// Read-side catalog queries for the public booking surface. All of them are
// tenant-scoped through the request context.

type ListLocationsUseCase struct {
	locationRepo catalog.LocationRepository
}

func NewListLocationsUseCase(locationRepo catalog.LocationRepository) *ListLocationsUseCase {
	return &ListLocationsUseCase{locationRepo: locationRepo}
}

func (uc *ListLocationsUseCase) Execute(ctx context.Context) ([]*catalog.Location, error) {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, errors.NewForbiddenError("tenant context is required")
	}
	return uc.locationRepo.ListByTenant(ctx, t.ID())
}

type ListEmployeesCommand struct {
	LocationID *uint
}

type ListEmployeesUseCase struct {
	employeeRepo catalog.EmployeeRepository
}

func NewListEmployeesUseCase(employeeRepo catalog.EmployeeRepository) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{employeeRepo: employeeRepo}
}

func (uc *ListEmployeesUseCase) Execute(ctx context.Context, cmd ListEmployeesCommand) ([]*catalog.Employee, error) {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, errors.NewForbiddenError("tenant context is required")
	}
	if cmd.LocationID != nil {
		return uc.employeeRepo.ListByLocation(ctx, t.ID(), *cmd.LocationID)
	}
	return uc.employeeRepo.ListByTenant(ctx, t.ID())
}

type ListServicesUseCase struct {
	serviceRepo catalog.ServiceRepository
}

func NewListServicesUseCase(serviceRepo catalog.ServiceRepository) *ListServicesUseCase {
	return &ListServicesUseCase{serviceRepo: serviceRepo}
}

func (uc *ListServicesUseCase) Execute(ctx context.Context) ([]*catalog.Service, error) {
	t, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, errors.NewForbiddenError("tenant context is required")
	}
	return uc.serviceRepo.ListByTenant(ctx, t.ID())
}
