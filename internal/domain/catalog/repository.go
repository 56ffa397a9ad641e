package catalog

import "context"

// All repository lookups are tenant-scoped: implementations must filter by
// tenantID so cross-tenant reads are impossible by construction.

type LocationRepository interface {
	FindByID(ctx context.Context, tenantID, id uint) (*Location, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]*Location, error)
	CountByTenant(ctx context.Context, tenantID uint) (int64, error)
}

type EmployeeRepository interface {
	FindByID(ctx context.Context, tenantID, id uint) (*Employee, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]*Employee, error)
	ListByLocation(ctx context.Context, tenantID, locationID uint) ([]*Employee, error)
	CountByTenant(ctx context.Context, tenantID uint) (int64, error)
	// WorksAt reports whether the employee is assigned to the location
	// through the employee-location join.
	WorksAt(ctx context.Context, tenantID, employeeID, locationID uint) (bool, error)
}

type ServiceRepository interface {
	FindByID(ctx context.Context, tenantID, id uint) (*Service, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]*Service, error)
	CountByTenant(ctx context.Context, tenantID uint) (int64, error)
}
