package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"slotly/internal/domain/catalog"
	"slotly/internal/infrastructure/persistence/mappers"
	"slotly/internal/infrastructure/persistence/models"
	"slotly/internal/shared/db"
	"slotly/internal/shared/errors"
)

type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewEmployeeRepository(db *gorm.DB) catalog.EmployeeRepository {
	return &EmployeeRepositoryImpl{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *EmployeeRepositoryImpl) FindByID(ctx context.Context, tenantID, id uint) (*catalog.Employee, error) {
	var model models.EmployeeModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("employee not found")
		}
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return r.mapper.EmployeeToDomain(&model)
}

func (r *EmployeeRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint) ([]*catalog.Employee, error) {
	var modelList []*models.EmployeeModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *EmployeeRepositoryImpl) ListByLocation(ctx context.Context, tenantID, locationID uint) ([]*catalog.Employee, error) {
	var modelList []*models.EmployeeModel

	if err := db.GetTxFromContext(ctx, r.db).
		Joins("JOIN employee_locations ON employee_locations.employee_id = employees.id").
		Where("employees.tenant_id = ? AND employee_locations.location_id = ?", tenantID, locationID).
		Order("employees.name ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees by location: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *EmployeeRepositoryImpl) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.EmployeeModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

func (r *EmployeeRepositoryImpl) WorksAt(ctx context.Context, tenantID, employeeID, locationID uint) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.EmployeeLocationModel{}).
		Joins("JOIN employees ON employees.id = employee_locations.employee_id").
		Where("employees.tenant_id = ? AND employee_locations.employee_id = ? AND employee_locations.location_id = ?",
			tenantID, employeeID, locationID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check employee location assignment: %w", err)
	}

	return count > 0, nil
}

func (r *EmployeeRepositoryImpl) toDomainList(modelList []*models.EmployeeModel) ([]*catalog.Employee, error) {
	employees := make([]*catalog.Employee, 0, len(modelList))
	for _, model := range modelList {
		employee, err := r.mapper.EmployeeToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map employee model to entity: %w", err)
		}
		employees = append(employees, employee)
	}
	return employees, nil
}
