package mappers

import (
	"time"

	"slotly/internal/domain/catalog"
	"slotly/internal/infrastructure/persistence/models"
)

// CatalogMapper converts location, employee and service rows to and from
// their domain entities.
type CatalogMapper interface {
	LocationToModel(l *catalog.Location) *models.LocationModel
	LocationToDomain(model *models.LocationModel) (*catalog.Location, error)
	EmployeeToModel(e *catalog.Employee) *models.EmployeeModel
	EmployeeToDomain(model *models.EmployeeModel) (*catalog.Employee, error)
	ServiceToModel(s *catalog.Service) *models.ServiceModel
	ServiceToDomain(model *models.ServiceModel) (*catalog.Service, error)
}

type CatalogMapperImpl struct{}

func NewCatalogMapper() CatalogMapper {
	return &CatalogMapperImpl{}
}

func (m *CatalogMapperImpl) LocationToModel(l *catalog.Location) *models.LocationModel {
	return &models.LocationModel{
		ID:        l.ID(),
		TenantID:  l.TenantID(),
		Name:      l.Name(),
		Address:   l.Address(),
		Phone:     l.Phone(),
		CreatedAt: l.CreatedAt().UnixMilli(),
		UpdatedAt: l.UpdatedAt().UnixMilli(),
	}
}

func (m *CatalogMapperImpl) LocationToDomain(model *models.LocationModel) (*catalog.Location, error) {
	return catalog.ReconstructLocation(
		model.ID,
		model.TenantID,
		model.Name,
		model.Address,
		model.Phone,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *CatalogMapperImpl) EmployeeToModel(e *catalog.Employee) *models.EmployeeModel {
	return &models.EmployeeModel{
		ID:        e.ID(),
		TenantID:  e.TenantID(),
		Name:      e.Name(),
		Email:     e.Email(),
		Title:     e.Title(),
		Active:    e.IsActive(),
		CreatedAt: e.CreatedAt().UnixMilli(),
		UpdatedAt: e.UpdatedAt().UnixMilli(),
	}
}

func (m *CatalogMapperImpl) EmployeeToDomain(model *models.EmployeeModel) (*catalog.Employee, error) {
	return catalog.ReconstructEmployee(
		model.ID,
		model.TenantID,
		model.Name,
		model.Email,
		model.Title,
		model.Active,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *CatalogMapperImpl) ServiceToModel(s *catalog.Service) *models.ServiceModel {
	return &models.ServiceModel{
		ID:              s.ID(),
		TenantID:        s.TenantID(),
		Name:            s.Name(),
		Description:     s.Description(),
		DurationMinutes: s.DurationMinutes(),
		Price:           s.Price(),
		CreatedAt:       s.CreatedAt().UnixMilli(),
		UpdatedAt:       s.UpdatedAt().UnixMilli(),
	}
}

func (m *CatalogMapperImpl) ServiceToDomain(model *models.ServiceModel) (*catalog.Service, error) {
	return catalog.ReconstructService(
		model.ID,
		model.TenantID,
		model.Name,
		model.Description,
		model.DurationMinutes,
		model.Price,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
