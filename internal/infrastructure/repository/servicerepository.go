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

type ServiceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewServiceRepository(db *gorm.DB) catalog.ServiceRepository {
	return &ServiceRepositoryImpl{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *ServiceRepositoryImpl) FindByID(ctx context.Context, tenantID, id uint) (*catalog.Service, error) {
	var model models.ServiceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("service not found")
		}
		return nil, fmt.Errorf("failed to get service by ID: %w", err)
	}

	return r.mapper.ServiceToDomain(&model)
}

func (r *ServiceRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint) ([]*catalog.Service, error) {
	var modelList []*models.ServiceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]*catalog.Service, 0, len(modelList))
	for _, model := range modelList {
		service, err := r.mapper.ServiceToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map service model to entity: %w", err)
		}
		services = append(services, service)
	}

	return services, nil
}

func (r *ServiceRepositoryImpl) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ServiceModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}

	return count, nil
}
