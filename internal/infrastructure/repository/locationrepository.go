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

type LocationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewLocationRepository(db *gorm.DB) catalog.LocationRepository {
	return &LocationRepositoryImpl{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *LocationRepositoryImpl) FindByID(ctx context.Context, tenantID, id uint) (*catalog.Location, error) {
	var model models.LocationModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("location not found")
		}
		return nil, fmt.Errorf("failed to get location by ID: %w", err)
	}

	return r.mapper.LocationToDomain(&model)
}

func (r *LocationRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint) ([]*catalog.Location, error) {
	var modelList []*models.LocationModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	locations := make([]*catalog.Location, 0, len(modelList))
	for _, model := range modelList {
		location, err := r.mapper.LocationToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map location model to entity: %w", err)
		}
		locations = append(locations, location)
	}

	return locations, nil
}

func (r *LocationRepositoryImpl) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.LocationModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count locations: %w", err)
	}

	return count, nil
}
