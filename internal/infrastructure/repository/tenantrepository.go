package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"slotly/internal/domain/tenant"
	"slotly/internal/infrastructure/persistence/mappers"
	"slotly/internal/infrastructure/persistence/models"
	"slotly/internal/shared/db"
	"slotly/internal/shared/errors"
)

type TenantRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
}

func NewTenantRepository(db *gorm.DB) tenant.Repository {
	return &TenantRepositoryImpl{
		db:     db,
		mapper: mappers.NewTenantMapper(),
	}
}

func (r *TenantRepositoryImpl) FindByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	var model models.TenantModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("tenant not found")
		}
		return nil, fmt.Errorf("failed to get tenant by ID: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TenantRepositoryImpl) FindByPublicID(ctx context.Context, publicID string) (*tenant.Tenant, error) {
	var model models.TenantModel

	if err := db.GetTxFromContext(ctx, r.db).Where("public_id = ?", publicID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("tenant not found")
		}
		return nil, fmt.Errorf("failed to get tenant by public ID: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TenantRepositoryImpl) FindBySubdomain(ctx context.Context, subdomain string) (*tenant.Tenant, error) {
	var model models.TenantModel

	if err := db.GetTxFromContext(ctx, r.db).Where("subdomain = ?", subdomain).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("tenant not found")
		}
		return nil, fmt.Errorf("failed to get tenant by subdomain: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TenantRepositoryImpl) FindByCustomDomain(ctx context.Context, domain string) (*tenant.Tenant, error) {
	var model models.TenantModel

	if err := db.GetTxFromContext(ctx, r.db).Where("custom_domain = ?", domain).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("tenant not found")
		}
		return nil, fmt.Errorf("failed to get tenant by custom domain: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
