package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"slotly/internal/domain/schedule"
	vo "slotly/internal/domain/schedule/valueobjects"
	"slotly/internal/infrastructure/persistence/mappers"
	"slotly/internal/infrastructure/persistence/models"
	"slotly/internal/shared/db"
	"slotly/internal/shared/errors"
)

type ScheduleRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ScheduleMapper
}

func NewScheduleRepository(db *gorm.DB) schedule.Repository {
	return &ScheduleRepositoryImpl{
		db:     db,
		mapper: mappers.NewScheduleMapper(),
	}
}

func (r *ScheduleRepositoryImpl) FindWorkingHours(ctx context.Context, tenantID, employeeID, locationID uint, weekday vo.Weekday) (*schedule.Schedule, error) {
	var model models.ScheduleModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ? AND employee_id = ? AND location_id = ? AND weekday = ? AND block_type = ?",
			tenantID, employeeID, locationID, weekday.String(), vo.BlockWorkingHours.String()).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("no working hours defined for this day")
		}
		return nil, fmt.Errorf("failed to get working hours: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ScheduleRepositoryImpl) ListForEmployee(ctx context.Context, tenantID, employeeID, locationID uint) ([]*schedule.Schedule, error) {
	var modelList []*models.ScheduleModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ? AND employee_id = ? AND location_id = ?", tenantID, employeeID, locationID).
		Order("weekday ASC, start_time ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list schedule blocks: %w", err)
	}

	blocks := make([]*schedule.Schedule, 0, len(modelList))
	for _, model := range modelList {
		block, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map schedule model to entity: %w", err)
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}
