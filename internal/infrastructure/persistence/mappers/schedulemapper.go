package mappers

import (
	"time"

	"slotly/internal/domain/schedule"
	vo "slotly/internal/domain/schedule/valueobjects"
	"slotly/internal/infrastructure/persistence/models"
)

type ScheduleMapper interface {
	ToModel(s *schedule.Schedule) *models.ScheduleModel
	ToDomain(model *models.ScheduleModel) (*schedule.Schedule, error)
}

type ScheduleMapperImpl struct{}

func NewScheduleMapper() ScheduleMapper {
	return &ScheduleMapperImpl{}
}

func (m *ScheduleMapperImpl) ToModel(s *schedule.Schedule) *models.ScheduleModel {
	return &models.ScheduleModel{
		ID:         s.ID(),
		TenantID:   s.TenantID(),
		EmployeeID: s.EmployeeID(),
		LocationID: s.LocationID(),
		Weekday:    s.Weekday().String(),
		StartTime:  s.StartTime(),
		EndTime:    s.EndTime(),
		BlockType:  s.BlockType().String(),
		CreatedAt:  s.CreatedAt().UnixMilli(),
		UpdatedAt:  s.UpdatedAt().UnixMilli(),
	}
}

func (m *ScheduleMapperImpl) ToDomain(model *models.ScheduleModel) (*schedule.Schedule, error) {
	weekday, err := vo.NewWeekday(model.Weekday)
	if err != nil {
		return nil, err
	}
	blockType, err := vo.NewBlockType(model.BlockType)
	if err != nil {
		return nil, err
	}

	return schedule.ReconstructSchedule(
		model.ID,
		model.TenantID,
		model.EmployeeID,
		model.LocationID,
		weekday,
		model.StartTime,
		model.EndTime,
		blockType,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
