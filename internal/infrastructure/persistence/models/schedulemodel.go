package models

type ScheduleModel struct {
	ID         uint   `gorm:"primaryKey"`
	TenantID   uint   `gorm:"not null;index"`
	EmployeeID uint   `gorm:"not null;index:idx_schedule_lookup"`
	LocationID uint   `gorm:"not null;index:idx_schedule_lookup"`
	Weekday    string `gorm:"size:10;not null;index:idx_schedule_lookup"`
	StartTime  string `gorm:"size:5;not null"`
	EndTime    string `gorm:"size:5;not null"`
	BlockType  string `gorm:"size:20;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
