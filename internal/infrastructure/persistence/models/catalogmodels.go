package models

import "github.com/shopspring/decimal"

type LocationModel struct {
	ID        uint   `gorm:"primaryKey"`
	TenantID  uint   `gorm:"not null;index"`
	Name      string `gorm:"size:200;not null"`
	Address   string `gorm:"size:500"`
	Phone     string `gorm:"size:50"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (LocationModel) TableName() string {
	return "locations"
}

type EmployeeModel struct {
	ID        uint   `gorm:"primaryKey"`
	TenantID  uint   `gorm:"not null;index"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:254"`
	Title     string `gorm:"size:100"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}

type ServiceModel struct {
	ID              uint   `gorm:"primaryKey"`
	TenantID        uint   `gorm:"not null;index"`
	Name            string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text"`
	DurationMinutes int    `gorm:"not null"`
	Price           *decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ServiceModel) TableName() string {
	return "services"
}

// EmployeeLocationModel is the many-to-many join between employees and
// locations, scoped to one tenant.
type EmployeeLocationModel struct {
	ID         uint `gorm:"primaryKey"`
	TenantID   uint `gorm:"not null;index"`
	EmployeeID uint `gorm:"not null;uniqueIndex:idx_employee_location"`
	LocationID uint `gorm:"not null;uniqueIndex:idx_employee_location"`
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null"`
}

func (EmployeeLocationModel) TableName() string {
	return "employee_locations"
}
