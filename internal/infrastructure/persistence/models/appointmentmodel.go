package models

import "github.com/shopspring/decimal"

type AppointmentModel struct {
	ID         uint   `gorm:"primaryKey"`
	PublicID   string `gorm:"uniqueIndex;size:36;not null"`
	TenantID   uint   `gorm:"not null;index"`
	ServiceID  uint   `gorm:"not null;index"`
	EmployeeID uint   `gorm:"not null;index:idx_appt_employee_start"`
	LocationID uint   `gorm:"not null;index"`
	// StartTime is stored as unix millis; the effective end is derived from
	// the service duration, never stored.
	StartTime       int64  `gorm:"not null;index:idx_appt_employee_start"`
	Status          string `gorm:"size:20;not null;index"`
	BookedBy        string `gorm:"size:254;not null"`
	BookedByName    string `gorm:"size:200"`
	UserID          string `gorm:"size:64;index"`
	CanceledBy      *string `gorm:"size:254"`
	CancelReason    *string `gorm:"size:500"`
	PaymentStatus   string  `gorm:"size:20;not null"`
	PaymentAmount   *decimal.Decimal `gorm:"type:decimal(10,2)"`
	FulfillmentDate *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`

	// DurationMinutes is populated by repository queries that join the
	// services table; it is not a column.
	DurationMinutes int `gorm:"->;-:migration"`
}

func (AppointmentModel) TableName() string {
	return "appointments"
}
