package models

import "gorm.io/datatypes"

type TenantModel struct {
	ID           uint    `gorm:"primaryKey"`
	PublicID     string  `gorm:"uniqueIndex;size:36;not null"`
	Subdomain    string  `gorm:"uniqueIndex;size:63;not null"`
	CustomDomain *string `gorm:"uniqueIndex;size:253"`
	Status       string  `gorm:"size:20;not null;index"`
	Plan         string  `gorm:"size:20;not null"`
	TrialEndsAt  *int64
	Features     datatypes.JSONMap `gorm:"type:json"`
	Settings     datatypes.JSONMap `gorm:"type:json"`
	CreatedAt    int64             `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64             `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TenantModel) TableName() string {
	return "tenants"
}
