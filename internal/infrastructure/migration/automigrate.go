package migration

import (
	"slotly/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TenantModel{},
		&models.LocationModel{},
		&models.EmployeeModel{},
		&models.ServiceModel{},
		&models.EmployeeLocationModel{},
		&models.ScheduleModel{},
		&models.AppointmentModel{},
	}
}
