package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"slotly/internal/domain/appointment"
	vo "slotly/internal/domain/appointment/valueobjects"
	"slotly/internal/infrastructure/persistence/mappers"
	"slotly/internal/infrastructure/persistence/models"
	"slotly/internal/shared/db"
	"slotly/internal/shared/errors"
)

// selectWithDuration joins the services table so every appointment row comes
// back with its effective duration resolved.
const selectWithDuration = "appointments.*, services.duration_minutes AS duration_minutes"

type AppointmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AppointmentMapper
}

func NewAppointmentRepository(db *gorm.DB) appointment.Repository {
	return &AppointmentRepositoryImpl{
		db:     db,
		mapper: mappers.NewAppointmentMapper(),
	}
}

func (r *AppointmentRepositoryImpl) CreateIfNoConflict(ctx context.Context, appt *appointment.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEmployeeRow(tx, appt.TenantID(), appt.EmployeeID()); err != nil {
			return err
		}

		overlaps, err := countOverlapping(tx, appt.TenantID(), appt.EmployeeID(), appt.StartTime(), appt.EndTime(), 0)
		if err != nil {
			return err
		}
		if overlaps > 0 {
			return errors.NewConflictError("time slot already booked")
		}

		model := r.mapper.ToModel(appt)
		if err := tx.Create(model).Error; err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("appointment already exists")
			}
			return wrapStoreError("failed to create appointment", err)
		}

		if err := appt.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set appointment ID: %w", err)
		}

		return nil
	})
}

func (r *AppointmentRepositoryImpl) FindByPublicID(ctx context.Context, tenantID uint, publicID string) (*appointment.Appointment, error) {
	var model models.AppointmentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AppointmentModel{}).
		Select(selectWithDuration).
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.tenant_id = ? AND appointments.public_id = ?", tenantID, publicID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("appointment not found")
		}
		return nil, wrapStoreError("failed to get appointment by public ID", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AppointmentRepositoryImpl) ListScheduledForEmployeeBetween(ctx context.Context, tenantID, employeeID uint, from, to time.Time) ([]*appointment.Appointment, error) {
	var modelList []*models.AppointmentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AppointmentModel{}).
		Select(selectWithDuration).
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.tenant_id = ? AND appointments.employee_id = ? AND appointments.status = ?",
			tenantID, employeeID, vo.StatusScheduled.String()).
		Where("appointments.start_time >= ? AND appointments.start_time < ?", from.UnixMilli(), to.UnixMilli()).
		Order("appointments.start_time ASC").
		Find(&modelList).Error; err != nil {
		return nil, wrapStoreError("failed to list appointments for employee", err)
	}

	return r.toDomainList(modelList)
}

func (r *AppointmentRepositoryImpl) ListForTenant(ctx context.Context, tenantID uint, filter appointment.Filter) ([]*appointment.Appointment, int64, error) {
	base := db.GetTxFromContext(ctx, r.db).
		Model(&models.AppointmentModel{}).
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.tenant_id = ?", tenantID)

	if filter.EmployeeID != nil {
		base = base.Where("appointments.employee_id = ?", *filter.EmployeeID)
	}
	if filter.LocationID != nil {
		base = base.Where("appointments.location_id = ?", *filter.LocationID)
	}
	if filter.UserID != nil {
		base = base.Where("appointments.user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		base = base.Where("appointments.status = ?", *filter.Status)
	}
	if filter.From != nil {
		base = base.Where("appointments.start_time >= ?", filter.From.UnixMilli())
	}
	if filter.To != nil {
		base = base.Where("appointments.start_time < ?", filter.To.UnixMilli())
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, wrapStoreError("failed to count appointments", err)
	}

	query := base.Select(selectWithDuration).Order("appointments.start_time DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var modelList []*models.AppointmentModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, wrapStoreError("failed to list appointments", err)
	}

	list, err := r.toDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *AppointmentRepositoryImpl) Update(ctx context.Context, appt *appointment.Appointment) error {
	model := r.mapper.ToModel(appt)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AppointmentModel{}).
		Where("tenant_id = ? AND id = ?", appt.TenantID(), appt.ID()).
		Updates(map[string]interface{}{
			"status":           model.Status,
			"canceled_by":      model.CanceledBy,
			"cancel_reason":    model.CancelReason,
			"payment_status":   model.PaymentStatus,
			"payment_amount":   model.PaymentAmount,
			"fulfillment_date": model.FulfillmentDate,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		return wrapStoreError("failed to update appointment", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("appointment not found")
	}

	return nil
}

func (r *AppointmentRepositoryImpl) UpdateStartTimeIfNoConflict(ctx context.Context, appt *appointment.Appointment, newStart time.Time) error {
	newEnd := newStart.Add(time.Duration(appt.DurationMinutes()) * time.Minute)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEmployeeRow(tx, appt.TenantID(), appt.EmployeeID()); err != nil {
			return err
		}

		overlaps, err := countOverlapping(tx, appt.TenantID(), appt.EmployeeID(), newStart, newEnd, appt.ID())
		if err != nil {
			return err
		}
		if overlaps > 0 {
			return errors.NewConflictError("time slot already booked")
		}

		if err := appt.Reschedule(newStart); err != nil {
			return err
		}

		result := tx.Model(&models.AppointmentModel{}).
			Where("tenant_id = ? AND id = ?", appt.TenantID(), appt.ID()).
			Updates(map[string]interface{}{
				"start_time": newStart.UnixMilli(),
				"updated_at": appt.UpdatedAt().UnixMilli(),
			})
		if result.Error != nil {
			return wrapStoreError("failed to move appointment", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("appointment not found")
		}

		return nil
	})
}

func (r *AppointmentRepositoryImpl) Delete(ctx context.Context, tenantID, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ?", tenantID).
		Delete(&models.AppointmentModel{}, id)
	if result.Error != nil {
		return wrapStoreError("failed to delete appointment", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("appointment not found")
	}

	return nil
}

func (r *AppointmentRepositoryImpl) CountForTenantInMonth(ctx context.Context, tenantID uint, ref time.Time) (int64, error) {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AppointmentModel{}).
		Where("tenant_id = ? AND status <> ?", tenantID, vo.StatusCancelled.String()).
		Where("created_at >= ? AND created_at < ?", monthStart.UnixMilli(), monthEnd.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, wrapStoreError("failed to count appointments for month", err)
	}

	return count, nil
}

func (r *AppointmentRepositoryImpl) toDomainList(modelList []*models.AppointmentModel) ([]*appointment.Appointment, error) {
	list := make([]*appointment.Appointment, 0, len(modelList))
	for _, model := range modelList {
		appt, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map appointment model to entity: %w", err)
		}
		list = append(list, appt)
	}
	return list, nil
}

// lockEmployeeRow takes a row lock on the employee so concurrent bookings for
// the same employee serialize. The gap between checking overlaps and inserting
// is otherwise open to phantom rows.
func lockEmployeeRow(tx *gorm.DB, tenantID, employeeID uint) error {
	var id uint
	err := tx.Model(&models.EmployeeModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ? AND id = ?", tenantID, employeeID).
		Select("id").
		Take(&id).Error
	if err == gorm.ErrRecordNotFound {
		return errors.NewNotFoundError("employee not found")
	}
	if err != nil {
		return wrapStoreError("failed to lock employee row", err)
	}
	return nil
}

// countOverlapping counts SCHEDULED appointments whose derived interval
// intersects [start, end). Boundary contact is not an overlap. excludeID
// skips the appointment being moved during a reschedule.
func countOverlapping(tx *gorm.DB, tenantID, employeeID uint, start, end time.Time, excludeID uint) (int64, error) {
	query := tx.Model(&models.AppointmentModel{}).
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.tenant_id = ? AND appointments.employee_id = ? AND appointments.status = ?",
			tenantID, employeeID, vo.StatusScheduled.String()).
		Where("appointments.start_time < ? AND appointments.start_time + services.duration_minutes * 60000 > ?",
			end.UnixMilli(), start.UnixMilli())

	if excludeID != 0 {
		query = query.Where("appointments.id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, wrapStoreError("failed to check appointment overlap", err)
	}

	return count, nil
}
