package mappers

import (
	"time"

	"slotly/internal/domain/appointment"
	vo "slotly/internal/domain/appointment/valueobjects"
	"slotly/internal/infrastructure/persistence/models"
)

type AppointmentMapper interface {
	ToModel(a *appointment.Appointment) *models.AppointmentModel
	// ToDomain expects the model's DurationMinutes to be resolved via the
	// services join performed by the repository.
	ToDomain(model *models.AppointmentModel) (*appointment.Appointment, error)
}

type AppointmentMapperImpl struct{}

func NewAppointmentMapper() AppointmentMapper {
	return &AppointmentMapperImpl{}
}

func (m *AppointmentMapperImpl) ToModel(a *appointment.Appointment) *models.AppointmentModel {
	model := &models.AppointmentModel{
		ID:            a.ID(),
		PublicID:      a.PublicID(),
		TenantID:      a.TenantID(),
		ServiceID:     a.ServiceID(),
		EmployeeID:    a.EmployeeID(),
		LocationID:    a.LocationID(),
		StartTime:     a.StartTime().UnixMilli(),
		Status:        a.Status().String(),
		BookedBy:      a.BookedBy(),
		BookedByName:  a.BookedByName(),
		UserID:        a.UserID(),
		CanceledBy:    a.CanceledBy(),
		CancelReason:  a.CancelReason(),
		PaymentStatus: a.PaymentStatus().String(),
		PaymentAmount: a.PaymentAmount(),
		CreatedAt:     a.CreatedAt().UnixMilli(),
		UpdatedAt:     a.UpdatedAt().UnixMilli(),
	}

	if a.FulfillmentDate() != nil {
		fulfilled := a.FulfillmentDate().UnixMilli()
		model.FulfillmentDate = &fulfilled
	}

	return model
}

func (m *AppointmentMapperImpl) ToDomain(model *models.AppointmentModel) (*appointment.Appointment, error) {
	status, err := vo.NewAppointmentStatus(model.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := vo.NewPaymentStatus(model.PaymentStatus)
	if err != nil {
		return nil, err
	}

	var fulfillmentDate *time.Time
	if model.FulfillmentDate != nil {
		t := time.UnixMilli(*model.FulfillmentDate)
		fulfillmentDate = &t
	}

	return appointment.ReconstructAppointment(
		model.ID,
		model.PublicID,
		model.TenantID,
		model.ServiceID,
		model.EmployeeID,
		model.LocationID,
		time.UnixMilli(model.StartTime),
		model.DurationMinutes,
		status,
		appointment.Customer{
			BookedBy:     model.BookedBy,
			BookedByName: model.BookedByName,
			UserID:       model.UserID,
		},
		model.CanceledBy,
		model.CancelReason,
		paymentStatus,
		model.PaymentAmount,
		fulfillmentDate,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
