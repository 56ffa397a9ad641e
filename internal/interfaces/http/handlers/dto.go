package handlers

import (
	"time"

	availabilityusecases "slotly/internal/application/availability/usecases"
	"slotly/internal/domain/appointment"
	"slotly/internal/domain/catalog"
	"slotly/internal/domain/schedule"
)

type AppointmentResponse struct {
	ID              string  `json:"id"`
	ServiceID       uint    `json:"service_id"`
	EmployeeID      uint    `json:"employee_id"`
	LocationID      uint    `json:"location_id"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	BookedBy        string  `json:"booked_by"`
	BookedByName    string  `json:"booked_by_name,omitempty"`
	UserID          string  `json:"user_id,omitempty"`
	CanceledBy      *string `json:"canceled_by,omitempty"`
	CancelReason    *string `json:"cancel_reason,omitempty"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentAmount   *string `json:"payment_amount,omitempty"`
	FulfillmentDate *string `json:"fulfillment_date,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func toAppointmentResponse(a *appointment.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:              a.PublicID(),
		ServiceID:       a.ServiceID(),
		EmployeeID:      a.EmployeeID(),
		LocationID:      a.LocationID(),
		StartTime:       a.StartTime().UTC().Format(time.RFC3339),
		EndTime:         a.EndTime().UTC().Format(time.RFC3339),
		DurationMinutes: a.DurationMinutes(),
		Status:          a.Status().String(),
		BookedBy:        a.BookedBy(),
		BookedByName:    a.BookedByName(),
		UserID:          a.UserID(),
		CanceledBy:      a.CanceledBy(),
		CancelReason:    a.CancelReason(),
		PaymentStatus:   a.PaymentStatus().String(),
		CreatedAt:       a.CreatedAt().UTC().Format(time.RFC3339),
	}

	if a.PaymentAmount() != nil {
		amount := a.PaymentAmount().StringFixed(2)
		resp.PaymentAmount = &amount
	}
	if a.FulfillmentDate() != nil {
		fulfilled := a.FulfillmentDate().UTC().Format(time.RFC3339)
		resp.FulfillmentDate = &fulfilled
	}

	return resp
}

func toAppointmentResponses(list []*appointment.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAppointmentResponse(a))
	}
	return out
}

// SlotResponse reports slots normalized to UTC for transport; generation
// itself happens in the tenant's wall-clock day.
type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func toSlotResponses(slots []availabilityusecases.Slot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			Start: s.Start.UTC().Format(time.RFC3339),
			End:   s.End.UTC().Format(time.RFC3339),
		})
	}
	return out
}

type LocationResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

func toLocationResponses(list []*catalog.Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, LocationResponse{
			ID:      l.ID(),
			Name:    l.Name(),
			Address: l.Address(),
			Phone:   l.Phone(),
		})
	}
	return out
}

type EmployeeResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
	Active bool   `json:"active"`
}

func toEmployeeResponses(list []*catalog.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, EmployeeResponse{
			ID:     e.ID(),
			Name:   e.Name(),
			Title:  e.Title(),
			Active: e.IsActive(),
		})
	}
	return out
}

type ServiceResponse struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           *string `json:"price,omitempty"`
}

func toServiceResponses(list []*catalog.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		resp := ServiceResponse{
			ID:              s.ID(),
			Name:            s.Name(),
			Description:     s.Description(),
			DurationMinutes: s.DurationMinutes(),
		}
		if s.Price() != nil {
			price := s.Price().StringFixed(2)
			resp.Price = &price
		}
		out = append(out, resp)
	}
	return out
}

type ScheduleBlockResponse struct {
	Weekday   string `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	BlockType string `json:"block_type"`
}

func toScheduleBlockResponses(list []*schedule.Schedule) []ScheduleBlockResponse {
	out := make([]ScheduleBlockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ScheduleBlockResponse{
			Weekday:   s.Weekday().String(),
			StartTime: s.StartTime(),
			EndTime:   s.EndTime(),
			BlockType: s.BlockType().String(),
		})
	}
	return out
}
