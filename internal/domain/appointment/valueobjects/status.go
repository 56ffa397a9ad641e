package valueobjects

import "fmt"

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusFulfilled AppointmentStatus = "FULFILLED"
)

var validAppointmentStatuses = map[AppointmentStatus]bool{
	StatusScheduled: true,
	StatusCancelled: true,
	StatusFulfilled: true,
}

// CANCELLED and FULFILLED are both terminal.
var appointmentStatusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {
		StatusCancelled,
		StatusFulfilled,
	},
	StatusCancelled: {},
	StatusFulfilled: {},
}

func (s AppointmentStatus) String() string {
	return string(s)
}

func (s AppointmentStatus) IsValid() bool {
	return validAppointmentStatuses[s]
}

func (s AppointmentStatus) CanTransitionTo(newStatus AppointmentStatus) bool {
	for _, allowed := range appointmentStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s AppointmentStatus) IsScheduled() bool {
	return s == StatusScheduled
}

func (s AppointmentStatus) IsCancelled() bool {
	return s == StatusCancelled
}

func (s AppointmentStatus) IsFulfilled() bool {
	return s == StatusFulfilled
}

func NewAppointmentStatus(s string) (AppointmentStatus, error) {
	as := AppointmentStatus(s)
	if !as.IsValid() {
		return "", fmt.Errorf("invalid appointment status: %s", s)
	}
	return as, nil
}
