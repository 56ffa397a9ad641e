package appointment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	vo "slotly/internal/domain/appointment/valueobjects"
)

func newTestAppointment(t *testing.T, start time.Time) *Appointment {
	t.Helper()
	appt, err := NewAppointment(1, 10, 20, 30, start, 60, Customer{BookedBy: "alice@example.com"}, nil)
	if err != nil {
		t.Fatalf("NewAppointment: %v", err)
	}
	return appt
}

func TestNewAppointment_Validation(t *testing.T) {
	start := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name     string
		tenantID uint
		start    time.Time
		duration int
		customer Customer
		wantErr  bool
	}{
		{"valid", 1, start, 30, Customer{BookedBy: "a@b.c"}, false},
		{"missing tenant", 0, start, 30, Customer{BookedBy: "a@b.c"}, true},
		{"zero start", 1, time.Time{}, 30, Customer{BookedBy: "a@b.c"}, true},
		{"zero duration", 1, start, 0, Customer{BookedBy: "a@b.c"}, true},
		{"negative duration", 1, start, -15, Customer{BookedBy: "a@b.c"}, true},
		{"missing identity", 1, start, 30, Customer{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAppointment(tt.tenantID, 10, 20, 30, tt.start, tt.duration, tt.customer, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewAppointment() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewAppointment_Defaults(t *testing.T) {
	appt := newTestAppointment(t, time.Now().Add(time.Hour))

	if appt.Status() != vo.StatusScheduled {
		t.Errorf("Status() = %s, want %s", appt.Status(), vo.StatusScheduled)
	}
	if appt.PaymentStatus() != vo.PaymentUnpaid {
		t.Errorf("PaymentStatus() = %s, want %s", appt.PaymentStatus(), vo.PaymentUnpaid)
	}
	if appt.PublicID() == "" {
		t.Error("PublicID() is empty, want generated UUID")
	}
}

func TestAppointment_EndTime(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	appt := newTestAppointment(t, start)

	want := start.Add(60 * time.Minute)
	if !appt.EndTime().Equal(want) {
		t.Errorf("EndTime() = %v, want %v", appt.EndTime(), want)
	}
}

func TestAppointment_OverlapsInterval(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	appt := newTestAppointment(t, start) // occupies 09:00-10:00

	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", at(9, 0), at(10, 0), true},
		{"contained", at(9, 15), at(9, 45), true},
		{"straddles start", at(8, 30), at(9, 30), true},
		{"straddles end", at(9, 30), at(10, 30), true},
		{"ends exactly at start", at(8, 0), at(9, 0), false},
		{"starts exactly at end", at(10, 0), at(11, 0), false},
		{"before", at(7, 0), at(8, 0), false},
		{"after", at(11, 0), at(12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appt.OverlapsInterval(tt.start, tt.end); got != tt.want {
				t.Errorf("OverlapsInterval(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestAppointment_WithinChangeWindow(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start      time.Time
		limitHours int
		want       bool
	}{
		{"plenty of lead time", now.Add(5 * time.Hour), 2, true},
		{"exactly at the limit", now.Add(2 * time.Hour), 2, true},
		{"just under the limit", now.Add(2*time.Hour - time.Minute), 2, false},
		{"already started", now.Add(-time.Hour), 2, false},
		{"tighter tenant limit", now.Add(2 * time.Hour), 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := newTestAppointment(t, tt.start)
			if got := appt.WithinChangeWindow(now, tt.limitHours); got != tt.want {
				t.Errorf("WithinChangeWindow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppointment_Cancel(t *testing.T) {
	appt := newTestAppointment(t, time.Now().Add(24*time.Hour))

	if err := appt.Cancel("alice@example.com", "sick"); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	if appt.Status() != vo.StatusCancelled {
		t.Errorf("Status() = %s, want %s", appt.Status(), vo.StatusCancelled)
	}
	if appt.CanceledBy() == nil || *appt.CanceledBy() != "alice@example.com" {
		t.Errorf("CanceledBy() = %v, want alice@example.com", appt.CanceledBy())
	}
	if appt.CancelReason() == nil || *appt.CancelReason() != "sick" {
		t.Errorf("CancelReason() = %v, want sick", appt.CancelReason())
	}

	// Cancelling twice is rejected.
	if err := appt.Cancel("alice@example.com", ""); err == nil {
		t.Error("Cancel() on cancelled appointment error = nil, want error")
	}
}

func TestAppointment_Cancel_EmptyReasonNotRecorded(t *testing.T) {
	appt := newTestAppointment(t, time.Now().Add(24*time.Hour))

	if err := appt.Cancel("staff-1", ""); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if appt.CancelReason() != nil {
		t.Errorf("CancelReason() = %v, want nil", appt.CancelReason())
	}
}

func TestAppointment_Fulfill(t *testing.T) {
	appt := newTestAppointment(t, time.Now().Add(-time.Hour))
	now := time.Now()

	if err := appt.Fulfill(now); err != nil {
		t.Fatalf("Fulfill() error = %v", err)
	}

	if appt.Status() != vo.StatusFulfilled {
		t.Errorf("Status() = %s, want %s", appt.Status(), vo.StatusFulfilled)
	}
	if appt.FulfillmentDate() == nil || !appt.FulfillmentDate().Equal(now) {
		t.Errorf("FulfillmentDate() = %v, want %v", appt.FulfillmentDate(), now)
	}

	// Terminal: no further transitions.
	if err := appt.Cancel("x", ""); err == nil {
		t.Error("Cancel() on fulfilled appointment error = nil, want error")
	}
	if err := appt.Fulfill(now); err == nil {
		t.Error("Fulfill() on fulfilled appointment error = nil, want error")
	}
}

func TestAppointment_Fulfill_CancelledRejected(t *testing.T) {
	appt := newTestAppointment(t, time.Now().Add(24*time.Hour))

	if err := appt.Cancel("alice", ""); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if err := appt.Fulfill(time.Now()); err == nil {
		t.Error("Fulfill() on cancelled appointment error = nil, want error")
	}
}

func TestAppointment_Reschedule(t *testing.T) {
	appt := newTestAppointment(t, time.Now().Add(24*time.Hour))
	newStart := time.Now().Add(48 * time.Hour)

	if err := appt.Reschedule(newStart); err != nil {
		t.Fatalf("Reschedule() error = %v", err)
	}
	if !appt.StartTime().Equal(newStart) {
		t.Errorf("StartTime() = %v, want %v", appt.StartTime(), newStart)
	}

	if err := appt.Cancel("alice", ""); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if err := appt.Reschedule(newStart.Add(time.Hour)); err == nil {
		t.Error("Reschedule() on cancelled appointment error = nil, want error")
	}
}

func TestAppointment_MarkPaid(t *testing.T) {
	appt := newTestAppointment(t, time.Now().Add(24*time.Hour))
	amount := decimal.NewFromInt(50)

	if err := appt.MarkPaid(amount); err != nil {
		t.Fatalf("MarkPaid() error = %v", err)
	}
	if appt.PaymentStatus() != vo.PaymentPaid {
		t.Errorf("PaymentStatus() = %s, want %s", appt.PaymentStatus(), vo.PaymentPaid)
	}
	if appt.PaymentAmount() == nil || !appt.PaymentAmount().Equal(amount) {
		t.Errorf("PaymentAmount() = %v, want %v", appt.PaymentAmount(), amount)
	}

	if err := appt.MarkPaid(amount); err == nil {
		t.Error("MarkPaid() twice error = nil, want error")
	}
}

func TestAppointment_Deletable(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	future := newTestAppointment(t, now.Add(24*time.Hour))
	if future.Deletable(now) {
		t.Error("Deletable() on future scheduled appointment = true, want false")
	}

	past := newTestAppointment(t, now.Add(-24*time.Hour))
	if !past.Deletable(now) {
		t.Error("Deletable() on past appointment = false, want true")
	}

	cancelled := newTestAppointment(t, now.Add(24*time.Hour))
	if err := cancelled.Cancel("alice", ""); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if !cancelled.Deletable(now) {
		t.Error("Deletable() on cancelled appointment = false, want true")
	}
}

func TestAppointmentStatus_Transitions(t *testing.T) {
	tests := []struct {
		name string
		from vo.AppointmentStatus
		to   vo.AppointmentStatus
		want bool
	}{
		{"scheduled to cancelled", vo.StatusScheduled, vo.StatusCancelled, true},
		{"scheduled to fulfilled", vo.StatusScheduled, vo.StatusFulfilled, true},
		{"cancelled to fulfilled", vo.StatusCancelled, vo.StatusFulfilled, false},
		{"cancelled to scheduled", vo.StatusCancelled, vo.StatusScheduled, false},
		{"fulfilled to cancelled", vo.StatusFulfilled, vo.StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
