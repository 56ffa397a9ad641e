package billing

import "testing"

func TestLimits_For(t *testing.T) {
	limits := Limits{
		Locations:            1,
		Employees:            3,
		Services:             5,
		AppointmentsPerMonth: 50,
		APIRequestsPerDay:    1000,
	}

	tests := []struct {
		resource Resource
		want     int64
	}{
		{ResourceLocations, 1},
		{ResourceEmployees, 3},
		{ResourceServices, 5},
		{ResourceAppointmentsMonth, 50},
		{ResourceAPIRequestsDay, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.resource.String(), func(t *testing.T) {
			if got := limits.For(tt.resource); got != tt.want {
				t.Errorf("For(%s) = %d, want %d", tt.resource, got, tt.want)
			}
		})
	}
}

func TestLimits_For_ZeromeansUnrestricted(t *testing.T) {
	var limits Limits
	for _, r := range []Resource{ResourceLocations, ResourceEmployees, ResourceServices, ResourceAppointmentsMonth, ResourceAPIRequestsDay} {
		if got := limits.For(r); got != 0 {
			t.Errorf("For(%s) on zero limits = %d, want 0", r, got)
		}
	}
}

func TestNewResource(t *testing.T) {
	if _, err := NewResource("appointments_per_month"); err != nil {
		t.Errorf("NewResource(appointments_per_month) error = %v, want nil", err)
	}
	if _, err := NewResource("widgets"); err == nil {
		t.Error("NewResource(widgets) error = nil, want error")
	}
}
