package tenant

import (
	"testing"
	"time"

	vo "slotly/internal/domain/tenant/valueobjects"
)

func reconstructTestTenant(t *testing.T, settings map[string]interface{}) *Tenant {
	t.Helper()
	now := time.Now()
	tn, err := ReconstructTenant(
		1, "6a1f0a3e-9a6e-4c8f-8f90-000000000001", "acme", nil,
		vo.StatusActive, vo.PlanFree, nil, nil, settings, now, now,
	)
	if err != nil {
		t.Fatalf("ReconstructTenant: %v", err)
	}
	return tn
}

func TestNewTenant(t *testing.T) {
	tn, err := NewTenant("acme", vo.PlanFree)
	if err != nil {
		t.Fatalf("NewTenant() error = %v", err)
	}

	if tn.Status() != vo.StatusTrial {
		t.Errorf("Status() = %s, want %s", tn.Status(), vo.StatusTrial)
	}
	if tn.PublicID() == "" {
		t.Error("PublicID() is empty, want generated UUID")
	}
}

func TestNewTenant_InvalidSubdomain(t *testing.T) {
	tests := []struct {
		name      string
		subdomain string
	}{
		{"empty", ""},
		{"uppercase", "Acme"},
		{"leading hyphen", "-acme"},
		{"trailing hyphen", "acme-"},
		{"contains dot", "acme.shop"},
		{"contains space", "acme shop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTenant(tt.subdomain, vo.PlanFree); err == nil {
				t.Errorf("NewTenant(%q) error = nil, want error", tt.subdomain)
			}
		})
	}
}

func TestValidSubdomain(t *testing.T) {
	tests := []struct {
		subdomain string
		want      bool
	}{
		{"acme", true},
		{"acme-shop", true},
		{"a", true},
		{"shop42", true},
		{"", false},
		{"-acme", false},
		{"acme-", false},
		{"Acme", false},
	}

	for _, tt := range tests {
		t.Run(tt.subdomain, func(t *testing.T) {
			if got := ValidSubdomain(tt.subdomain); got != tt.want {
				t.Errorf("ValidSubdomain(%q) = %v, want %v", tt.subdomain, got, tt.want)
			}
		})
	}
}

func TestTenant_TrialExpired(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	noTrial := reconstructTestTenant(t, nil)
	if noTrial.TrialExpired(now) {
		t.Error("TrialExpired() without trial end = true, want false")
	}

	mk := func(ends time.Time) *Tenant {
		tn, err := ReconstructTenant(
			1, "6a1f0a3e-9a6e-4c8f-8f90-000000000001", "acme", nil,
			vo.StatusActive, vo.PlanFree, &ends, nil, nil, now, now,
		)
		if err != nil {
			t.Fatalf("ReconstructTenant: %v", err)
		}
		return tn
	}

	if !mk(past).TrialExpired(now) {
		t.Error("TrialExpired() with past trial end = false, want true")
	}
	if mk(future).TrialExpired(now) {
		t.Error("TrialExpired() with future trial end = true, want false")
	}
}

func TestTenant_RescheduleLimitHours(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]interface{}
		want     int
	}{
		{"no settings", nil, DefaultRescheduleLimitHours},
		{"int override", map[string]interface{}{SettingRescheduleLimitHours: 6}, 6},
		{"float from json", map[string]interface{}{SettingRescheduleLimitHours: float64(4)}, 4},
		{"zero ignored", map[string]interface{}{SettingRescheduleLimitHours: 0}, DefaultRescheduleLimitHours},
		{"negative ignored", map[string]interface{}{SettingRescheduleLimitHours: -3}, DefaultRescheduleLimitHours},
		{"wrong type ignored", map[string]interface{}{SettingRescheduleLimitHours: "6"}, DefaultRescheduleLimitHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn := reconstructTestTenant(t, tt.settings)
			if got := tn.RescheduleLimitHours(); got != tt.want {
				t.Errorf("RescheduleLimitHours() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTenant_Location(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]interface{}
		want     string
	}{
		{"no settings", nil, "UTC"},
		{"valid zone", map[string]interface{}{SettingTimezone: "Europe/Berlin"}, "Europe/Berlin"},
		{"unknown zone falls back", map[string]interface{}{SettingTimezone: "Mars/Olympus"}, "UTC"},
		{"empty zone falls back", map[string]interface{}{SettingTimezone: ""}, "UTC"},
		{"wrong type falls back", map[string]interface{}{SettingTimezone: 42}, "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn := reconstructTestTenant(t, tt.settings)
			if got := tn.Location().String(); got != tt.want {
				t.Errorf("Location() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestReconstructTenant_Validation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		id       uint
		publicID string
		sub      string
		status   vo.TenantStatus
		wantErr  bool
	}{
		{"valid", 1, "pid", "acme", vo.StatusActive, false},
		{"zero id", 0, "pid", "acme", vo.StatusActive, true},
		{"missing public id", 1, "", "acme", vo.StatusActive, true},
		{"missing subdomain", 1, "pid", "", vo.StatusActive, true},
		{"invalid status", 1, "pid", "acme", vo.TenantStatus("GONE"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReconstructTenant(tt.id, tt.publicID, tt.sub, nil, tt.status, vo.PlanFree, nil, nil, nil, now, now)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReconstructTenant() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
