// Package billing defines the plan policy table: per-plan numeric quota
// limits and feature flags. The table is static configuration resolved once
// at startup, never per request.
package billing

import (
	"fmt"

	vo "slotly/internal/domain/tenant/valueobjects"
)

// Resource is a countable tenant resource subject to plan quotas.
type Resource string

const (
	ResourceLocations         Resource = "locations"
	ResourceEmployees         Resource = "employees"
	ResourceServices          Resource = "services"
	ResourceAppointmentsMonth Resource = "appointments_per_month"
	ResourceAPIRequestsDay    Resource = "api_requests_per_day"
)

var validResources = map[Resource]bool{
	ResourceLocations:         true,
	ResourceEmployees:         true,
	ResourceServices:          true,
	ResourceAppointmentsMonth: true,
	ResourceAPIRequestsDay:    true,
}

func (r Resource) String() string {
	return string(r)
}

func (r Resource) IsValid() bool {
	return validResources[r]
}

func NewResource(s string) (Resource, error) {
	r := Resource(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid quota resource: %s", s)
	}
	return r, nil
}

// Limits holds the numeric ceilings per resource. Zero means unrestricted.
type Limits struct {
	Locations            int64 `yaml:"locations"`
	Employees            int64 `yaml:"employees"`
	Services             int64 `yaml:"services"`
	AppointmentsPerMonth int64 `yaml:"appointments_per_month"`
	APIRequestsPerDay    int64 `yaml:"api_requests_per_day"`
}

// For returns the limit for a resource; zero means unrestricted.
func (l Limits) For(r Resource) int64 {
	switch r {
	case ResourceLocations:
		return l.Locations
	case ResourceEmployees:
		return l.Employees
	case ResourceServices:
		return l.Services
	case ResourceAppointmentsMonth:
		return l.AppointmentsPerMonth
	case ResourceAPIRequestsDay:
		return l.APIRequestsPerDay
	}
	return 0
}

// PlanPolicy is the typed per-plan configuration: quota limits plus a
// feature map.
type PlanPolicy struct {
	Limits   Limits          `yaml:"limits"`
	Features map[string]bool `yaml:"features"`
}

// PolicyProvider resolves a plan id to its policy. Implementations must fail
// closed: an unknown plan id resolves to the FREE policy.
type PolicyProvider interface {
	PolicyFor(plan vo.Plan) PlanPolicy
}
