package valueobjects

import "fmt"

type TenantStatus string

const (
	StatusActive    TenantStatus = "ACTIVE"
	StatusTrial     TenantStatus = "TRIAL"
	StatusSuspended TenantStatus = "SUSPENDED"
	StatusExpired   TenantStatus = "EXPIRED"
)

var validTenantStatuses = map[TenantStatus]bool{
	StatusActive:    true,
	StatusTrial:     true,
	StatusSuspended: true,
	StatusExpired:   true,
}

func (s TenantStatus) String() string {
	return string(s)
}

func (s TenantStatus) IsValid() bool {
	return validTenantStatuses[s]
}

func (s TenantStatus) IsActive() bool {
	return s == StatusActive
}

func (s TenantStatus) IsTrial() bool {
	return s == StatusTrial
}

func NewTenantStatus(s string) (TenantStatus, error) {
	ts := TenantStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid tenant status: %s", s)
	}
	return ts, nil
}
