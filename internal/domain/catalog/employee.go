package catalog

import (
	"fmt"
	"time"
)

// Employee is a bookable staff member owned by one tenant. An employee may
// work at several locations; the join is checked at booking time.
type Employee struct {
	id        uint
	tenantID  uint
	name      string
	email     string
	title     string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewEmployee(tenantID uint, name, email, title string) (*Employee, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("employee name is required")
	}

	now := time.Now()
	return &Employee{
		tenantID:  tenantID,
		name:      name,
		email:     email,
		title:     title,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructEmployee(id, tenantID uint, name, email, title string, active bool, createdAt, updatedAt time.Time) (*Employee, error) {
	if id == 0 {
		return nil, fmt.Errorf("employee ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	return &Employee{
		id:        id,
		tenantID:  tenantID,
		name:      name,
		email:     email,
		title:     title,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (e *Employee) ID() uint             { return e.id }
func (e *Employee) TenantID() uint       { return e.tenantID }
func (e *Employee) Name() string         { return e.name }
func (e *Employee) Email() string        { return e.email }
func (e *Employee) Title() string        { return e.title }
func (e *Employee) IsActive() bool       { return e.active }
func (e *Employee) CreatedAt() time.Time { return e.createdAt }
func (e *Employee) UpdatedAt() time.Time { return e.updatedAt }

func (e *Employee) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("employee ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("employee ID cannot be zero")
	}
	e.id = id
	return nil
}
