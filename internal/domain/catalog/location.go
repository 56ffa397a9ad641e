package catalog

import (
	"fmt"
	"time"
)

// Location is a physical place of business owned by one tenant.
type Location struct {
	id        uint
	tenantID  uint
	name      string
	address   string
	phone     string
	createdAt time.Time
	updatedAt time.Time
}

func NewLocation(tenantID uint, name, address, phone string) (*Location, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("location name is required")
	}

	now := time.Now()
	return &Location{
		tenantID:  tenantID,
		name:      name,
		address:   address,
		phone:     phone,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructLocation(id, tenantID uint, name, address, phone string, createdAt, updatedAt time.Time) (*Location, error) {
	if id == 0 {
		return nil, fmt.Errorf("location ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	return &Location{
		id:        id,
		tenantID:  tenantID,
		name:      name,
		address:   address,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (l *Location) ID() uint             { return l.id }
func (l *Location) TenantID() uint       { return l.tenantID }
func (l *Location) Name() string         { return l.name }
func (l *Location) Address() string      { return l.address }
func (l *Location) Phone() string        { return l.phone }
func (l *Location) CreatedAt() time.Time { return l.createdAt }
func (l *Location) UpdatedAt() time.Time { return l.updatedAt }

func (l *Location) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("location ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("location ID cannot be zero")
	}
	l.id = id
	return nil
}
