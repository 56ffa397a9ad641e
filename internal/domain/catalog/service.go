package catalog

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable offering with a fixed duration. The duration drives
// slot length in availability computation and the effective end time of
// appointments.
type Service struct {
	id              uint
	tenantID        uint
	name            string
	description     string
	durationMinutes int
	price           *decimal.Decimal
	createdAt       time.Time
	updatedAt       time.Time
}

func NewService(tenantID uint, name, description string, durationMinutes int, price *decimal.Decimal) (*Service, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("service duration must be positive")
	}
	if price != nil && price.IsNegative() {
		return nil, fmt.Errorf("service price cannot be negative")
	}

	now := time.Now()
	return &Service{
		tenantID:        tenantID,
		name:            name,
		description:     description,
		durationMinutes: durationMinutes,
		price:           price,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructService(
	id, tenantID uint,
	name, description string,
	durationMinutes int,
	price *decimal.Decimal,
	createdAt, updatedAt time.Time,
) (*Service, error) {
	if id == 0 {
		return nil, fmt.Errorf("service ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("service duration must be positive")
	}
	return &Service{
		id:              id,
		tenantID:        tenantID,
		name:            name,
		description:     description,
		durationMinutes: durationMinutes,
		price:           price,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (s *Service) ID() uint                 { return s.id }
func (s *Service) TenantID() uint           { return s.tenantID }
func (s *Service) Name() string             { return s.name }
func (s *Service) Description() string      { return s.description }
func (s *Service) DurationMinutes() int     { return s.durationMinutes }
func (s *Service) Price() *decimal.Decimal  { return s.price }
func (s *Service) CreatedAt() time.Time     { return s.createdAt }
func (s *Service) UpdatedAt() time.Time     { return s.updatedAt }
func (s *Service) Duration() time.Duration  { return time.Duration(s.durationMinutes) * time.Minute }

func (s *Service) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("service ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service ID cannot be zero")
	}
	s.id = id
	return nil
}
