package schedule

import (
	"fmt"
	"time"

	vo "slotly/internal/domain/schedule/valueobjects"
)

// Schedule is one recurring weekly block during which an employee is present
// at a location. Start and end are HH:mm wall-clock strings, deliberately not
// timezone-aware: the tenant's zone is applied when the block is projected
// onto a calendar date.
type Schedule struct {
	id         uint
	tenantID   uint
	employeeID uint
	locationID uint
	weekday    vo.Weekday
	startTime  string
	endTime    string
	blockType  vo.BlockType
	createdAt  time.Time
	updatedAt  time.Time
}

func NewSchedule(
	tenantID, employeeID, locationID uint,
	weekday vo.Weekday,
	startTime, endTime string,
	blockType vo.BlockType,
) (*Schedule, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if employeeID == 0 || locationID == 0 {
		return nil, fmt.Errorf("employee and location are required")
	}
	if !weekday.IsValid() {
		return nil, fmt.Errorf("invalid weekday: %s", weekday)
	}
	if !blockType.IsValid() {
		return nil, fmt.Errorf("invalid block type: %s", blockType)
	}

	start, err := ParseClock(startTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}
	if start >= end {
		return nil, fmt.Errorf("start time %s must be before end time %s", startTime, endTime)
	}

	now := time.Now()
	return &Schedule{
		tenantID:   tenantID,
		employeeID: employeeID,
		locationID: locationID,
		weekday:    weekday,
		startTime:  startTime,
		endTime:    endTime,
		blockType:  blockType,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructSchedule(
	id, tenantID, employeeID, locationID uint,
	weekday vo.Weekday,
	startTime, endTime string,
	blockType vo.BlockType,
	createdAt, updatedAt time.Time,
) (*Schedule, error) {
	if id == 0 {
		return nil, fmt.Errorf("schedule ID cannot be zero")
	}
	s, err := NewSchedule(tenantID, employeeID, locationID, weekday, startTime, endTime, blockType)
	if err != nil {
		return nil, err
	}
	s.id = id
	s.createdAt = createdAt
	s.updatedAt = updatedAt
	return s, nil
}

func (s *Schedule) ID() uint              { return s.id }
func (s *Schedule) TenantID() uint        { return s.tenantID }
func (s *Schedule) EmployeeID() uint      { return s.employeeID }
func (s *Schedule) LocationID() uint      { return s.locationID }
func (s *Schedule) Weekday() vo.Weekday   { return s.weekday }
func (s *Schedule) StartTime() string     { return s.startTime }
func (s *Schedule) EndTime() string       { return s.endTime }
func (s *Schedule) BlockType() vo.BlockType { return s.blockType }
func (s *Schedule) CreatedAt() time.Time  { return s.createdAt }
func (s *Schedule) UpdatedAt() time.Time  { return s.updatedAt }

func (s *Schedule) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("schedule ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("schedule ID cannot be zero")
	}
	s.id = id
	return nil
}

// StartMinutes returns the block start as minutes since midnight.
func (s *Schedule) StartMinutes() int {
	m, _ := ParseClock(s.startTime)
	return m
}

// EndMinutes returns the block end as minutes since midnight.
func (s *Schedule) EndMinutes() int {
	m, _ := ParseClock(s.endTime)
	return m
}

// Window projects the block onto a calendar day in the given zone, returning
// the absolute start and end instants.
func (s *Schedule) Window(year int, month time.Month, day int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, day, 0, 0, 0, 0, loc).Add(time.Duration(s.StartMinutes()) * time.Minute)
	end := time.Date(year, month, day, 0, 0, 0, 0, loc).Add(time.Duration(s.EndMinutes()) * time.Minute)
	return start, end
}

// Overlaps reports whether two blocks for the same (employee, location,
// weekday) overlap in wall-clock time. Touching boundaries do not overlap.
func (s *Schedule) Overlaps(other *Schedule) bool {
	if s.weekday != other.weekday {
		return false
	}
	return s.StartMinutes() < other.EndMinutes() && s.EndMinutes() > other.StartMinutes()
}

// ParseClock parses an HH:mm wall-clock string into minutes since midnight.
func ParseClock(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("malformed clock value %q", clock)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", clock)
	}
	return h*60 + m, nil
}
