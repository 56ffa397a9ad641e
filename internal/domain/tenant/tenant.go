package tenant

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	vo "slotly/internal/domain/tenant/valueobjects"
)

// subdomains are lowercase letters, digits and hyphens, no leading/trailing
// hyphen
var subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

const (
	// SettingRescheduleLimitHours overrides the default reschedule window.
	SettingRescheduleLimitHours = "rescheduleTimeLimitHours"
	// SettingTimezone is the tenant's IANA zone; slot generation happens in
	// this zone's wall-clock day.
	SettingTimezone = "timezone"

	DefaultRescheduleLimitHours = 2
)

// Tenant is an isolated business account, the root of all data partitioning.
type Tenant struct {
	id           uint
	publicID     string
	subdomain    string
	customDomain *string
	status       vo.TenantStatus
	plan         vo.Plan
	trialEndsAt  *time.Time
	features     map[string]bool
	settings     map[string]interface{}
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTenant(subdomain string, plan vo.Plan) (*Tenant, error) {
	if !subdomainPattern.MatchString(subdomain) {
		return nil, fmt.Errorf("invalid subdomain: %q", subdomain)
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan: %q", plan)
	}

	now := time.Now()
	return &Tenant{
		publicID:  uuid.NewString(),
		subdomain: subdomain,
		status:    vo.StatusTrial,
		plan:      plan,
		features:  make(map[string]bool),
		settings:  make(map[string]interface{}),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTenant(
	id uint,
	publicID string,
	subdomain string,
	customDomain *string,
	status vo.TenantStatus,
	plan vo.Plan,
	trialEndsAt *time.Time,
	features map[string]bool,
	settings map[string]interface{},
	createdAt, updatedAt time.Time,
) (*Tenant, error) {
	if id == 0 {
		return nil, fmt.Errorf("tenant ID cannot be zero")
	}
	if publicID == "" {
		return nil, fmt.Errorf("tenant public ID is required")
	}
	if subdomain == "" {
		return nil, fmt.Errorf("subdomain is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid tenant status: %s", status)
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan: %s", plan)
	}

	if features == nil {
		features = make(map[string]bool)
	}
	if settings == nil {
		settings = make(map[string]interface{})
	}

	return &Tenant{
		id:           id,
		publicID:     publicID,
		subdomain:    subdomain,
		customDomain: customDomain,
		status:       status,
		plan:         plan,
		trialEndsAt:  trialEndsAt,
		features:     features,
		settings:     settings,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *Tenant) ID() uint {
	return t.id
}

func (t *Tenant) PublicID() string {
	return t.publicID
}

func (t *Tenant) Subdomain() string {
	return t.subdomain
}

func (t *Tenant) CustomDomain() *string {
	return t.customDomain
}

func (t *Tenant) Status() vo.TenantStatus {
	return t.status
}

func (t *Tenant) Plan() vo.Plan {
	return t.plan
}

func (t *Tenant) TrialEndsAt() *time.Time {
	return t.trialEndsAt
}

func (t *Tenant) Features() map[string]bool {
	featuresCopy := make(map[string]bool, len(t.features))
	for k, v := range t.features {
		featuresCopy[k] = v
	}
	return featuresCopy
}

func (t *Tenant) Settings() map[string]interface{} {
	settingsCopy := make(map[string]interface{}, len(t.settings))
	for k, v := range t.settings {
		settingsCopy[k] = v
	}
	return settingsCopy
}

func (t *Tenant) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tenant) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Tenant) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tenant ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tenant ID cannot be zero")
	}
	t.id = id
	return nil
}

// HasFeature reports whether the named feature flag is enabled.
func (t *Tenant) HasFeature(name string) bool {
	return t.features[name]
}

// TrialExpired reports whether the tenant's trial ended before now.
// Tenants without a trial end date never expire.
func (t *Tenant) TrialExpired(now time.Time) bool {
	return t.trialEndsAt != nil && t.trialEndsAt.Before(now)
}

// RescheduleLimitHours returns the minimum lead time in hours required before
// an appointment may be rescheduled or cancelled.
func (t *Tenant) RescheduleLimitHours() int {
	if raw, ok := t.settings[SettingRescheduleLimitHours]; ok {
		switch v := raw.(type) {
		case int:
			if v > 0 {
				return v
			}
		case float64:
			if v > 0 {
				return int(v)
			}
		}
	}
	return DefaultRescheduleLimitHours
}

// Location returns the tenant's time zone. Settings without a usable zone
// fall back to UTC.
func (t *Tenant) Location() *time.Location {
	if raw, ok := t.settings[SettingTimezone]; ok {
		if name, ok := raw.(string); ok && name != "" {
			if loc, err := time.LoadLocation(name); err == nil {
				return loc
			}
		}
	}
	return time.UTC
}

// ValidSubdomain reports whether s is a well-formed tenant subdomain.
func ValidSubdomain(s string) bool {
	return subdomainPattern.MatchString(s)
}
