package mappers

import (
	"time"

	"gorm.io/datatypes"

	"slotly/internal/domain/tenant"
	vo "slotly/internal/domain/tenant/valueobjects"
	"slotly/internal/infrastructure/persistence/models"
)

// TenantMapper handles the conversion between Tenant domain entities and
// persistence models.
type TenantMapper interface {
	ToModel(t *tenant.Tenant) *models.TenantModel
	ToDomain(model *models.TenantModel) (*tenant.Tenant, error)
}

type TenantMapperImpl struct{}

func NewTenantMapper() TenantMapper {
	return &TenantMapperImpl{}
}

func (m *TenantMapperImpl) ToModel(t *tenant.Tenant) *models.TenantModel {
	model := &models.TenantModel{
		ID:           t.ID(),
		PublicID:     t.PublicID(),
		Subdomain:    t.Subdomain(),
		CustomDomain: t.CustomDomain(),
		Status:       t.Status().String(),
		Plan:         t.Plan().String(),
		CreatedAt:    t.CreatedAt().UnixMilli(),
		UpdatedAt:    t.UpdatedAt().UnixMilli(),
	}

	if t.TrialEndsAt() != nil {
		ends := t.TrialEndsAt().UnixMilli()
		model.TrialEndsAt = &ends
	}

	features := datatypes.JSONMap{}
	for k, v := range t.Features() {
		features[k] = v
	}
	model.Features = features

	model.Settings = datatypes.JSONMap(t.Settings())

	return model
}

func (m *TenantMapperImpl) ToDomain(model *models.TenantModel) (*tenant.Tenant, error) {
	status, err := vo.NewTenantStatus(model.Status)
	if err != nil {
		return nil, err
	}
	plan, err := vo.NewPlan(model.Plan)
	if err != nil {
		return nil, err
	}

	var trialEndsAt *time.Time
	if model.TrialEndsAt != nil {
		t := time.UnixMilli(*model.TrialEndsAt)
		trialEndsAt = &t
	}

	features := make(map[string]bool, len(model.Features))
	for k, v := range model.Features {
		if b, ok := v.(bool); ok {
			features[k] = b
		}
	}

	settings := map[string]interface{}(model.Settings)

	return tenant.ReconstructTenant(
		model.ID,
		model.PublicID,
		model.Subdomain,
		model.CustomDomain,
		status,
		plan,
		trialEndsAt,
		features,
		settings,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
