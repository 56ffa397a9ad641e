// Package planconfig loads the static plan policy table from YAML at
// startup. The table maps each plan id to its quota limits and feature
// flags; tenants only carry the plan id.
package planconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"slotly/internal/domain/billing"
	vo "slotly/internal/domain/tenant/valueobjects"
	"slotly/internal/shared/logger"
)

type Table struct {
	policies map[vo.Plan]billing.PlanPolicy
	logger   logger.Interface
}

type planFile struct {
	Plans map[string]billing.PlanPolicy `yaml:"plans"`
}

// Load reads the plan policy table from path. Missing file falls back to the
// built-in defaults so development setups work without extra files.
func Load(path string, log logger.Interface) (*Table, error) {
	t := &Table{
		policies: defaultPolicies(),
		logger:   log,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnw("plans file not found, using built-in defaults", "path", path)
			return t, nil
		}
		return nil, fmt.Errorf("failed to read plans file: %w", err)
	}

	var parsed planFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse plans file: %w", err)
	}

	for name, policy := range parsed.Plans {
		plan, err := vo.NewPlan(name)
		if err != nil {
			return nil, fmt.Errorf("plans file: %w", err)
		}
		if policy.Features == nil {
			policy.Features = make(map[string]bool)
		}
		t.policies[plan] = policy
	}

	log.Infow("plan policy table loaded", "path", path, "plans", len(t.policies))
	return t, nil
}

// PolicyFor resolves a plan to its policy, failing closed to the FREE policy
// for unknown plan ids.
func (t *Table) PolicyFor(plan vo.Plan) billing.PlanPolicy {
	if policy, ok := t.policies[plan]; ok {
		return policy
	}
	t.logger.Warnw("unknown plan id, falling back to FREE policy", "plan", plan.String())
	return t.policies[vo.PlanFree]
}

func defaultPolicies() map[vo.Plan]billing.PlanPolicy {
	return map[vo.Plan]billing.PlanPolicy{
		vo.PlanFree: {
			Limits: billing.Limits{
				Locations:            1,
				Employees:            3,
				Services:             5,
				AppointmentsPerMonth: 50,
				APIRequestsPerDay:    1000,
			},
			Features: map[string]bool{
				"custom_domain": false,
				"sms_reminders": false,
			},
		},
		vo.PlanBasic: {
			Limits: billing.Limits{
				Locations:            3,
				Employees:            10,
				Services:             25,
				AppointmentsPerMonth: 500,
				APIRequestsPerDay:    10000,
			},
			Features: map[string]bool{
				"custom_domain": true,
				"sms_reminders": false,
			},
		},
		vo.PlanPro: {
			// Zero limits mean unrestricted.
			Limits: billing.Limits{},
			Features: map[string]bool{
				"custom_domain": true,
				"sms_reminders": true,
			},
		},
	}
}
