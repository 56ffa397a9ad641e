package valueobjects

import "fmt"

// Plan is the closed set of subscription plan identifiers. Quota limits and
// feature flags per plan live in the billing policy table, not here.
type Plan string

const (
	PlanFree  Plan = "FREE"
	PlanBasic Plan = "BASIC"
	PlanPro   Plan = "PRO"
)

var validPlans = map[Plan]bool{
	PlanFree:  true,
	PlanBasic: true,
	PlanPro:   true,
}

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	return validPlans[p]
}

func NewPlan(s string) (Plan, error) {
	p := Plan(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid plan: %s", s)
	}
	return p, nil
}
