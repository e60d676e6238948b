// Package scenario stress-tests company fundamentals and forecasts under
// deterministic macroeconomic scenarios. Adjustment factors are fixed and
// calibrated to moderate historical episodes, never sampled.
package scenario

import (
	"fmt"
	"strings"

	"RiskScope/internal/domain/models"
)

// Supported scenario keys.
const (
	KeyHighInflation  = "high_inflation"
	KeyRecession      = "recession"
	KeyRateHike       = "rate_hike"
	KeyGrowthSlowdown = "growth_slowdown"
)

// ValidScenarios lists the supported scenario keys in a stable order.
var ValidScenarios = []string{KeyHighInflation, KeyRecession, KeyRateHike, KeyGrowthSlowdown}

// Fractional factors apply multiplicatively to a base value; the _add suffix
// marks an absolute percentage-point addition.
var scenarios = map[string]models.ScenarioAssumptions{
	KeyHighInflation: {
		Key:   KeyHighInflation,
		Label: "High Inflation",
		Description: "Elevated input costs and consumer price pressures compress margins " +
			"and reduce real purchasing power, dampening revenue growth.",
		RevenueGrowthImpact:   -0.03,
		MarginImpact:          -0.05,
		ConfidenceFactor:      0.90,
		MovementImpact:        -0.02,
		RiskAmplifier:         1.15,
		InterestCostImpactAdd: 0.01,
	},
	KeyRecession: {
		Key:   KeyRecession,
		Label: "Recession",
		Description: "A macroeconomic contraction leading to broad revenue declines, " +
			"earnings compression, and heightened credit risk.",
		RevenueGrowthImpact:   -0.10,
		MarginImpact:          -0.08,
		ConfidenceFactor:      0.75,
		MovementImpact:        -0.08,
		RiskAmplifier:         1.40,
		InterestCostImpactAdd: 0.02,
	},
	KeyRateHike: {
		Key:   KeyRateHike,
		Label: "Interest Rate Hike",
		Description: "Aggressive central bank rate increases raise borrowing costs, " +
			"pressuring leveraged companies and compressing valuation multiples.",
		RevenueGrowthImpact:   -0.02,
		MarginImpact:          -0.02,
		ConfidenceFactor:      0.88,
		MovementImpact:        -0.03,
		RiskAmplifier:         1.30,
		InterestCostImpactAdd: 0.04,
	},
	KeyGrowthSlowdown: {
		Key:   KeyGrowthSlowdown,
		Label: "Growth Slowdown",
		Description: "A decelerating economic environment where revenue growth moderates, " +
			"valuation multiples compress, and earnings expectations reset lower.",
		RevenueGrowthImpact:   -0.04,
		MarginImpact:          -0.02,
		ConfidenceFactor:      0.92,
		MovementImpact:        -0.03,
		RiskAmplifier:         1.10,
		InterestCostImpactAdd: 0.005,
	},
}

// UnknownScenarioError reports a scenario name outside the supported set.
type UnknownScenarioError struct {
	Name string
}

func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("Unknown scenario '%s'. Supported scenarios: %s",
		e.Name, strings.Join(ValidScenarios, ", "))
}

// Get returns the assumptions for a named scenario. The name is
// case-insensitive and spaces map to underscores.
func Get(name string) (models.ScenarioAssumptions, error) {
	key := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(name)), " ", "_")
	s, ok := scenarios[key]
	if !ok {
		return models.ScenarioAssumptions{}, &UnknownScenarioError{Name: name}
	}
	return s, nil
}

// All returns every supported scenario's assumptions in stable key order.
func All() []models.ScenarioAssumptions {
	out := make([]models.ScenarioAssumptions, 0, len(ValidScenarios))
	for _, k := range ValidScenarios {
		out = append(out, scenarios[k])
	}
	return out
}
