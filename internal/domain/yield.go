package domain

import "math"

// YieldEstimate is the game's simulated outcome for a plot and crop: a farm
// health percentage and an expected yield. A weighted-average heuristic,
// not a trained model, despite what the game's UI calls it.
type YieldEstimate struct {
	HealthPct     int     `json:"health_pct"`     // 0-100
	ExpectedYield float64 `json:"expected_yield"` // in YieldUnit, one decimal
	YieldUnit     string  `json:"yield_unit"`
}

// EstimateYield derives health and expected yield from a suitability score
// and the plot's water balance. Health weights suitability at half and
// splits the rest between moisture and water level; yield scales the crop's
// base yield by the suitability score. Deterministic given its inputs.
func EstimateYield(attrs GeographicAttributes, cropID string) YieldEstimate {
	crop := LookupCrop(cropID)
	score := ScoreSuitability(attrs, cropID)

	health := 0.5*float64(score) + 0.25*float64(attrs.MoistureLevel) + 0.25*float64(attrs.WaterLevel)
	healthPct := int(math.Round(clampFloat(health, 0, 100)))

	expected := crop.BaseYield * float64(score) / 100
	expected = math.Round(expected*10) / 10

	return YieldEstimate{
		HealthPct:     healthPct,
		ExpectedYield: expected,
		YieldUnit:     crop.YieldUnit,
	}
}
