package domain

import "math"

// ScoreBreakdown exposes the four component scores behind a suitability
// score, each already clamped to [0, 100].
type ScoreBreakdown struct {
	Temperature int `json:"temperature"`
	Rainfall    int `json:"rainfall"`
	Soil        int `json:"soil"`
	PH          int `json:"ph"`
}

// ScoreSuitability rates how well a plot's attributes match a crop's
// requirement profile, 0-100. Pure and idempotent: identical inputs always
// produce the identical score.
func ScoreSuitability(attrs GeographicAttributes, cropID string) int {
	score, _ := ScoreSuitabilityBreakdown(attrs, cropID)
	return score
}

// ScoreSuitabilityBreakdown returns the overall score together with its
// four components. The overall score is the rounded mean of the components.
func ScoreSuitabilityBreakdown(attrs GeographicAttributes, cropID string) (int, ScoreBreakdown) {
	crop := LookupCrop(cropID)

	b := ScoreBreakdown{
		Temperature: rangeScore(float64(attrs.Temperature), float64(crop.TempMin), float64(crop.TempMax), 5),
		Rainfall:    rangeScore(float64(attrs.Rainfall), float64(crop.RainfallMin), float64(crop.RainfallMax), 0.1),
		Soil:        soilScore(attrs.SoilType, crop.PreferredSoil),
		PH:          rangeScore(attrs.SoilPH, crop.PHMin, crop.PHMax, 20),
	}

	mean := float64(b.Temperature+b.Rainfall+b.Soil+b.PH) / 4
	return int(math.Round(mean)), b
}

// rangeScore is 100 inside [lo, hi] and falls off linearly with distance
// from the range midpoint at the given penalty per unit, floored at 0.
func rangeScore(v, lo, hi, penalty float64) int {
	if v >= lo && v <= hi {
		return 100
	}
	mid := (lo + hi) / 2
	s := 100 - penalty*math.Abs(v-mid)
	if s < 0 {
		return 0
	}
	return int(math.Round(s))
}

// soilScore is 100 for a preferred soil and a flat 60 otherwise. The flat
// penalty mirrors the game: wrong soil hurts, but never disqualifies.
func soilScore(soil SoilType, preferred []SoilType) int {
	for _, p := range preferred {
		if soil == p {
			return 100
		}
	}
	return 60
}
