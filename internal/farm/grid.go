// Package farm expands a land survey into the nine-cell farm grid the game
// renders. Each cell carries a small, deterministic perturbation of the
// plot's attributes so neighboring cells look related but not identical.
package farm

import (
	"hash/fnv"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/agrovista/farm-geo-service/internal/domain"
)

// Side is the farm grid's edge length: the game board is 3x3.
const Side = 3

// Cell is one simulated farm cell.
type Cell struct {
	Row           int     `json:"row"`
	Col           int     `json:"col"`
	Temperature   int     `json:"temperature"`
	MoistureLevel int     `json:"moisture_level"`
	SoilPH        float64 `json:"soil_ph"`
	Score         int     `json:"score"`
	HealthPct     int     `json:"health_pct"`
	ExpectedYield float64 `json:"expected_yield"`
}

// Grid is the nine-cell farm derived from one survey.
type Grid struct {
	PlotID string     `json:"plot_id"`
	CropID string     `json:"crop_id"`
	Cells  []Cell     `json:"cells"` // row-major, len Side*Side
	Geo    domain.Geo `json:"geo"`
}

// Per-cell perturbation amplitudes. Small against the plot-level jitter so
// the grid reads as one farm, not nine climates.
const (
	tempAmp     = 2.0 // degrees C
	moistureAmp = 8.0 // percent
	phAmp       = 0.4
)

// BuildGrid derives the nine cells from a survey. Deterministic: the noise
// layers are seeded from the plot ID, so the same survey always produces
// the same grid.
func BuildGrid(survey domain.LandSurvey) Grid {
	seed := gridSeed(survey.ID)
	tempNoise := opensimplex.NewNormalized(seed)
	moistNoise := opensimplex.NewNormalized(seed + 1)
	phNoise := opensimplex.NewNormalized(seed + 2)

	cells := make([]Cell, 0, Side*Side)
	for row := range Side {
		for col := range Side {
			x := float64(col) * 0.7
			y := float64(row) * 0.7

			attrs := survey.Attributes
			attrs.Temperature += centered(tempNoise.Eval2(x, y), tempAmp)
			attrs.MoistureLevel = clampInt(attrs.MoistureLevel+centered(moistNoise.Eval2(x, y), moistureAmp), 20, 100)
			attrs.SoilPH = clampPH(attrs.SoilPH + (phNoise.Eval2(x, y)-0.5)*2*phAmp)

			score := domain.ScoreSuitability(attrs, survey.CropID)
			estimate := domain.EstimateYield(attrs, survey.CropID)

			cells = append(cells, Cell{
				Row:           row,
				Col:           col,
				Temperature:   attrs.Temperature,
				MoistureLevel: attrs.MoistureLevel,
				SoilPH:        attrs.SoilPH,
				Score:         score,
				HealthPct:     estimate.HealthPct,
				ExpectedYield: estimate.ExpectedYield,
			})
		}
	}

	return Grid{
		PlotID: survey.ID,
		CropID: survey.CropID,
		Cells:  cells,
		Geo:    survey.Geo,
	}
}

// gridSeed hashes the plot ID into a noise seed.
func gridSeed(plotID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(plotID)) //nolint:errcheck // fnv never fails
	return int64(h.Sum64())
}

// centered maps a normalized noise value in [0,1] to a rounded offset in
// [-amp, +amp].
func centered(n, amp float64) int {
	return int(math.Round((n - 0.5) * 2 * amp))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampPH(v float64) float64 {
	v = math.Round(v*10) / 10
	if v < 3 {
		return 3
	}
	if v > 9 {
		return 9
	}
	return v
}
