package farm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovista/farm-geo-service/internal/domain"
)

func testSurvey() domain.LandSurvey {
	attrs := domain.GeographicAttributes{
		ClimateZone:   domain.ZoneContinental,
		SoilType:      domain.SoilLoam,
		WaterLevel:    68,
		MoistureLevel: 57,
		Temperature:   14,
		Rainfall:      618,
		SoilPH:        6.8,
		Elevation:     200,
	}
	return domain.ComposeSurvey(42.0308, -93.6319, attrs, "corn")
}

func TestBuildGrid_NineCells(t *testing.T) {
	grid := BuildGrid(testSurvey())

	require.Len(t, grid.Cells, 9)
	assert.Equal(t, "Corn Production", grid.CropID)

	// Row-major layout.
	for i, cell := range grid.Cells {
		assert.Equal(t, i/Side, cell.Row)
		assert.Equal(t, i%Side, cell.Col)
	}
}

func TestBuildGrid_Deterministic(t *testing.T) {
	survey := testSurvey()

	a := BuildGrid(survey)
	b := BuildGrid(survey)
	assert.Equal(t, a, b, "same survey, same grid")

	other := survey
	other.ID = "plot-other"
	c := BuildGrid(other)
	assert.NotEqual(t, a.Cells, c.Cells, "different plot seeds different noise")
}

func TestBuildGrid_CellsStayNearPlot(t *testing.T) {
	survey := testSurvey()
	grid := BuildGrid(survey)

	for _, cell := range grid.Cells {
		assert.InDelta(t, survey.Attributes.Temperature, cell.Temperature, tempAmp)
		assert.InDelta(t, survey.Attributes.MoistureLevel, cell.MoistureLevel, moistureAmp)
		assert.InDelta(t, survey.Attributes.SoilPH, cell.SoilPH, phAmp+0.05) // rounding slack

		assert.GreaterOrEqual(t, cell.MoistureLevel, 20)
		assert.LessOrEqual(t, cell.MoistureLevel, 100)
		assert.GreaterOrEqual(t, cell.SoilPH, 3.0)
		assert.LessOrEqual(t, cell.SoilPH, 9.0)
		assert.GreaterOrEqual(t, cell.Score, 0)
		assert.LessOrEqual(t, cell.Score, 100)
		assert.GreaterOrEqual(t, cell.HealthPct, 0)
		assert.LessOrEqual(t, cell.HealthPct, 100)
	}
}

func TestBuildGrid_BoundsHoldAtExtremes(t *testing.T) {
	attrs := domain.GeographicAttributes{
		ClimateZone:   domain.ZonePolar,
		SoilType:      domain.SoilRocky,
		WaterLevel:    10,
		MoistureLevel: 20,
		Temperature:   -40,
		Rainfall:      100,
		SoilPH:        3.0,
		Elevation:     0,
	}
	survey := domain.ComposeSurvey(80, 170, attrs, "rice")

	grid := BuildGrid(survey)
	for _, cell := range grid.Cells {
		assert.GreaterOrEqual(t, cell.MoistureLevel, 20)
		assert.GreaterOrEqual(t, cell.SoilPH, 3.0)
	}
}
