package domain

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always returns the same draw. Pinned at 0.5 it produces zero
// jitter, exposing the deterministic skeleton of the model.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// scriptSource replays a fixed sequence of draws, then repeats the last one.
type scriptSource struct {
	draws []float64
	i     int
}

func (s *scriptSource) Float64() float64 {
	if s.i >= len(s.draws) {
		return s.draws[len(s.draws)-1]
	}
	v := s.draws[s.i]
	s.i++
	return v
}

func TestClassifyClimate(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		zone ClimateZone
	}{
		{"north pole", 90, ZonePolar},
		{"polar boundary inclusive", 66.5, ZonePolar},
		{"south polar boundary inclusive", -66.5, ZonePolar},
		{"just below polar", 66.49, ZoneSubarctic},
		{"subarctic boundary", 60, ZoneSubarctic},
		{"continental", 42.0308, ZoneContinental},
		{"continental boundary", 40, ZoneContinental},
		{"subtropical", 35, ZoneSubtropical},
		{"tropical", 25, ZoneTropical},
		{"tropic boundary", 23.5, ZoneTropical},
		{"equatorial", 10, ZoneEquatorial},
		{"equator", 0, ZoneEquatorial},
		{"southern mirrors northern", -42, ZoneContinental},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.zone, ClassifyClimate(tt.lat))
		})
	}
}

func TestDeriveGeography_IowaWithoutJitter(t *testing.T) {
	// Corn-belt reference point. A source pinned at 0.5 zeroes every jitter
	// draw and never triggers the soil override, so the skeleton values are
	// exact.
	attrs, err := DeriveGeography(42.0308, -93.6319, fixedSource(0.5), true)
	require.NoError(t, err)

	assert.Equal(t, ZoneContinental, attrs.ClimateZone)
	assert.Equal(t, 15.0, attrs.ClimateZone.BaseTemperature())
	assert.Equal(t, 800.0, attrs.ClimateZone.BaseRainfall())

	assert.Equal(t, 200, attrs.Elevation) // no mountain range within 10 degrees
	assert.Equal(t, 14, attrs.Temperature)
	assert.Equal(t, 618, attrs.Rainfall)
	assert.Equal(t, 57, attrs.MoistureLevel)
	assert.Equal(t, 68, attrs.WaterLevel)
	assert.Equal(t, SoilLoam, attrs.SoilType)
	assert.Equal(t, 6.8, attrs.SoilPH)
}

func TestDeriveGeography_BoundsHoldEverywhere(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) //nolint:gosec // reproducible test sweep

	for lat := -90.0; lat <= 90.0; lat += 7.3 {
		for lng := -180.0; lng <= 180.0; lng += 11.7 {
			attrs, err := DeriveGeography(lat, lng, rng, true)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, attrs.MoistureLevel, 20, "lat=%v lng=%v", lat, lng)
			assert.LessOrEqual(t, attrs.MoistureLevel, 100, "lat=%v lng=%v", lat, lng)
			assert.GreaterOrEqual(t, attrs.WaterLevel, 10, "lat=%v lng=%v", lat, lng)
			assert.LessOrEqual(t, attrs.WaterLevel, 100, "lat=%v lng=%v", lat, lng)
			assert.GreaterOrEqual(t, attrs.Rainfall, 100, "lat=%v lng=%v", lat, lng)
			assert.GreaterOrEqual(t, attrs.Elevation, 0, "lat=%v lng=%v", lat, lng)
			assert.GreaterOrEqual(t, attrs.SoilPH, 3.0, "lat=%v lng=%v", lat, lng)
			assert.LessOrEqual(t, attrs.SoilPH, 9.0, "lat=%v lng=%v", lat, lng)
			assert.Contains(t, allSoilTypes[:], attrs.SoilType, "lat=%v lng=%v", lat, lng)
		}
	}
}

func TestDeriveGeography_MountainElevation(t *testing.T) {
	// Dead center of the Himalayas reference point: 200 base + full peak.
	attrs, err := DeriveGeography(28.0, 84.0, fixedSource(0.5), false)
	require.NoError(t, err)

	assert.Equal(t, 9000, attrs.Elevation)
	assert.Equal(t, SoilRocky, attrs.SoilType, "elevation over 2000m forces rocky soil")
	assert.Equal(t, 7.8, attrs.SoilPH)
	assert.Negative(t, attrs.Temperature, "lapse rate over 9km of elevation")
}

func TestDeriveGeography_SoilNoiseOverride(t *testing.T) {
	// Draw order: elevation, temperature, rainfall, moisture, water,
	// override probability, override pick, pH.
	src := &scriptSource{draws: []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.1, 0.9, 0.5}}

	attrs, err := DeriveGeography(42.0308, -93.6319, src, true)
	require.NoError(t, err)

	assert.Equal(t, SoilPeat, attrs.SoilType, "0.1 < 0.2 triggers the override, 0.9 picks the last soil class")
	assert.Equal(t, 4.5, attrs.SoilPH, "pH keys off the overridden soil")
}

func TestDeriveGeography_SoilNoiseDisabled(t *testing.T) {
	// Same script, but with noise off the 0.1 draw is never consumed.
	src := &scriptSource{draws: []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.1, 0.9, 0.5}}

	attrs, err := DeriveGeography(42.0308, -93.6319, src, false)
	require.NoError(t, err)

	assert.Equal(t, SoilLoam, attrs.SoilType)
}

func TestDeriveGeography_CoastalSoil(t *testing.T) {
	// Longitude on a 60-degree boundary reads as fully coastal.
	attrs, err := DeriveGeography(10.0, 0.0, fixedSource(0.5), false)
	require.NoError(t, err)

	assert.Equal(t, SoilSandy, attrs.SoilType)
}

func TestDeriveGeography_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
	}{
		{"latitude too high", 90.01, 0},
		{"latitude too low", -91, 0},
		{"longitude too high", 0, 180.5},
		{"longitude too low", 0, -181},
		{"NaN latitude", math.NaN(), 0},
		{"infinite longitude", 0, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveGeography(tt.lat, tt.lng, fixedSource(0.5), false)
			require.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestCoastalInfluence(t *testing.T) {
	assert.InDelta(t, 1.0, coastalInfluence(0), 1e-9)
	assert.InDelta(t, 1.0, coastalInfluence(60), 1e-9)
	assert.InDelta(t, 1.0, coastalInfluence(-120), 1e-9)
	assert.InDelta(t, 0.0, coastalInfluence(30), 1e-9)
	assert.InDelta(t, 0.0, coastalInfluence(-90), 1e-9)

	for lng := -180.0; lng <= 180.0; lng += 1.0 {
		v := coastalInfluence(lng)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
