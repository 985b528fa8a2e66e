package domain

import "math"

// SoilType is one of the five soil classes the model can assign.
type SoilType string

const (
	SoilClay  SoilType = "clay"
	SoilSandy SoilType = "sandy"
	SoilLoam  SoilType = "loam"
	SoilRocky SoilType = "rocky"
	SoilPeat  SoilType = "peat"
)

// allSoilTypes indexes the soil classes for the random override draw.
var allSoilTypes = [5]SoilType{SoilClay, SoilSandy, SoilLoam, SoilRocky, SoilPeat}

// GeographicAttributes is the synthetic environment bundle for one plot.
type GeographicAttributes struct {
	ClimateZone   ClimateZone `json:"climate_zone"`
	SoilType      SoilType    `json:"soil_type"`
	WaterLevel    int         `json:"water_level"`    // 10-100
	MoistureLevel int         `json:"moisture_level"` // 20-100
	Temperature   int         `json:"temperature"`    // degrees C, may be negative
	Rainfall      int         `json:"rainfall"`       // mm/year, >= 100
	SoilPH        float64     `json:"soil_ph"`        // 3.0-9.0, one decimal place
	Elevation     int         `json:"elevation"`      // meters, >= 0
}

// mountainRange is a reference point contributing elevation within a
// 10-degree falloff radius in degree space.
type mountainRange struct {
	lat, lng float64
	peak     float64 // meters
}

var mountainRanges = [4]mountainRange{
	{lat: 39.0, lng: -106.0, peak: 4400}, // Rockies
	{lat: 46.0, lng: 10.0, peak: 4800},   // Alps
	{lat: 28.0, lng: 84.0, peak: 8800},   // Himalayas
	{lat: -20.0, lng: -68.0, peak: 6900}, // Andes
}

// DeriveGeography maps a coordinate to synthetic environmental attributes.
//
// rng feeds the jitter draws; soilNoise enables the 20% random soil-type
// override (deliberate noise in the upstream game, kept toggleable so tests
// and reproducible tooling can switch it off). Draw order is fixed:
// elevation, temperature, rainfall, moisture, water, soil override
// (probability draw then pick), pH — so a seeded source replays exactly.
func DeriveGeography(lat, lng float64, rng Source, soilNoise bool) (GeographicAttributes, error) {
	if err := ValidateCoordinate(lat, lng); err != nil {
		return GeographicAttributes{}, err
	}

	zone := ClassifyClimate(lat)
	profile := zoneProfiles[zone]

	elevation := deriveElevation(lat, lng, rng)
	coastal := coastalInfluence(lng)

	// Lapse rate 0.6 C per 100m, plus mild coastal moderation.
	tempF := profile.baseTemp - 0.006*elevation + 3*coastal + jitter(rng, 5)
	temperature := int(math.Round(tempF))

	rainF := profile.baseRainfall + 300*coastal - 200*(1-coastal) + jitter(rng, 200)
	if elevation > 1000 {
		rainF += 0.5 * elevation // orographic lift
	}
	if rainF < 100 {
		rainF = 100
	}
	rainfall := int(math.Round(rainF))

	moistF := profile.baseMoisture + 0.02*(float64(rainfall)-800) + 15*coastal + jitter(rng, 10)
	if elevation > 500 {
		moistF -= 0.01 * elevation
	}
	moisture := int(math.Round(clampFloat(moistF, 20, 100)))

	waterF := 60 + 0.03*(float64(rainfall)-800) + 20*riverProximity(lat, lng) + 10*coastal + jitter(rng, 12.5)
	if elevation < 100 {
		waterF += 20 // lowland groundwater
	} else {
		waterF -= 0.02 * elevation
	}
	water := int(math.Round(clampFloat(waterF, 10, 100)))

	soil := deriveSoil(profile.dominantSoil, elevation, coastal, rainfall, temperature)
	if soilNoise && rng.Float64() < 0.2 {
		idx := int(rng.Float64() * float64(len(allSoilTypes)))
		if idx >= len(allSoilTypes) {
			idx = len(allSoilTypes) - 1
		}
		soil = allSoilTypes[idx]
	}

	ph := basePH(soil) + jitter(rng, 1)
	ph = clampFloat(math.Round(ph*10)/10, 3, 9)

	return GeographicAttributes{
		ClimateZone:   zone,
		SoilType:      soil,
		WaterLevel:    water,
		MoistureLevel: moisture,
		Temperature:   temperature,
		Rainfall:      rainfall,
		SoilPH:        ph,
		Elevation:     int(math.Round(elevation)),
	}, nil
}

// deriveElevation sums mountain-range falloff contributions over a 200m base.
// Each range contributes peak*(1 - d/10) when the degree-space distance d to
// its center is under 10. Clamped to >= 0 after jitter.
func deriveElevation(lat, lng float64, rng Source) float64 {
	elevation := 200.0
	for _, r := range mountainRanges {
		dLat := lat - r.lat
		dLng := lng - r.lng
		d := math.Sqrt(dLat*dLat + dLng*dLng)
		if d < 10 {
			elevation += r.peak * (1 - d/10)
		}
	}
	elevation += jitter(rng, 200)
	if elevation < 0 {
		elevation = 0
	}
	return elevation
}

// coastalInfluence approximates nearness to a coastline as a smooth
// 60-degree-periodic function of longitude, in [0, 1]. Longitudes at a
// period boundary read as fully coastal; mid-period reads as deep inland.
// A deliberate simplification — no real shoreline data is consulted.
func coastalInfluence(lng float64) float64 {
	return 0.5 * (1 + math.Cos(lng*math.Pi/30))
}

// riverProximity is a fixed sinusoidal pseudo-river field over the globe.
func riverProximity(lat, lng float64) float64 {
	return math.Sin(lat*0.1) * math.Cos(lng*0.1)
}

// deriveSoil applies the override ladder on top of the zone's dominant soil.
// First match wins: high elevation, strong coastal influence, hot and wet,
// cold.
func deriveSoil(dominant SoilType, elevation, coastal float64, rainfall, temperature int) SoilType {
	switch {
	case elevation > 2000:
		return SoilRocky
	case coastal > 0.7:
		return SoilSandy
	case rainfall > 2000 && temperature > 20:
		return SoilClay
	case temperature < 5:
		return SoilPeat
	default:
		return dominant
	}
}

// basePH returns the characteristic pH for a soil type before jitter.
func basePH(soil SoilType) float64 {
	switch soil {
	case SoilPeat:
		return 4.5
	case SoilSandy:
		return 6.5
	case SoilClay:
		return 7.2
	case SoilRocky:
		return 7.8
	default: // loam
		return 6.8
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
