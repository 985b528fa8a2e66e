package domain

// ClimateZone is a latitude-band classification driving the baseline
// environmental values of the geography model.
type ClimateZone string

const (
	ZonePolar       ClimateZone = "polar"
	ZoneSubarctic   ClimateZone = "subarctic"
	ZoneContinental ClimateZone = "continental"
	ZoneSubtropical ClimateZone = "subtropical"
	ZoneTropical    ClimateZone = "tropical"
	ZoneEquatorial  ClimateZone = "equatorial"
)

// zoneProfile holds the fixed baseline values for one climate zone.
type zoneProfile struct {
	baseTemp     float64 // degrees C
	baseRainfall float64 // mm/year
	baseMoisture float64 // percent
	dominantSoil SoilType
}

// zoneProfiles is the static climate table. Values are synthetic averages,
// not climatology; the continental row anchors the model's reference
// scenario (15 C, 800mm — roughly the US corn belt).
var zoneProfiles = map[ClimateZone]zoneProfile{
	ZonePolar:       {baseTemp: -12, baseRainfall: 250, baseMoisture: 40, dominantSoil: SoilRocky},
	ZoneSubarctic:   {baseTemp: -2, baseRainfall: 450, baseMoisture: 50, dominantSoil: SoilPeat},
	ZoneContinental: {baseTemp: 15, baseRainfall: 800, baseMoisture: 60, dominantSoil: SoilLoam},
	ZoneSubtropical: {baseTemp: 21, baseRainfall: 1000, baseMoisture: 65, dominantSoil: SoilClay},
	ZoneTropical:    {baseTemp: 25, baseRainfall: 1400, baseMoisture: 70, dominantSoil: SoilSandy},
	ZoneEquatorial:  {baseTemp: 28, baseRainfall: 2200, baseMoisture: 80, dominantSoil: SoilClay},
}

// ClassifyClimate maps a latitude to its climate zone by absolute value.
// Breakpoints are inclusive lower bounds: 66.5 is polar, 66.49 is subarctic.
func ClassifyClimate(lat float64) ClimateZone {
	abs := lat
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 66.5:
		return ZonePolar
	case abs >= 60:
		return ZoneSubarctic
	case abs >= 40:
		return ZoneContinental
	case abs >= 30:
		return ZoneSubtropical
	case abs >= 23.5:
		return ZoneTropical
	default:
		return ZoneEquatorial
	}
}

// BaseTemperature returns the zone's baseline temperature in degrees C.
func (z ClimateZone) BaseTemperature() float64 { return zoneProfiles[z].baseTemp }

// BaseRainfall returns the zone's baseline rainfall in mm/year.
func (z ClimateZone) BaseRainfall() float64 { return zoneProfiles[z].baseRainfall }
