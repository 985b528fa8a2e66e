package domain

import "strings"

// CropRequirement is one crop's static suitability profile.
type CropRequirement struct {
	ID            string     `json:"id"`   // canonical game identifier, e.g. "Corn Production"
	Crop          string     `json:"crop"` // short name used for lookup aliases
	TempMin       int        `json:"temp_min"`
	TempMax       int        `json:"temp_max"`
	RainfallMin   int        `json:"rainfall_min"`
	RainfallMax   int        `json:"rainfall_max"`
	PreferredSoil []SoilType `json:"preferred_soil"`
	PHMin         float64    `json:"ph_min"`
	PHMax         float64    `json:"ph_max"`
	BaseYield     float64    `json:"base_yield"` // tonnes/ha at a perfect score
	YieldUnit     string     `json:"yield_unit"`
}

// cropTable holds the eight built-in crop profiles in catalog order.
// Corn is first and doubles as the fallback for unrecognized identifiers.
var cropTable = []CropRequirement{
	{
		ID: "Corn Production", Crop: "corn",
		TempMin: 15, TempMax: 30, RainfallMin: 600, RainfallMax: 1200,
		PreferredSoil: []SoilType{SoilLoam, SoilClay},
		PHMin:         6.0, PHMax: 7.0,
		BaseYield: 9.5, YieldUnit: "t/ha",
	},
	{
		ID: "Wheat Production", Crop: "wheat",
		TempMin: 10, TempMax: 25, RainfallMin: 400, RainfallMax: 900,
		PreferredSoil: []SoilType{SoilLoam, SoilClay},
		PHMin:         6.0, PHMax: 7.5,
		BaseYield: 6.8, YieldUnit: "t/ha",
	},
	{
		ID: "Rice Production", Crop: "rice",
		TempMin: 20, TempMax: 35, RainfallMin: 1200, RainfallMax: 2500,
		PreferredSoil: []SoilType{SoilClay},
		PHMin:         5.5, PHMax: 7.0,
		BaseYield: 7.2, YieldUnit: "t/ha",
	},
	{
		ID: "Coffee Production", Crop: "coffee",
		TempMin: 18, TempMax: 28, RainfallMin: 1200, RainfallMax: 2200,
		PreferredSoil: []SoilType{SoilLoam},
		PHMin:         5.0, PHMax: 6.5,
		BaseYield: 2.4, YieldUnit: "t/ha",
	},
	{
		ID: "Soybean Production", Crop: "soybean",
		TempMin: 15, TempMax: 30, RainfallMin: 500, RainfallMax: 1100,
		PreferredSoil: []SoilType{SoilLoam, SoilClay},
		PHMin:         6.0, PHMax: 7.0,
		BaseYield: 3.3, YieldUnit: "t/ha",
	},
	{
		ID: "Tomato Production", Crop: "tomato",
		TempMin: 18, TempMax: 30, RainfallMin: 400, RainfallMax: 800,
		PreferredSoil: []SoilType{SoilLoam, SoilSandy},
		PHMin:         6.0, PHMax: 7.0,
		BaseYield: 45, YieldUnit: "t/ha",
	},
	{
		ID: "Potato Production", Crop: "potato",
		TempMin: 10, TempMax: 22, RainfallMin: 400, RainfallMax: 800,
		PreferredSoil: []SoilType{SoilLoam, SoilSandy},
		PHMin:         5.0, PHMax: 6.5,
		BaseYield: 20, YieldUnit: "t/ha",
	},
	{
		ID: "Dairy Farming", Crop: "dairy",
		TempMin: 5, TempMax: 25, RainfallMin: 600, RainfallMax: 1400,
		PreferredSoil: []SoilType{SoilLoam, SoilClay, SoilPeat},
		PHMin:         5.5, PHMax: 7.0,
		BaseYield: 8.5, YieldUnit: "t DM/ha",
	},
}

// Crops returns the full crop catalog in stable order.
func Crops() []CropRequirement {
	out := make([]CropRequirement, len(cropTable))
	copy(out, cropTable)
	return out
}

// LookupCrop resolves a crop identifier to its requirement profile.
// Matching is case-insensitive against both the canonical game identifier
// ("Corn Production") and the bare crop word ("corn"). Anything else — the
// free-text case the game's crop selector can produce — falls back to corn.
func LookupCrop(cropID string) CropRequirement {
	needle := strings.ToLower(strings.TrimSpace(cropID))
	for _, c := range cropTable {
		if needle == strings.ToLower(c.ID) || needle == c.Crop {
			return c
		}
	}
	return cropTable[0]
}
