package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// LandSurvey is the complete result the service returns for one plot:
// derived attributes, the suitability verdict for the requested crop, and
// optional place-name enrichment.
type LandSurvey struct {
	ID         string               `json:"id"`
	Geo        Geo                  `json:"geo"`
	CropID     string               `json:"crop_id"`
	Attributes GeographicAttributes `json:"attributes"`
	Score      int                  `json:"score"`
	Breakdown  ScoreBreakdown       `json:"breakdown"`
	Estimate   YieldEstimate        `json:"estimate"`

	// Place enrichment fields, populated when geocoding is enabled.
	PlaceName        string `json:"place_name,omitempty"`
	FormattedAddress string `json:"formatted_address,omitempty"`
	PlaceSource      string `json:"place_source,omitempty"` // "reverse", "original", "failed"

	SurveyedAt time.Time `json:"surveyed_at"`
}

// GeneratePlotID produces a deterministic ID from the coordinate rounded to
// four decimals (~11m). Deterministic IDs make survey caching idempotent:
// resurveying the same plot reads the same row instead of re-rolling the
// jittered attributes.
func GeneratePlotID(lat, lng float64) string {
	input := fmt.Sprintf("%.4f|%.4f", lat, lng)
	hash := sha256.Sum256([]byte(input))
	return "plot-" + hex.EncodeToString(hash[:8])
}

// ComposeSurvey assembles a LandSurvey from already-derived attributes: it
// resolves the crop, scores it, runs the yield estimate, and stamps the
// result. Attribute derivation stays separate so cached attributes can be
// rescored for any crop without re-rolling jitter.
func ComposeSurvey(lat, lng float64, attrs GeographicAttributes, cropID string) LandSurvey {
	crop := LookupCrop(cropID)
	score, breakdown := ScoreSuitabilityBreakdown(attrs, crop.ID)

	return LandSurvey{
		ID:         GeneratePlotID(lat, lng),
		Geo:        Geo{Lat: lat, Lng: lng},
		CropID:     crop.ID,
		Attributes: attrs,
		Score:      score,
		Breakdown:  breakdown,
		Estimate:   EstimateYield(attrs, crop.ID),
		SurveyedAt: clock.Now(),
	}
}
