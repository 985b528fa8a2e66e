// Package domain models synthetic farm geography and crop suitability.
//
// # Geography model
//
// [DeriveGeography] maps a WGS-84 coordinate to a bundle of plausible but
// synthetic environmental attributes. The model is a deterministic skeleton
// with deliberate random jitter layered on top:
//
//   - A latitude-band climate zone supplies baseline temperature, rainfall,
//     and moisture, plus a dominant soil type. Breakpoints on |lat|:
//     >=66.5 polar, >=60 subarctic, >=40 continental, >=30 subtropical,
//     >=23.5 tropical, otherwise equatorial.
//   - Elevation starts from a 200m base and adds falloff contributions from
//     four reference mountain ranges (Rockies, Alps, Himalayas, Andes) when
//     the query point is within 10 degrees of the range center.
//   - Coastal influence is a smooth 60-degree-periodic function of
//     longitude, not real shoreline data. It moderates temperature, boosts
//     rainfall and moisture, and can flip soil to sandy.
//   - Each numeric attribute gets uniform jitter drawn from an injected
//     [Source], and with 20% probability the derived soil type is replaced
//     by a uniformly random one. Two calls with the same coordinate are NOT
//     expected to agree; callers wanting stable attributes for a plot must
//     cache the first result (the surveyor's store does exactly this).
//
// Every bounded attribute is clamped to its documented range no matter what
// the intermediate arithmetic produces: moisture 20-100, water level 10-100,
// rainfall >= 100mm, elevation >= 0, soil pH 3.0-9.0.
//
// Randomness is injected rather than ambient so tests can pin the source:
// a source that always returns 0.5 yields zero jitter and never triggers
// the soil override, exposing the deterministic skeleton.
//
// # Suitability scoring
//
// [ScoreSuitability] compares derived attributes against a crop's static
// requirement profile and returns an integer 0-100: the rounded average of
// four component scores (temperature, rainfall, soil, pH). Temperature and
// pH fall off linearly with distance from the acceptable range's midpoint,
// rainfall falls off at a tenth of that rate, and soil is a flat 60 when
// the plot's soil is not in the crop's preferred list. Eight crop profiles
// are built in; an unrecognized crop identifier scores as corn.
//
// # Land surveys
//
// [ComposeSurvey] bundles attributes, score breakdown, and a yield estimate
// into a LandSurvey with a deterministic plot ID hashed from the rounded
// coordinate. Deterministic IDs make survey caching idempotent: resurveying
// the same plot hits the same row. See [GeneratePlotID].
package domain
