package domain

// Source supplies the uniform random draws the geography model consumes.
// Implementations must return values in [0, 1).
//
// The model never touches an ambient random source; injecting the source
// lets production wire real entropy while tests pin the draws. A source
// fixed at 0.5 produces zero jitter on every attribute.
type Source interface {
	Float64() float64
}

// jitter maps a draw in [0, 1) to a uniform value in [-amp, +amp].
func jitter(rng Source, amp float64) float64 {
	return (rng.Float64()*2 - 1) * amp
}
