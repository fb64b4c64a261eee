package models

// RateConfig holds the five fare constants. All values are non-negative and
// independently configurable; defaults mirror Voo's current tariff.
type RateConfig struct {
	BookingFee   float64
	BaseFare     float64
	WaitingRate  float64 // per minute
	DistanceRate float64 // per mile
	MinimumFare  float64
}

// RateOverrides carries per-request rate values. Nil fields keep the
// configured default.
type RateOverrides struct {
	BookingFee   *float64
	BaseFare     *float64
	WaitingRate  *float64
	DistanceRate *float64
	MinimumFare  *float64
}

// Apply merges the overrides into a base rate config.
func (o RateOverrides) Apply(base RateConfig) RateConfig {
	if o.BookingFee != nil {
		base.BookingFee = *o.BookingFee
	}
	if o.BaseFare != nil {
		base.BaseFare = *o.BaseFare
	}
	if o.WaitingRate != nil {
		base.WaitingRate = *o.WaitingRate
	}
	if o.DistanceRate != nil {
		base.DistanceRate = *o.DistanceRate
	}
	if o.MinimumFare != nil {
		base.MinimumFare = *o.MinimumFare
	}
	return base
}

// Reference points the environmental adjustments deviate around.
const (
	RefTempC    = 25.0
	RefHumidity = 50.0
	RefClouds   = 50.0
	RefWind     = 10.0
	RefPressure = 1013.0
	RefPickups  = 50.0
)

// EnvironmentalFactors are the per-dimension adjustment coefficients of the
// extended fare formula. Signed and typically small in magnitude; each one
// scales the fare proportionally to the deviation from its reference point.
// Rain is a flat additive-multiplicative factor applied when the rain flag
// is set.
type EnvironmentalFactors struct {
	Rain     float64
	Temp     float64
	Humidity float64
	Clouds   float64
	Wind     float64
	Pressure float64
	Pickups  float64
}

// Zero reports whether every coefficient is zero, i.e. the extended formula
// collapses to surge-only scaling.
func (f EnvironmentalFactors) Zero() bool {
	return f == EnvironmentalFactors{}
}
