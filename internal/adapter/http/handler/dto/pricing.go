package dto

import (
	"github.com/google/uuid"

	"github.com/voo-mobility/fare-service/internal/domain/models"
	"github.com/voo-mobility/fare-service/internal/domain/types"
	"github.com/voo-mobility/fare-service/pkg/validator"
)

// QuoteRequest asks for a deterministic fare. Rate fields are optional and
// fall back to the configured tariff; the optional conditions block switches
// the calculation to the environment-adjusted formula.
type QuoteRequest struct {
	DistanceMiles float64 `json:"distance_miles"`
	DurationMin   float64 `json:"duration_minutes"`

	BookingFee   *float64 `json:"booking_fee,omitempty"`
	BaseFare     *float64 `json:"base_fare,omitempty"`
	WaitingRate  *float64 `json:"waiting_rate,omitempty"`
	DistanceRate *float64 `json:"distance_rate,omitempty"`
	MinimumFare  *float64 `json:"minimum_fare,omitempty"`

	Conditions *Conditions `json:"conditions,omitempty"`
}

// Conditions carries the surge and environment inputs of the extended
// formula.
type Conditions struct {
	Surge           float64 `json:"surge_multiplier"`
	Rain            bool    `json:"rain"`
	TempC           float64 `json:"temperature_c"`
	Humidity        int     `json:"humidity_percent"`
	Clouds          int     `json:"cloud_percent"`
	Wind            float64 `json:"wind_speed"`
	Pressure        float64 `json:"pressure_hpa"`
	PickupHourCount int     `json:"pickup_hour_count"`
}

func (r *QuoteRequest) Validate(v *validator.Validator) {
	v.Check(r.DistanceMiles > 0, "distance_miles", "must be greater than zero")
	v.Check(r.DurationMin > 0, "duration_minutes", "must be greater than zero")

	checkRate(v, r.BookingFee, "booking_fee")
	checkRate(v, r.BaseFare, "base_fare")
	checkRate(v, r.WaitingRate, "waiting_rate")
	checkRate(v, r.DistanceRate, "distance_rate")
	checkRate(v, r.MinimumFare, "minimum_fare")

	if r.Conditions != nil {
		r.Conditions.validate(v)
	}
}

func checkRate(v *validator.Validator, value *float64, key string) {
	if value != nil {
		v.Check(*value >= 0, key, "must not be negative")
	}
}

func (c *Conditions) validate(v *validator.Validator) {
	v.Check(c.Surge >= 1, "conditions.surge_multiplier", "must be at least 1")
	v.Check(c.Humidity >= 0 && c.Humidity <= 100, "conditions.humidity_percent", "must be between 0 and 100")
	v.Check(c.Clouds >= 0 && c.Clouds <= 100, "conditions.cloud_percent", "must be between 0 and 100")
	v.Check(c.Wind >= 0, "conditions.wind_speed", "must not be negative")
	v.Check(c.Pressure > 0, "conditions.pressure_hpa", "must be greater than zero")
	v.Check(c.PickupHourCount >= 0, "conditions.pickup_hour_count", "must not be negative")
}

func (r *QuoteRequest) ToModel() (models.TripRequest, models.RateOverrides) {
	trip := models.TripRequest{
		DistanceMiles: r.DistanceMiles,
		DurationMin:   r.DurationMin,
		Surge:         1,
	}
	if c := r.Conditions; c != nil {
		trip.Surge = c.Surge
		trip.Rain = c.Rain
		trip.TempC = c.TempC
		trip.Humidity = c.Humidity
		trip.Clouds = c.Clouds
		trip.Wind = c.Wind
		trip.Pressure = c.Pressure
		trip.PickupHourCount = c.PickupHourCount
	}

	overrides := models.RateOverrides{
		BookingFee:   r.BookingFee,
		BaseFare:     r.BaseFare,
		WaitingRate:  r.WaitingRate,
		DistanceRate: r.DistanceRate,
		MinimumFare:  r.MinimumFare,
	}

	return trip, overrides
}

type QuoteResponse struct {
	QuoteID  uuid.UUID `json:"quote_id"`
	Total    float64   `json:"total"`
	Currency string    `json:"currency"`
	Mode     string    `json:"mode"`
}

// PredictRequest asks the trained model for a price estimate.
type PredictRequest struct {
	DistanceMiles   float64 `json:"distance_miles"`
	DurationMin     float64 `json:"duration_minutes"`
	Surge           float64 `json:"surge_multiplier"`
	Rain            bool    `json:"rain"`
	TempC           float64 `json:"temperature_c"`
	Humidity        int     `json:"humidity_percent"`
	Clouds          int     `json:"cloud_percent"`
	Wind            float64 `json:"wind_speed"`
	Pressure        float64 `json:"pressure_hpa"`
	PickupHourCount int     `json:"pickup_hour_count"`
	Hour            int     `json:"hour"`
	Day             int     `json:"day"`
	RideName        string  `json:"ride_name"`
	CabType         string  `json:"cab_type"`
}

func (r *PredictRequest) Validate(v *validator.Validator) {
	v.Check(r.DistanceMiles > 0, "distance_miles", "must be greater than zero")
	v.Check(r.DurationMin > 0, "duration_minutes", "must be greater than zero")
	v.Check(r.Surge >= 1, "surge_multiplier", "must be at least 1")
	v.Check(r.Humidity >= 0 && r.Humidity <= 100, "humidity_percent", "must be between 0 and 100")
	v.Check(r.Clouds >= 0 && r.Clouds <= 100, "cloud_percent", "must be between 0 and 100")
	v.Check(r.Wind >= 0, "wind_speed", "must not be negative")
	v.Check(r.Pressure > 0, "pressure_hpa", "must be greater than zero")
	v.Check(r.PickupHourCount >= 0, "pickup_hour_count", "must not be negative")
	v.Check(r.Hour >= 0 && r.Hour <= 24, "hour", "must be between 0 and 24")
	v.Check(r.Day >= 1 && r.Day <= 31, "day", "must be between 1 and 31")

	v.Check(r.RideName != "", "ride_name", "must be provided")
	v.Check(r.CabType != "", "cab_type", "must be provided")
	if r.CabType != "" {
		v.Check(validator.PermittedValue(r.CabType, "Uber", "Lyft"), "cab_type", "must be one of Uber or Lyft")
	}
}

func (r *PredictRequest) ToModel() models.TripRequest {
	return models.TripRequest{
		DistanceMiles:   r.DistanceMiles,
		DurationMin:     r.DurationMin,
		Surge:           r.Surge,
		Rain:            r.Rain,
		TempC:           r.TempC,
		Humidity:        r.Humidity,
		Clouds:          r.Clouds,
		Wind:            r.Wind,
		Pressure:        r.Pressure,
		PickupHourCount: r.PickupHourCount,
		Hour:            r.Hour,
		Day:             r.Day,
		RideName:        r.RideName,
		CabType:         types.CabType(r.CabType),
	}
}

type PredictResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
	Currency       string  `json:"currency"`
}

// OptionsResponse lists the categorical vocabularies the predictor accepts.
type OptionsResponse struct {
	RideNames []string `json:"ride_names"`
	CabTypes  []string `json:"cab_types"`
}
