package farecalc

import (
	"math"

	"github.com/voo-mobility/fare-service/internal/domain/models"
	"github.com/voo-mobility/fare-service/internal/domain/types"
)

type Calculator interface {
	Base(distanceMiles, durationMin float64, rates models.RateConfig) float64
	Quote(trip models.TripRequest, rates models.RateConfig) (float64, error)
	QuoteAdjusted(trip models.TripRequest, rates models.RateConfig, f models.EnvironmentalFactors) (float64, error)
}

type CalculatorImpl struct{}

func New() *CalculatorImpl {
	return &CalculatorImpl{}
}

// Base computes the pre-booking-fee trip fare:
// max(baseFare + waitingRate*duration + distance*distanceRate, minimumFare).
func (c *CalculatorImpl) Base(distanceMiles, durationMin float64, rates models.RateConfig) float64 {
	fare := rates.BaseFare + rates.WaitingRate*durationMin + distanceMiles*rates.DistanceRate
	return math.Max(fare, rates.MinimumFare)
}

// Quote computes the basic fare: trip fare plus booking fee, rounded to two
// decimals.
func (c *CalculatorImpl) Quote(trip models.TripRequest, rates models.RateConfig) (float64, error) {
	if !trip.Valid() {
		return 0, types.ErrInvalidTrip
	}

	total := c.Base(trip.DistanceMiles, trip.DurationMin, rates) + rates.BookingFee
	return round2(total), nil
}

// QuoteAdjusted computes the extended fare. The multiplication order below is
// the contract: surge first, then rain, then each weather and demand
// adjustment around its reference point, then the booking fee, then rounding.
// Nothing re-applies the minimum fare after the adjustments, so a strongly
// negative coefficient combination can legally price below the minimum or
// below zero.
func (c *CalculatorImpl) QuoteAdjusted(trip models.TripRequest, rates models.RateConfig, f models.EnvironmentalFactors) (float64, error) {
	if !trip.Valid() {
		return 0, types.ErrInvalidTrip
	}

	fare := c.Base(trip.DistanceMiles, trip.DurationMin, rates)

	fare *= trip.Surge
	if trip.Rain {
		fare *= 1 + f.Rain
	}
	fare *= 1 + (trip.TempC-models.RefTempC)*f.Temp
	fare *= 1 + (float64(trip.Humidity)-models.RefHumidity)*f.Humidity
	fare *= 1 + (float64(trip.Clouds)-models.RefClouds)*f.Clouds
	fare *= 1 + (trip.Wind-models.RefWind)*f.Wind
	fare *= 1 + (trip.Pressure-models.RefPressure)*f.Pressure
	fare *= 1 + (float64(trip.PickupHourCount)-models.RefPickups)*f.Pickups

	return round2(fare + rates.BookingFee), nil
}

// round2 rounds half away from zero to two decimals, so 7.125 quotes as 7.13.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
