package models

import "github.com/voo-mobility/fare-service/internal/domain/types"

// TripRequest carries everything a single pricing request knows about the
// trip. It is assembled once at the boundary and never mutated afterwards.
type TripRequest struct {
	DistanceMiles float64
	DurationMin   float64

	Surge    float64 // демандовый множитель, >= 1
	Rain     bool
	TempC    float64
	Humidity int // percent, 0..100
	Clouds   int // percent, 0..100
	Wind     float64
	Pressure float64 // hPa

	PickupHourCount int // rides started in the pickup hour
	Hour            int // 0..24
	Day             int // 1..31

	RideName string
	CabType  types.CabType
}

// Valid reports whether the trip satisfies the core numeric contract.
// Range checks beyond this (humidity, hour, day, ...) belong to the
// request DTO layer.
func (t TripRequest) Valid() bool {
	return t.DistanceMiles > 0 && t.DurationMin > 0
}
