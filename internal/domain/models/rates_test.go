package models

import "testing"

func TestEnvironmentalFactorsZero(t *testing.T) {
	if !(EnvironmentalFactors{}).Zero() {
		t.Fatalf("empty factors must report zero")
	}

	f := EnvironmentalFactors{Wind: 0.001}
	if f.Zero() {
		t.Fatalf("factors %+v must not report zero", f)
	}
}

func TestRateOverridesApply(t *testing.T) {
	base := RateConfig{
		BookingFee:   2.02,
		BaseFare:     2.45,
		WaitingRate:  0.17,
		DistanceRate: 0.73,
		MinimumFare:  5.0,
	}

	fee := 3.5
	min := 7.0
	got := RateOverrides{BookingFee: &fee, MinimumFare: &min}.Apply(base)

	if got.BookingFee != 3.5 || got.MinimumFare != 7.0 {
		t.Fatalf("overridden fields not applied: %+v", got)
	}
	if got.BaseFare != base.BaseFare || got.WaitingRate != base.WaitingRate || got.DistanceRate != base.DistanceRate {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}
