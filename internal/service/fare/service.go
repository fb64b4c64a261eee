package farecalc

import (
	"context"

	"github.com/google/uuid"

	"github.com/voo-mobility/fare-service/config"
	"github.com/voo-mobility/fare-service/internal/domain/models"
	"github.com/voo-mobility/fare-service/internal/domain/types"
	"github.com/voo-mobility/fare-service/pkg/logger"
	wrap "github.com/voo-mobility/fare-service/pkg/logger/wrapper"
	"github.com/voo-mobility/fare-service/pkg/metrics"
)

const currency = "USD"

// Service quotes trips against the configured tariff. Per-request rate
// overrides replace individual constants; a request that carries conditions
// (surge, rain, weather, demand) goes through the extended formula with the
// configured adjustment coefficients.
type Service struct {
	calc    Calculator
	rates   models.RateConfig
	factors models.EnvironmentalFactors
	log     logger.Logger
}

func NewService(calc Calculator, cfg *config.Config, log logger.Logger) *Service {
	factors := cfg.Adjustments.Factors()
	if factors.Zero() {
		log.Info(context.Background(), "environmental adjustments disabled, extended quotes scale by surge only")
	}

	return &Service{
		calc:    calc,
		rates:   cfg.Rates.Rates(),
		factors: factors,
		log:     log,
	}
}

func (s *Service) QuoteTrip(ctx context.Context, trip models.TripRequest, overrides models.RateOverrides, withConditions bool) (models.FareQuote, error) {
	ctx = wrap.WithAction(ctx, "quote_trip")

	rates := overrides.Apply(s.rates)

	var (
		total float64
		err   error
		mode  = types.QuoteBasic
	)
	if withConditions {
		mode = types.QuoteAdjusted
		total, err = s.calc.QuoteAdjusted(trip, rates, s.factors)
	} else {
		total, err = s.calc.Quote(trip, rates)
	}
	if err != nil {
		return models.FareQuote{}, wrap.Error(ctx, err)
	}

	quote := models.FareQuote{
		ID:       uuid.New(),
		Total:    total,
		Currency: currency,
		Mode:     mode,
	}

	metrics.RecordQuote(config.ServiceName, string(mode), total)

	ctx = wrap.WithQuoteID(ctx, quote.ID.String())
	s.log.Debug(ctx, "trip quoted",
		"total", quote.Total,
		"mode", quote.Mode,
		"distance_miles", trip.DistanceMiles,
		"duration_min", trip.DurationMin,
	)

	return quote, nil
}
