package predict

import (
	"context"
	"fmt"

	"github.com/voo-mobility/fare-service/config"
	"github.com/voo-mobility/fare-service/internal/adapter/artifact"
	"github.com/voo-mobility/fare-service/internal/domain/models"
	"github.com/voo-mobility/fare-service/internal/domain/types"
	"github.com/voo-mobility/fare-service/pkg/logger"
	wrap "github.com/voo-mobility/fare-service/pkg/logger/wrapper"
	"github.com/voo-mobility/fare-service/pkg/metrics"
)

// featureCount is the width of the vector the trained model was fitted on.
const featureCount = 13

type Service interface {
	Predict(ctx context.Context, trip models.TripRequest) (models.Prediction, error)
	RideNames() ([]string, error)
	Ready() bool
}

// ServiceImpl queries an externally trained regression model. The artifacts
// are injected once at construction; when they could not be loaded the
// service stays up but every prediction fails with ErrArtifactNotFound.
type ServiceImpl struct {
	artifacts *artifact.Artifacts
	log       logger.Logger
}

func New(artifacts *artifact.Artifacts, log logger.Logger) *ServiceImpl {
	if artifacts != nil && artifacts.Model.NumFeatures() != featureCount {
		log.Warn(context.Background(), "model feature count differs from the expected trip layout",
			"model_features", artifacts.Model.NumFeatures(),
			"expected", featureCount,
		)
	}

	return &ServiceImpl{
		artifacts: artifacts,
		log:       log,
	}
}

// Ready reports whether the model artifacts are available.
func (s *ServiceImpl) Ready() bool {
	return s.artifacts != nil
}

// RideNames returns the ride vocabulary the model was trained on.
func (s *ServiceImpl) RideNames() ([]string, error) {
	if s.artifacts == nil {
		return nil, types.ErrArtifactNotFound
	}
	return s.artifacts.RideEncoder.Classes(), nil
}

// Predict encodes the categorical inputs, assembles the feature vector and
// asks the model for a single price estimate. The result is the raw model
// output; rounding is left to the presentation layer.
func (s *ServiceImpl) Predict(ctx context.Context, trip models.TripRequest) (pred models.Prediction, err error) {
	ctx = wrap.WithAction(ctx, "predict_price")
	defer func() { metrics.RecordPrediction(config.ServiceName, err) }()

	if s.artifacts == nil {
		return models.Prediction{}, wrap.Error(ctx, types.ErrArtifactNotFound)
	}
	if !trip.Valid() {
		return models.Prediction{}, wrap.Error(ctx, types.ErrInvalidTrip)
	}

	cabCode, err := s.artifacts.CabEncoder.Transform(trip.CabType.String())
	if err != nil {
		return models.Prediction{}, wrap.Error(ctx, fmt.Errorf("cab type: %w", err))
	}

	rideCode, err := s.artifacts.RideEncoder.Transform(trip.RideName)
	if err != nil {
		return models.Prediction{}, wrap.Error(ctx, fmt.Errorf("ride name: %w", err))
	}

	price, err := s.artifacts.Model.Predict(featureVector(trip, cabCode, rideCode))
	if err != nil {
		return models.Prediction{}, wrap.Error(ctx, fmt.Errorf("model prediction: %w", err))
	}

	s.log.Debug(ctx, "price predicted",
		"cab_type", trip.CabType,
		"ride_name", trip.RideName,
		"price", price,
	)

	return models.Prediction{Price: price}, nil
}

// featureVector lays the trip out in the exact column order the model was
// trained with. Reordering anything here silently invalidates predictions.
func featureVector(trip models.TripRequest, cabCode, rideCode int) []float64 {
	rain := 0.0
	if trip.Rain {
		rain = 1.0
	}

	return []float64{
		trip.DistanceMiles,
		float64(cabCode),
		trip.Surge,
		float64(rideCode),
		trip.TempC,
		float64(trip.Clouds),
		trip.Pressure,
		rain,
		float64(trip.Humidity),
		trip.Wind,
		float64(trip.PickupHourCount),
		float64(trip.Hour),
		float64(trip.Day),
	}
}
