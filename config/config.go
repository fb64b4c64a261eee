package config

import (
	"fmt"
	"path/filepath"

	"github.com/voo-mobility/fare-service/internal/domain/models"
	"github.com/voo-mobility/fare-service/pkg/configparser"
)

// ServiceName identifies this process in logs and metric labels.
const ServiceName = "pricing-service"

// Config contains all configuration variables of the application
type (
	Config struct {
		Server      ServerConfig
		Log         LogConfig
		Artifacts   ArtifactsConfig
		Rates       RatesConfig
		Adjustments AdjustmentsConfig
	}

	ServerConfig struct {
		Port string `env:"SERVER_PORT" default:"3002"`
	}

	LogConfig struct {
		Level string `env:"LOG_LEVEL" default:"DEBUG"`
	}

	// ArtifactsConfig points at the three serialized blobs the predictor
	// needs. Filenames are fixed by convention with the training pipeline.
	ArtifactsConfig struct {
		Dir         string `env:"ARTIFACTS_DIR" default:"./artifacts"`
		Model       string `env:"ARTIFACTS_MODEL" default:"rf_model.json"`
		CabEncoder  string `env:"ARTIFACTS_CAB_ENCODER" default:"cab_type_encoder.json"`
		RideEncoder string `env:"ARTIFACTS_RIDE_ENCODER" default:"ride_name_encoder.json"`
	}

	// RatesConfig — тарифные константы Voo по умолчанию.
	RatesConfig struct {
		BookingFee   float64 `env:"RATES_BOOKING_FEE" default:"2.02"`
		BaseFare     float64 `env:"RATES_BASE_FARE" default:"2.45"`
		WaitingRate  float64 `env:"RATES_WAITING_RATE" default:"0.17"`
		DistanceRate float64 `env:"RATES_DISTANCE_RATE" default:"0.73"`
		MinimumFare  float64 `env:"RATES_MINIMUM_FARE" default:"5.0"`
	}

	// AdjustmentsConfig holds the environmental coefficients of the extended
	// fare formula. All default to zero so plain deployments price exactly
	// like the basic formula.
	AdjustmentsConfig struct {
		Rain     float64 `env:"ADJUSTMENTS_RAIN" default:"0"`
		Temp     float64 `env:"ADJUSTMENTS_TEMP" default:"0"`
		Humidity float64 `env:"ADJUSTMENTS_HUMIDITY" default:"0"`
		Clouds   float64 `env:"ADJUSTMENTS_CLOUDS" default:"0"`
		Wind     float64 `env:"ADJUSTMENTS_WIND" default:"0"`
		Pressure float64 `env:"ADJUSTMENTS_PRESSURE" default:"0"`
		Pickups  float64 `env:"ADJUSTMENTS_PICKUPS" default:"0"`
	}
)

// Rates converts the configured constants into the domain rate model.
func (c RatesConfig) Rates() models.RateConfig {
	return models.RateConfig{
		BookingFee:   c.BookingFee,
		BaseFare:     c.BaseFare,
		WaitingRate:  c.WaitingRate,
		DistanceRate: c.DistanceRate,
		MinimumFare:  c.MinimumFare,
	}
}

// Factors converts the configured coefficients into the domain factor model.
func (c AdjustmentsConfig) Factors() models.EnvironmentalFactors {
	return models.EnvironmentalFactors{
		Rain:     c.Rain,
		Temp:     c.Temp,
		Humidity: c.Humidity,
		Clouds:   c.Clouds,
		Wind:     c.Wind,
		Pressure: c.Pressure,
		Pickups:  c.Pickups,
	}
}

// Path returns the full path of one artifact blob inside the artifact dir.
func (c ArtifactsConfig) Path(name string) string {
	return filepath.Join(c.Dir, name)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	return cfg, nil
}
