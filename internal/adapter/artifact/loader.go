package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/voo-mobility/fare-service/config"
	"github.com/voo-mobility/fare-service/internal/domain/types"
	"github.com/voo-mobility/fare-service/pkg/logger"
	wrap "github.com/voo-mobility/fare-service/pkg/logger/wrapper"
	"github.com/voo-mobility/fare-service/pkg/metrics"
)

// Artifacts bundles the three externally trained blobs the predictor depends
// on. Loaded once per process and held immutably afterwards; a fresh Load is
// the only way to pick up new artifacts.
type Artifacts struct {
	Model       Model
	CabEncoder  *LabelEncoder
	RideEncoder *LabelEncoder
}

// Load reads the model and both encoders from the configured directory.
// A missing or unreadable blob fails with ErrArtifactNotFound; a blob that
// does not decode fails with ErrArtifactInvalid.
func Load(ctx context.Context, cfg config.ArtifactsConfig, log logger.Logger) (*Artifacts, error) {
	ctx = wrap.WithAction(ctx, "load_artifacts")

	modelData, err := readBlob(cfg, cfg.Model)
	metrics.RecordArtifactLoad(config.ServiceName, "model", err)
	if err != nil {
		return nil, err
	}

	cabData, err := readBlob(cfg, cfg.CabEncoder)
	metrics.RecordArtifactLoad(config.ServiceName, "cab_encoder", err)
	if err != nil {
		return nil, err
	}

	rideData, err := readBlob(cfg, cfg.RideEncoder)
	metrics.RecordArtifactLoad(config.ServiceName, "ride_encoder", err)
	if err != nil {
		return nil, err
	}

	model, err := decodeModel(modelData)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", cfg.Model, err)
	}

	cabEncoder, err := decodeEncoder(cabData)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", cfg.CabEncoder, err)
	}

	rideEncoder, err := decodeEncoder(rideData)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", cfg.RideEncoder, err)
	}

	log.Info(ctx, "pricing artifacts loaded",
		"dir", cfg.Dir,
		"model_features", model.NumFeatures(),
		"cab_classes", len(cabEncoder.Classes()),
		"ride_classes", len(rideEncoder.Classes()),
	)

	return &Artifacts{
		Model:       model,
		CabEncoder:  cabEncoder,
		RideEncoder: rideEncoder,
	}, nil
}

func readBlob(cfg config.ArtifactsConfig, name string) ([]byte, error) {
	data, err := os.ReadFile(cfg.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrArtifactNotFound, name)
		}
		return nil, fmt.Errorf("%w: %s: %v", types.ErrArtifactNotFound, name, err)
	}
	return data, nil
}
