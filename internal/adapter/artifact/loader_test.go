package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/voo-mobility/fare-service/config"
	"github.com/voo-mobility/fare-service/internal/domain/types"
	"github.com/voo-mobility/fare-service/pkg/logger"
)

const (
	testModelBlob = `{"type":"linear","intercept":2,"coefficients":[1,0,0,0,0,0,0,0,0,0,0,0,0]}`
	testCabBlob   = `{"classes":["Lyft","Uber"]}`
	testRideBlob  = `{"classes":["Black","Lux","Shared","UberX"]}`
)

func artifactDir(t *testing.T, files map[string]string) config.ArtifactsConfig {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}

	return config.ArtifactsConfig{
		Dir:         dir,
		Model:       "rf_model.json",
		CabEncoder:  "cab_type_encoder.json",
		RideEncoder: "ride_name_encoder.json",
	}
}

func TestLoad(t *testing.T) {
	cfg := artifactDir(t, map[string]string{
		"rf_model.json":          testModelBlob,
		"cab_type_encoder.json":  testCabBlob,
		"ride_name_encoder.json": testRideBlob,
	})

	arts, err := Load(context.Background(), cfg, logger.InitLogger("test", logger.LevelError))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if arts.Model.NumFeatures() != 13 {
		t.Fatalf("model features = %d, want 13", arts.Model.NumFeatures())
	}
	if got := len(arts.RideEncoder.Classes()); got != 4 {
		t.Fatalf("ride classes = %d, want 4", got)
	}

	code, err := arts.CabEncoder.Transform("Uber")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 1 {
		t.Fatalf("cab code = %d, want 1", code)
	}
}

func TestLoad_MissingArtifact(t *testing.T) {
	// each of the three blobs is required
	complete := map[string]string{
		"rf_model.json":          testModelBlob,
		"cab_type_encoder.json":  testCabBlob,
		"ride_name_encoder.json": testRideBlob,
	}

	for missing := range complete {
		files := make(map[string]string)
		for name, content := range complete {
			if name != missing {
				files[name] = content
			}
		}

		cfg := artifactDir(t, files)
		_, err := Load(context.Background(), cfg, logger.InitLogger("test", logger.LevelError))
		if !errors.Is(err, types.ErrArtifactNotFound) {
			t.Fatalf("missing %s: want ErrArtifactNotFound, got %v", missing, err)
		}
	}
}

func TestLoad_MalformedArtifact(t *testing.T) {
	cfg := artifactDir(t, map[string]string{
		"rf_model.json":          `any old junk`,
		"cab_type_encoder.json":  testCabBlob,
		"ride_name_encoder.json": testRideBlob,
	})

	_, err := Load(context.Background(), cfg, logger.InitLogger("test", logger.LevelError))
	if !errors.Is(err, types.ErrArtifactInvalid) {
		t.Fatalf("want ErrArtifactInvalid, got %v", err)
	}
}
