package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/voo-mobility/fare-service/config"
	"github.com/voo-mobility/fare-service/pkg/logger"
)

func testConfig(dir string) config.Config {
	var cfg config.Config
	cfg.Server.Port = "0"
	cfg.Artifacts = config.ArtifactsConfig{
		Dir:         dir,
		Model:       "rf_model.json",
		CabEncoder:  "cab_type_encoder.json",
		RideEncoder: "ride_name_encoder.json",
	}
	return cfg
}

func TestNewApplication_MissingArtifactsDegrade(t *testing.T) {
	cfg := testConfig(t.TempDir())

	app, err := NewApplication(context.Background(), cfg, logger.InitLogger("test", logger.LevelError))
	if err != nil {
		t.Fatalf("missing artifacts must not abort startup: %v", err)
	}
	if app == nil {
		t.Fatalf("application not constructed")
	}
}

func TestNewApplication_CorruptArtifactsDegrade(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"rf_model.json":          "{not json",
		"cab_type_encoder.json":  `{"classes":["Lyft","Uber"]}`,
		"ride_name_encoder.json": `{"classes":["UberX"]}`,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	app, err := NewApplication(context.Background(), testConfig(dir), logger.InitLogger("test", logger.LevelError))
	if err != nil {
		t.Fatalf("corrupt artifacts must not abort startup: %v", err)
	}
	if app == nil {
		t.Fatalf("application not constructed")
	}
}
