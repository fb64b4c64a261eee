package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/voo-mobility/fare-service/config"
	"github.com/voo-mobility/fare-service/internal/adapter/artifact"
	"github.com/voo-mobility/fare-service/internal/adapter/http/server"
	"github.com/voo-mobility/fare-service/internal/domain/types"
	farecalc "github.com/voo-mobility/fare-service/internal/service/fare"
	"github.com/voo-mobility/fare-service/internal/service/predict"
	"github.com/voo-mobility/fare-service/pkg/logger"
)

type App struct {
	httpServer *server.API

	cfg config.Config
	log logger.Logger
}

// NewApplication loads the pricing artifacts and wires the fare and predict
// services behind the HTTP server. Missing or corrupt artifacts are not
// fatal: the service starts with the predict action disabled and reports the
// condition per request.
func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	artifacts, err := artifact.Load(ctx, cfg.Artifacts, log)
	if err != nil {
		// Missing or corrupt artifacts degrade the predict action, they
		// never take the fare endpoints down with them.
		reason := "unusable"
		if errors.Is(err, types.ErrArtifactNotFound) {
			reason = "missing"
		}
		log.Warn(ctx, "pricing artifacts "+reason+", predictions disabled", "error", err.Error(), "dir", cfg.Artifacts.Dir)
		artifacts = nil
	}

	fareService := farecalc.NewService(farecalc.New(), &cfg, log)
	predictService := predict.New(artifacts, log)

	httpServer, err := server.New(cfg, fareService, predictService, log)
	if err != nil {
		log.Error(ctx, "failed to setup http server", err)
		return nil, err
	}

	return &App{
		httpServer: httpServer,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.httpServer.Run(ctx, errCh)
	defer func() {
		a.close(ctx)
		a.log.Info(ctx, "pricing service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	a.log.Info(ctx, "pricing service started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		a.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (a *App) close(ctx context.Context) {
	if a.httpServer != nil {
		if err := a.httpServer.Stop(ctx); err != nil {
			a.log.Warn(ctx, "failed to gracefully close http server", "error", err.Error())
		}
	}
}
