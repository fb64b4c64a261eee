package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/voo-mobility/fare-service/config"
	"github.com/voo-mobility/fare-service/internal/adapter/http/handler"
	"github.com/voo-mobility/fare-service/internal/adapter/http/middleware"
	"github.com/voo-mobility/fare-service/pkg/logger"
	wrap "github.com/voo-mobility/fare-service/pkg/logger/wrapper"
)

const serverIPAddress = "%s:%s"

type API struct {
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	pricing *handler.Pricing
	health  *handler.Health
}

func New(
	cfg config.Config,
	fareService handler.FareService,
	predictService handler.PredictService,
	log logger.Logger,
) (*API, error) {
	if fareService == nil || predictService == nil {
		return nil, errors.New("fare and predict services are required")
	}

	routes := &handlers{
		pricing: handler.NewPricing(fareService, predictService, log),
		health:  handler.NewHealth(config.ServiceName, predictService, log),
	}

	mid := middleware.NewMiddleware(log)
	addr := fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Server.Port)

	mux := http.NewServeMux()
	setupRoutes(mux, routes)

	api := &API{
		routes: routes,
		m:      mid,
		addr:   addr,
		cfg:    cfg,
		log:    log,
	}

	api.server = &http.Server{
		Addr:    addr,
		Handler: api.withMiddleware(mux),
	}

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies the middleware chain to the mux
func (a *API) withMiddleware(mux *http.ServeMux) http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Metrics(config.ServiceName)(mux))))
}
