package handler

import (
	"net/http"

	"github.com/voo-mobility/fare-service/pkg/logger"
	wrap "github.com/voo-mobility/fare-service/pkg/logger/wrapper"
)

type Health struct {
	serviceName string
	predictor   PredictService
	log         logger.Logger
}

func NewHealth(serviceName string, predictor PredictService, log logger.Logger) *Health {
	return &Health{
		serviceName: serviceName,
		predictor:   predictor,
		log:         log,
	}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Returns the health status of the service and whether the prediction model is loaded
// @Tags         Health
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (a *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "health_check")

	response := envelope{
		"status": "available",
		"system_info": map[string]any{
			"service-name":    a.serviceName,
			"predictor_ready": a.predictor.Ready(),
		},
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		a.log.Error(ctx, "healthcheck", err)
		return
	}
}
