package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/voo-mobility/fare-service/docs"
)

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes *handlers) {
	// System health
	mux.HandleFunc("GET /health", routes.health.HealthCheck)

	// Pricing
	mux.HandleFunc("POST /fares/quote", routes.pricing.Quote)     // Deterministic fare calculation
	mux.HandleFunc("POST /fares/predict", routes.pricing.Predict) // Model price prediction
	mux.HandleFunc("GET /fares/options", routes.pricing.Options)  // Categorical vocabularies

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.Handler())

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())
}
