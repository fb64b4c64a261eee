package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/voo-mobility/fare-service/internal/domain/models"
	"github.com/voo-mobility/fare-service/internal/domain/types"
	"github.com/voo-mobility/fare-service/pkg/logger"
)

type stubFareService struct {
	quote models.FareQuote
	err   error

	gotTrip       models.TripRequest
	gotConditions bool
}

func (s *stubFareService) QuoteTrip(_ context.Context, trip models.TripRequest, _ models.RateOverrides, withConditions bool) (models.FareQuote, error) {
	s.gotTrip = trip
	s.gotConditions = withConditions
	if s.err != nil {
		return models.FareQuote{}, s.err
	}
	return s.quote, nil
}

type stubPredictService struct {
	prediction models.Prediction
	rideNames  []string
	err        error
}

func (s *stubPredictService) Predict(context.Context, models.TripRequest) (models.Prediction, error) {
	if s.err != nil {
		return models.Prediction{}, s.err
	}
	return s.prediction, nil
}

func (s *stubPredictService) RideNames() ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rideNames, nil
}

func (s *stubPredictService) Ready() bool {
	return s.err == nil
}

func newTestPricing(fares *stubFareService, predictor *stubPredictService) *Pricing {
	return NewPricing(fares, predictor, logger.InitLogger("test", logger.LevelError))
}

func TestQuoteHandler(t *testing.T) {
	fares := &stubFareService{
		quote: models.FareQuote{
			ID:       uuid.New(),
			Total:    7.02,
			Currency: "USD",
			Mode:     types.QuoteBasic,
		},
	}
	h := newTestPricing(fares, &stubPredictService{})

	body := `{"distance_miles": 0.1, "duration_minutes": 1}`
	req := httptest.NewRequest(http.MethodPost, "/fares/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Quote(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if fares.gotConditions {
		t.Fatalf("request without conditions must take the basic path")
	}
	if fares.gotTrip.Surge != 1 {
		t.Fatalf("surge should default to 1, got %v", fares.gotTrip.Surge)
	}

	var resp struct {
		Quote struct {
			Total    float64 `json:"total"`
			Currency string  `json:"currency"`
			Mode     string  `json:"mode"`
		} `json:"quote"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Quote.Total != 7.02 || resp.Quote.Currency != "USD" || resp.Quote.Mode != "basic" {
		t.Fatalf("unexpected response: %+v", resp.Quote)
	}
}

func TestQuoteHandler_WithConditions(t *testing.T) {
	fares := &stubFareService{quote: models.FareQuote{ID: uuid.New(), Total: 11.50, Currency: "USD", Mode: types.QuoteAdjusted}}
	h := newTestPricing(fares, &stubPredictService{})

	body := `{
		"distance_miles": 5,
		"duration_minutes": 15,
		"conditions": {
			"surge_multiplier": 1.5,
			"rain": true,
			"temperature_c": 22,
			"humidity_percent": 65,
			"cloud_percent": 40,
			"wind_speed": 12,
			"pressure_hpa": 1008,
			"pickup_hour_count": 75
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/fares/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Quote(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if !fares.gotConditions {
		t.Fatalf("request with conditions must take the adjusted path")
	}
	if fares.gotTrip.Surge != 1.5 || !fares.gotTrip.Rain {
		t.Fatalf("conditions not mapped onto the trip: %+v", fares.gotTrip)
	}
}

func TestQuoteHandler_Validation(t *testing.T) {
	h := newTestPricing(&stubFareService{}, &stubPredictService{})

	cases := []struct {
		name string
		body string
	}{
		{"zero distance", `{"distance_miles": 0, "duration_minutes": 10}`},
		{"negative rate", `{"distance_miles": 1, "duration_minutes": 10, "base_fare": -1}`},
		{"surge below one", `{"distance_miles": 1, "duration_minutes": 10, "conditions": {"surge_multiplier": 0.5, "pressure_hpa": 1013}}`},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/fares/quote", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()

		h.Quote(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: status = %d, want 422", tc.name, rec.Code)
		}
	}
}

func TestQuoteHandler_MalformedBody(t *testing.T) {
	h := newTestPricing(&stubFareService{}, &stubPredictService{})

	req := httptest.NewRequest(http.MethodPost, "/fares/quote", strings.NewReader(`{"distance_miles": `))
	rec := httptest.NewRecorder()

	h.Quote(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func validPredictBody() string {
	return `{
		"distance_miles": 5,
		"duration_minutes": 15,
		"surge_multiplier": 1,
		"rain": false,
		"temperature_c": 25,
		"humidity_percent": 50,
		"cloud_percent": 50,
		"wind_speed": 10,
		"pressure_hpa": 1013,
		"pickup_hour_count": 50,
		"hour": 14,
		"day": 21,
		"ride_name": "Lux",
		"cab_type": "Uber"
	}`
}

func TestPredictHandler(t *testing.T) {
	predictor := &stubPredictService{prediction: models.Prediction{Price: 18.734}}
	h := newTestPricing(&stubFareService{}, predictor)

	req := httptest.NewRequest(http.MethodPost, "/fares/predict", strings.NewReader(validPredictBody()))
	rec := httptest.NewRecorder()

	h.Predict(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Prediction struct {
			PredictedPrice float64 `json:"predicted_price"`
		} `json:"prediction"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	// the raw model output passes through unrounded
	if resp.Prediction.PredictedPrice != 18.734 {
		t.Fatalf("predicted price = %v, want 18.734", resp.Prediction.PredictedPrice)
	}
}

func TestPredictHandler_ArtifactsUnavailable(t *testing.T) {
	predictor := &stubPredictService{err: types.ErrArtifactNotFound}
	h := newTestPricing(&stubFareService{}, predictor)

	req := httptest.NewRequest(http.MethodPost, "/fares/predict", strings.NewReader(validPredictBody()))
	rec := httptest.NewRecorder()

	h.Predict(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestPredictHandler_UnknownCategory(t *testing.T) {
	predictor := &stubPredictService{err: types.ErrUnknownCategory}
	h := newTestPricing(&stubFareService{}, predictor)

	req := httptest.NewRequest(http.MethodPost, "/fares/predict", strings.NewReader(validPredictBody()))
	rec := httptest.NewRecorder()

	h.Predict(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestPredictHandler_Validation(t *testing.T) {
	h := newTestPricing(&stubFareService{}, &stubPredictService{})

	body := strings.Replace(validPredictBody(), `"cab_type": "Uber"`, `"cab_type": "Bolt"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/fares/predict", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Predict(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestOptionsHandler(t *testing.T) {
	predictor := &stubPredictService{rideNames: []string{"Black", "Lux"}}
	h := newTestPricing(&stubFareService{}, predictor)

	req := httptest.NewRequest(http.MethodGet, "/fares/options", nil)
	rec := httptest.NewRecorder()

	h.Options(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Options struct {
			RideNames []string `json:"ride_names"`
			CabTypes  []string `json:"cab_types"`
		} `json:"options"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Options.RideNames) != 2 || len(resp.Options.CabTypes) != 2 {
		t.Fatalf("unexpected options: %+v", resp.Options)
	}
}

func TestOptionsHandler_ArtifactsUnavailable(t *testing.T) {
	predictor := &stubPredictService{err: types.ErrArtifactNotFound}
	h := newTestPricing(&stubFareService{}, predictor)

	req := httptest.NewRequest(http.MethodGet, "/fares/options", nil)
	rec := httptest.NewRecorder()

	h.Options(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
