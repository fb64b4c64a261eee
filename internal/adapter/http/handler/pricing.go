package handler

import (
	"context"
	"net/http"

	"github.com/voo-mobility/fare-service/internal/adapter/http/handler/dto"
	"github.com/voo-mobility/fare-service/internal/domain/models"
	"github.com/voo-mobility/fare-service/internal/domain/types"
	"github.com/voo-mobility/fare-service/pkg/logger"
	wrap "github.com/voo-mobility/fare-service/pkg/logger/wrapper"
	"github.com/voo-mobility/fare-service/pkg/validator"
)

type Pricing struct {
	fares     FareService
	predictor PredictService
	l         logger.Logger
}

type FareService interface {
	QuoteTrip(ctx context.Context, trip models.TripRequest, overrides models.RateOverrides, withConditions bool) (models.FareQuote, error)
}

type PredictService interface {
	Predict(ctx context.Context, trip models.TripRequest) (models.Prediction, error)
	RideNames() ([]string, error)
	Ready() bool
}

func NewPricing(fares FareService, predictor PredictService, l logger.Logger) *Pricing {
	return &Pricing{
		fares:     fares,
		predictor: predictor,
		l:         l,
	}
}

// Quote godoc
// @Summary      Calculate a fare quote
// @Description  Computes a deterministic fare from trip distance and duration. Rate constants default to the configured tariff and may be overridden per request; an optional conditions block applies surge and environmental adjustments.
// @Tags         fares
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Trip and rate details"
// @Success      200 {object} dto.QuoteResponse "Fare quote"
// @Failure      400 {object} map[string]interface{} "Bad request"
// @Failure      422 {object} map[string]interface{} "Validation error"
// @Router       /fares/quote [post]
func (h *Pricing) Quote(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "quote_fare")

	var req dto.QuoteRequest
	if err := readJSON(w, r, &req); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	trip, overrides := req.ToModel()
	quote, err := h.fares.QuoteTrip(ctx, trip, overrides, req.Conditions != nil)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to quote trip", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := dto.QuoteResponse{
		QuoteID:  quote.ID,
		Total:    quote.Total,
		Currency: quote.Currency,
		Mode:     string(quote.Mode),
	}

	if err := writeJSON(w, http.StatusOK, envelope{"quote": response}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(wrap.WithQuoteID(ctx, quote.ID.String()), "fare quoted", "total", quote.Total)
}

// Predict godoc
// @Summary      Predict a ride price
// @Description  Encodes the categorical trip attributes and queries the trained regression model for a price estimate.
// @Tags         fares
// @Accept       json
// @Produce      json
// @Param        request body dto.PredictRequest true "Full trip details including cab type and ride name"
// @Success      200 {object} dto.PredictResponse "Predicted price"
// @Failure      400 {object} map[string]interface{} "Bad request"
// @Failure      422 {object} map[string]interface{} "Validation error or unknown category"
// @Failure      503 {object} map[string]interface{} "Model artifacts unavailable"
// @Router       /fares/predict [post]
func (h *Pricing) Predict(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "predict_price")

	var req dto.PredictRequest
	if err := readJSON(w, r, &req); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	prediction, err := h.predictor.Predict(ctx, req.ToModel())
	if err != nil {
		if IsOneOf(err, types.ErrArtifactNotFound) {
			h.l.Warn(ctx, "prediction unavailable, artifacts missing")
		} else {
			h.l.Error(wrap.ErrorCtx(ctx, err), "failed to predict price", err)
		}
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := dto.PredictResponse{
		PredictedPrice: prediction.Price,
		Currency:       "USD",
	}

	if err := writeJSON(w, http.StatusOK, envelope{"prediction": response}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "price predicted", "predicted_price", prediction.Price)
}

// Options godoc
// @Summary      List prediction vocabularies
// @Description  Returns the ride names known to the fitted ride encoder and the accepted cab types.
// @Tags         fares
// @Produce      json
// @Success      200 {object} dto.OptionsResponse "Accepted categorical values"
// @Failure      503 {object} map[string]interface{} "Encoder artifact unavailable"
// @Router       /fares/options [get]
func (h *Pricing) Options(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_options")

	rideNames, err := h.predictor.RideNames()
	if err != nil {
		h.l.Warn(ctx, "ride vocabulary unavailable", "error", err.Error())
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	cabTypes := make([]string, 0, 2)
	for _, c := range types.CabTypes() {
		cabTypes = append(cabTypes, c.String())
	}

	response := dto.OptionsResponse{
		RideNames: rideNames,
		CabTypes:  cabTypes,
	}

	if err := writeJSON(w, http.StatusOK, envelope{"options": response}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}
