package models

import (
	"github.com/google/uuid"

	"github.com/voo-mobility/fare-service/internal/domain/types"
)

// FareQuote is the result of one fare calculation.
type FareQuote struct {
	ID       uuid.UUID
	Total    float64 // rounded to 2 decimals
	Currency string
	Mode     types.QuoteMode
}

// Prediction is the raw model estimate. The core never rounds it; formatting
// belongs to whoever displays the value.
type Prediction struct {
	Price float64
}
