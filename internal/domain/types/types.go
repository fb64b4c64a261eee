package types

// Enum для типов такси, которые знает обученная модель
type CabType string

const (
	CabUber CabType = "Uber"
	CabLyft CabType = "Lyft"
)

func (c CabType) String() string {
	return string(c)
}

// CabTypes lists every cab type the service accepts for prediction.
func CabTypes() []CabType {
	return []CabType{CabUber, CabLyft}
}

// QuoteMode tells which branch of the fare formula produced a quote.
type QuoteMode string

const (
	QuoteBasic    QuoteMode = "basic"
	QuoteAdjusted QuoteMode = "adjusted"
)
