package types

import "errors"

var (
	ErrArtifactNotFound = errors.New("pricing artifact not found")
	ErrArtifactInvalid  = errors.New("pricing artifact is malformed")
	ErrUnknownCategory  = errors.New("label not present in encoder vocabulary")

	ErrInvalidTrip      = errors.New("trip distance and duration must be positive")
	ErrFeatureDimension = errors.New("feature vector length does not match model")
)
