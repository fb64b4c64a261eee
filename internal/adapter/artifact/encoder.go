package artifact

import (
	"encoding/json"
	"fmt"

	"github.com/voo-mobility/fare-service/internal/domain/types"
)

// LabelEncoder is a fitted mapping from a fixed vocabulary of string labels
// to integer codes. The code of a label is its position in the sorted class
// list produced by the training pipeline, so codes are stable across loads.
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

type encoderBlob struct {
	Classes []string `json:"classes"`
}

// NewLabelEncoder builds an encoder over a class list; the code of each class
// is its position in the list.
func NewLabelEncoder(classes []string) *LabelEncoder {
	index := make(map[string]int, len(classes))
	for i, class := range classes {
		index[class] = i
	}

	return &LabelEncoder{
		classes: classes,
		index:   index,
	}
}

func decodeEncoder(data []byte) (*LabelEncoder, error) {
	var blob encoderBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrArtifactInvalid, err)
	}
	if len(blob.Classes) == 0 {
		return nil, fmt.Errorf("%w: encoder has no classes", types.ErrArtifactInvalid)
	}

	return NewLabelEncoder(blob.Classes), nil
}

// Transform returns the integer code of a label. A label outside the fitted
// vocabulary fails with ErrUnknownCategory; no default code is substituted.
func (e *LabelEncoder) Transform(label string) (int, error) {
	code, ok := e.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", types.ErrUnknownCategory, label)
	}
	return code, nil
}

// Classes returns a copy of the fitted vocabulary in code order.
func (e *LabelEncoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}
