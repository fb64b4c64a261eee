package artifact

import (
	"encoding/json"
	"fmt"

	"github.com/voo-mobility/fare-service/internal/domain/types"
)

// Model is the single-sample prediction entry point of a trained regression
// model artifact.
type Model interface {
	Predict(features []float64) (float64, error)
	NumFeatures() int
}

type modelBlob struct {
	Type        string     `json:"type"`
	NumFeatures int        `json:"num_features"`
	Intercept   float64    `json:"intercept"`
	Coef        []float64  `json:"coefficients"`
	Trees       []treeBlob `json:"trees"`
}

type treeBlob struct {
	Nodes []treeNode `json:"nodes"`
}

// treeNode is one node of a serialized binary regression tree. Leaves carry
// Feature == -1 and a value; inner nodes route on feature <= threshold.
type treeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

func decodeModel(data []byte) (Model, error) {
	var blob modelBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrArtifactInvalid, err)
	}

	switch blob.Type {
	case "linear":
		if len(blob.Coef) == 0 {
			return nil, fmt.Errorf("%w: linear model without coefficients", types.ErrArtifactInvalid)
		}
		return &linearModel{
			intercept: blob.Intercept,
			coef:      blob.Coef,
		}, nil
	case "forest":
		if blob.NumFeatures <= 0 || len(blob.Trees) == 0 {
			return nil, fmt.Errorf("%w: forest model without trees or feature count", types.ErrArtifactInvalid)
		}
		trees := make([][]treeNode, 0, len(blob.Trees))
		for i, t := range blob.Trees {
			if len(t.Nodes) == 0 {
				return nil, fmt.Errorf("%w: tree %d is empty", types.ErrArtifactInvalid, i)
			}
			trees = append(trees, t.Nodes)
		}
		return &forestModel{
			numFeatures: blob.NumFeatures,
			trees:       trees,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown model type %q", types.ErrArtifactInvalid, blob.Type)
	}
}

// linearModel: prediction = intercept + coef · features.
type linearModel struct {
	intercept float64
	coef      []float64
}

func (m *linearModel) NumFeatures() int {
	return len(m.coef)
}

func (m *linearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.coef) {
		return 0, fmt.Errorf("%w: got %d, model expects %d", types.ErrFeatureDimension, len(features), len(m.coef))
	}

	sum := m.intercept
	for i, c := range m.coef {
		sum += c * features[i]
	}
	return sum, nil
}

// forestModel averages the outputs of its regression trees.
type forestModel struct {
	numFeatures int
	trees       [][]treeNode
}

func (m *forestModel) NumFeatures() int {
	return m.numFeatures
}

func (m *forestModel) Predict(features []float64) (float64, error) {
	if len(features) != m.numFeatures {
		return 0, fmt.Errorf("%w: got %d, model expects %d", types.ErrFeatureDimension, len(features), m.numFeatures)
	}

	sum := 0.0
	for _, tree := range m.trees {
		v, err := evalTree(tree, features)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum / float64(len(m.trees)), nil
}

func evalTree(nodes []treeNode, features []float64) (float64, error) {
	i := 0
	for steps := 0; steps <= len(nodes); steps++ {
		if i < 0 || i >= len(nodes) {
			return 0, fmt.Errorf("%w: node index %d out of range", types.ErrArtifactInvalid, i)
		}

		node := nodes[i]
		if node.Feature < 0 {
			return node.Value, nil
		}
		if node.Feature >= len(features) {
			return 0, fmt.Errorf("%w: node references feature %d", types.ErrArtifactInvalid, node.Feature)
		}

		if features[node.Feature] <= node.Threshold {
			i = node.Left
		} else {
			i = node.Right
		}
	}

	// more steps than nodes means the tree contains a cycle
	return 0, fmt.Errorf("%w: tree does not terminate", types.ErrArtifactInvalid)
}
