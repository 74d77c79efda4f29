package engine

import (
	"math"

	"github.com/authentiview/trustengine/internal/models"
)

// Component labels for the canonical review-flow score breakdown.
const (
	LabelTextCredibility   = "Text Credibility"
	LabelBehaviorNormality = "Behavior Normality"
	LabelRatingStability   = "Rating Stability"
	LabelGraphIntegrity    = "Graph Integrity"
)

// Weights is the fusion configuration for one analysis type. Callers are
// responsible for supplying weights that sum to 1.0; Fuse does not validate.
type Weights struct {
	TextCredibility   float64
	BehaviorNormality float64
	RatingStability   float64
	GraphIntegrity    float64
}

// ReviewWeights is the canonical weight set for the single-review flow.
func ReviewWeights() Weights {
	return Weights{
		TextCredibility:   0.45,
		BehaviorNormality: 0.30,
		RatingStability:   0.15,
		GraphIntegrity:    0.10,
	}
}

// Components builds the ordered component breakdown for the given scores.
func (w Weights) Components(text, behavior, rating, graph int) []models.ScoreComponent {
	return []models.ScoreComponent{
		{Label: LabelTextCredibility, Value: text, Weight: w.TextCredibility},
		{Label: LabelBehaviorNormality, Value: behavior, Weight: w.BehaviorNormality},
		{Label: LabelRatingStability, Value: rating, Weight: w.RatingStability},
		{Label: LabelGraphIntegrity, Value: graph, Weight: w.GraphIntegrity},
	}
}

// Fuse combines component scores into one 0-100 trust score using
// round-half-up on the weighted sum.
func Fuse(components []models.ScoreComponent) int {
	var sum float64
	for _, c := range components {
		sum += float64(c.Value) * c.Weight
	}
	return clamp(int(math.Floor(sum+0.5)), 0, 100)
}
