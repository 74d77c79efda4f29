package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/authentiview/trustengine/internal/models"
)

func TestReviewWeightsSumToOne(t *testing.T) {
	w := ReviewWeights()
	assert.InDelta(t, 1.0, w.TextCredibility+w.BehaviorNormality+w.RatingStability+w.GraphIntegrity, 1e-9)
}

func TestFuseCanonicalWeights(t *testing.T) {
	tests := []struct {
		name                          string
		text, behavior, rating, graph int
		want                          int
	}{
		{"templated short review", 20, 75, 60, 85, 49},
		{"authentic detailed review", 95, 85, 80, 85, 89},
		{"all zero", 0, 0, 0, 0, 0},
		{"all hundred", 100, 100, 100, 100, 100},
		{"half up rounding", 50, 50, 50, 49, 50}, // 49.9 rounds up
	}

	w := ReviewWeights()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fuse(w.Components(tt.text, tt.behavior, tt.rating, tt.graph))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFuseComponentOrder(t *testing.T) {
	comps := ReviewWeights().Components(1, 2, 3, 4)
	labels := []string{LabelTextCredibility, LabelBehaviorNormality, LabelRatingStability, LabelGraphIntegrity}
	for i, c := range comps {
		assert.Equal(t, labels[i], c.Label)
	}
}

func TestFuseCustomComponents(t *testing.T) {
	comps := []models.ScoreComponent{
		{Label: "a", Value: 40, Weight: 0.5},
		{Label: "b", Value: 61, Weight: 0.5},
	}
	// 50.5 rounds half-up to 51.
	assert.Equal(t, 51, Fuse(comps))
}
