package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authentiview/trustengine/internal/models"
)

func suspiciousMetrics() models.ReviewerMetrics {
	return models.ReviewerMetrics{
		ReviewsPerDay:     8.5,
		AvgRating:         4.9,
		RatingVariance:    0.1,
		CategoryDiversity: 0.15,
		BurstActivity:     true,
	}
}

func organicMetrics() models.ReviewerMetrics {
	return models.ReviewerMetrics{
		ReviewsPerDay:     0.3,
		AvgRating:         3.8,
		RatingVariance:    1.2,
		CategoryDiversity: 0.85,
		BurstActivity:     false,
	}
}

func TestAnalyzeReviewerOrganic(t *testing.T) {
	e := New()

	result := e.AnalyzeReviewer(organicMetrics())

	assert.Equal(t, 88, result.TrustScore)
	assert.Equal(t, models.VerdictGenuine, result.Verdict)
	assert.Empty(t, result.AnomalyFlags)
	assert.Equal(t, 8, result.CollusionProbability)
	assert.Equal(t, 3, result.CommunitySize)
	assert.Contains(t, result.Explanations, "Review frequency matches typical organic user behavior")
}

func TestAnalyzeReviewerAllFlags(t *testing.T) {
	e := New()

	result := e.AnalyzeReviewer(suspiciousMetrics())

	assert.Equal(t, 22, result.TrustScore)
	assert.Equal(t, models.VerdictLikelyFake, result.Verdict)
	assert.Equal(t, "danger", result.Severity)
	require.Len(t, result.AnomalyFlags, 4)
	assert.Equal(t, "High review velocity: 8.5 reviews/day (normal: <1)", result.AnomalyFlags[0])
	assert.Equal(t, "Abnormally consistent ratings: 4.9★ avg with 0.1 variance", result.AnomalyFlags[1])
	assert.Equal(t, "Low category diversity: reviews concentrated in a single category", result.AnomalyFlags[2])
	assert.Equal(t, "Burst activity detected in last 72 hours", result.AnomalyFlags[3])
	assert.Equal(t, 73, result.CollusionProbability)
	assert.Equal(t, 47, result.CommunitySize)
}

func TestAnalyzeReviewerSingleFlag(t *testing.T) {
	e := New()

	m := organicMetrics()
	m.ReviewsPerDay = 2.4

	result := e.AnalyzeReviewer(m)

	assert.Equal(t, 63, result.TrustScore)
	assert.Equal(t, models.VerdictSuspicious, result.Verdict)
	require.Len(t, result.AnomalyFlags, 1)
	assert.Contains(t, result.AnomalyFlags[0], "2.4 reviews/day")
	// Above the likely-fake boundary, so the collusion estimate stays low.
	assert.Equal(t, 8, result.CollusionProbability)
	assert.Contains(t, result.Explanations, "Some behavioral metrics fall outside typical ranges")
}

func TestAnalyzeReviewerThresholdEdges(t *testing.T) {
	e := New()

	tests := []struct {
		name      string
		mutate    func(*models.ReviewerMetrics)
		wantFlags int
	}{
		{"velocity at threshold", func(m *models.ReviewerMetrics) { m.ReviewsPerDay = 1.0 }, 0},
		{"velocity just over", func(m *models.ReviewerMetrics) { m.ReviewsPerDay = 1.01 }, 1},
		{"consistency needs both conditions", func(m *models.ReviewerMetrics) { m.RatingVariance = 0.1 }, 0},
		{"consistency fires", func(m *models.ReviewerMetrics) { m.RatingVariance = 0.1; m.AvgRating = 4.6 }, 1},
		{"diversity at threshold", func(m *models.ReviewerMetrics) { m.CategoryDiversity = 0.3 }, 0},
		{"diversity below", func(m *models.ReviewerMetrics) { m.CategoryDiversity = 0.29 }, 1},
		{"burst alone", func(m *models.ReviewerMetrics) { m.BurstActivity = true }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := organicMetrics()
			tt.mutate(&m)
			result := e.AnalyzeReviewer(m)
			assert.Len(t, result.AnomalyFlags, tt.wantFlags)
		})
	}
}

// constantEstimator exercises the estimator seam.
type constantEstimator struct{ p, c, comp int }

func (e constantEstimator) Estimate(bool) (int, int) { return e.p, e.c }
func (e constantEstimator) Component() int           { return e.comp }

func TestAnalyzeReviewerCustomEstimator(t *testing.T) {
	e := NewWithEstimator(constantEstimator{p: 55, c: 12, comp: 70})

	result := e.AnalyzeReviewer(suspiciousMetrics())

	assert.Equal(t, 55, result.CollusionProbability)
	assert.Equal(t, 12, result.CommunitySize)
}
