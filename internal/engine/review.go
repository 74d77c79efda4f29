package engine

import (
	"strings"

	"github.com/authentiview/trustengine/internal/models"
)

// ratingStability scores how ordinary the supplied star rating is. Mid-range
// ratings (2-4) are the least suspicious; extremes and unset ratings score
// lower.
func ratingStability(rating int) int {
	if abs(rating-3) < 2 {
		return 80
	}
	return 60
}

// AnalyzeReview scores a single review's text and rating and returns the
// full annotated result. Rating 0 means "not supplied".
func (e *Engine) AnalyzeReview(text string, rating int) (*models.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}

	assessment := e.rules.score(text, rating)

	components := e.weights.Components(
		assessment.TextScore,
		assessment.BehaviorScore,
		ratingStability(rating),
		e.collusion.Component(),
	)
	final := Fuse(components)
	spans, highlights := ExtractHighlights(text, assessment.candidates)

	return &models.AnalysisResult{
		FinalScore:      final,
		FakeProbability: 100 - final,
		Verdict:         Classify(final),
		Severity:        Severity(final),
		Components:      components,
		Highlights:      highlights,
		Spans:           spans,
		Explanations:    assessment.Explanations,
	}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
