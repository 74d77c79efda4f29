// Package engine implements the heuristic trust scoring and explanation
// core: text rule evaluation, phrase highlighting, weighted score fusion,
// and threshold classification for reviews, products, and reviewers.
//
// The engine is a pure function of its inputs. It holds no state across
// calls and is safe for concurrent use.
package engine

import "errors"

var (
	// ErrEmptyText is returned when a review analysis is requested for
	// empty or whitespace-only text. No rules run in that case.
	ErrEmptyText = errors.New("review text is empty")

	// ErrInvalidRating is returned for ratings outside 0-5 (0 = unset).
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)

// Engine evaluates trust heuristics over reviews, products, and reviewers.
type Engine struct {
	rules     *ruleSet
	collusion CollusionEstimator
	weights   Weights
}

// New creates an Engine with the static collusion placeholder and the
// canonical review weights.
func New() *Engine {
	return NewWithEstimator(StaticEstimator{})
}

// NewWithEstimator creates an Engine with a custom collusion estimator.
func NewWithEstimator(est CollusionEstimator) *Engine {
	return &Engine{
		rules:     newRuleSet(),
		collusion: est,
		weights:   ReviewWeights(),
	}
}

// ScoreText runs only the text rule pipeline. Most callers want
// AnalyzeReview instead.
func (e *Engine) ScoreText(text string, rating int) TextAssessment {
	return e.rules.score(text, rating)
}
