package engine

import (
	"fmt"

	"github.com/authentiview/trustengine/internal/models"
)

const (
	baselineReviewerScore = 88
	minReviewerScore      = 10

	// Normal organic reviewers post less than one review per day.
	velocityThreshold = 1.0

	consistencyVarianceMax = 0.2
	consistencyAvgMin      = 4.5

	diversityThreshold = 0.3
)

// reviewerRule is one row of the behavior rule table. Each rule is evaluated
// independently and yields one anomaly flag plus a score penalty.
type reviewerRule struct {
	name  string
	delta int
	flag  func(m models.ReviewerMetrics) (string, bool)
}

func reviewerRules() []reviewerRule {
	return []reviewerRule{
		{
			name:  "velocity",
			delta: 25,
			flag: func(m models.ReviewerMetrics) (string, bool) {
				if m.ReviewsPerDay <= velocityThreshold {
					return "", false
				}
				return fmt.Sprintf("High review velocity: %.1f reviews/day (normal: <1)", m.ReviewsPerDay), true
			},
		},
		{
			name:  "consistency",
			delta: 18,
			flag: func(m models.ReviewerMetrics) (string, bool) {
				if m.RatingVariance >= consistencyVarianceMax || m.AvgRating <= consistencyAvgMin {
					return "", false
				}
				return fmt.Sprintf("Abnormally consistent ratings: %.1f★ avg with %.1f variance", m.AvgRating, m.RatingVariance), true
			},
		},
		{
			name:  "concentration",
			delta: 10,
			flag: func(m models.ReviewerMetrics) (string, bool) {
				if m.CategoryDiversity >= diversityThreshold {
					return "", false
				}
				return "Low category diversity: reviews concentrated in a single category", true
			},
		},
		{
			name:  "burst",
			delta: 13,
			flag: func(m models.ReviewerMetrics) (string, bool) {
				if !m.BurstActivity {
					return "", false
				}
				return "Burst activity detected in last 72 hours", true
			},
		},
	}
}

// AnalyzeReviewer evaluates a reviewer's behavioral metrics against the rule
// table and estimates collusion for the resulting category.
func (e *Engine) AnalyzeReviewer(m models.ReviewerMetrics) *models.ReviewerAnalysisResult {
	score := baselineReviewerScore
	var flags []string

	for _, rule := range reviewerRules() {
		if flag, fired := rule.flag(m); fired {
			flags = append(flags, flag)
			score -= rule.delta
		}
	}
	score = clamp(score, minReviewerScore, 100)

	suspicious := score < SuspiciousThreshold
	probability, community := e.collusion.Estimate(suspicious)

	var explanations []string
	switch {
	case suspicious:
		explanations = []string{
			"Reviewer behavior strongly deviates from normal user patterns",
			"Multiple behavioral dimensions exceed anomaly thresholds",
			"Review timing suggests automated or coordinated activity",
		}
	case len(flags) > 0:
		explanations = []string{
			"Some behavioral metrics fall outside typical ranges",
			"Overall profile remains within trust thresholds",
		}
	default:
		explanations = []string{
			"Review frequency matches typical organic user behavior",
			"Rating distribution shows natural variance",
			"Category diversity indicates genuine consumer interest",
		}
	}

	return &models.ReviewerAnalysisResult{
		TrustScore:           score,
		Verdict:              Classify(score),
		Severity:             Severity(score),
		AnomalyFlags:         flags,
		Explanations:         explanations,
		Metrics:              m,
		CollusionProbability: probability,
		CommunitySize:        community,
	}
}
