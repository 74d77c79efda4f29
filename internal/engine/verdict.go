package engine

import "github.com/authentiview/trustengine/internal/models"

// Trust score boundaries shared by the review, product, and reviewer flows.
const (
	GenuineThreshold    = 70
	SuspiciousThreshold = 40
)

// Classify maps a trust score to its verdict.
func Classify(score int) models.Verdict {
	switch {
	case score >= GenuineThreshold:
		return models.VerdictGenuine
	case score >= SuspiciousThreshold:
		return models.VerdictSuspicious
	default:
		return models.VerdictLikelyFake
	}
}

// Severity selects the explanation-panel style for a trust score.
func Severity(score int) string {
	switch {
	case score >= GenuineThreshold:
		return "info"
	case score >= SuspiciousThreshold:
		return "warning"
	default:
		return "danger"
	}
}

// ColorToken selects the display color token for a trust score.
func ColorToken(score int) string {
	switch {
	case score >= GenuineThreshold:
		return "trust-high"
	case score >= SuspiciousThreshold:
		return "trust-medium"
	default:
		return "trust-low"
	}
}
