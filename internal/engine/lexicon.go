package engine

import "regexp"

// superlativeTerms are hyperbole markers typical of templated praise.
// Matching is substring-based over lowercased text.
func superlativeTerms() []string {
	return []string{"amazing", "perfect", "best", "love", "wonderful"}
}

// contrastTerms signal balanced pros-and-cons writing.
func contrastTerms() []string {
	return []string{"but", "however", "downside", "although"}
}

// detailPattern matches a numeric quantity followed by a time unit, e.g.
// "3 months" or "48 hours" - the strongest single marker of real usage.
var detailPattern = regexp.MustCompile(`(?i)\d+\s*(weeks?|months?|days?|hours?)`)

// phraseCandidate pairs a trigger phrase with the reason shown to the user
// when the phrase is found in the review text.
type phraseCandidate struct {
	phrase string
	reason string
}

// templateCandidates are the phrases flagged for highlighting when the
// excessive-positivity rule fires. Phrases absent from the text are dropped
// by the extractor.
func templateCandidates() []phraseCandidate {
	return []phraseCandidate{
		{phrase: "absolutely amazing", reason: "Excessive positivity without specifics"},
		{phrase: "Best purchase ever", reason: "Hyperbolic claim"},
		{phrase: "Perfect in every way", reason: "Unrealistic superlative"},
	}
}
