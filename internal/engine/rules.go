package engine

import (
	"fmt"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

const (
	baselineTextScore     = 70
	baselineBehaviorScore = 75

	minTextScore     = 10
	maxTextScore     = 100
	minBehaviorScore = 30
	maxBehaviorScore = 100
)

// TextAssessment is the outcome of running the text rule pipeline.
type TextAssessment struct {
	TextScore     int // 10-100
	BehaviorScore int // 30-100
	Triggered     []string
	Explanations  []string

	candidates []phraseCandidate
}

// textEval is the accumulator threaded through the rule pipeline. Rules
// mutate it in order; later rules may read scores already adjusted by
// earlier ones.
type textEval struct {
	text   string
	lower  string
	rating int

	textScore     int
	behaviorScore int
	triggered     map[string]bool
	explanations  []string
	candidates    []phraseCandidate
}

func (ev *textEval) fire(name string) {
	ev.triggered[name] = true
}

func (ev *textEval) explain(msg string) {
	ev.explanations = append(ev.explanations, msg)
}

// textRule is one step of the pipeline. Order is significant.
type textRule struct {
	name  string
	apply func(*textEval)
}

// ruleSet holds the compiled matchers and the ordered rule pipeline for
// review text scoring.
type ruleSet struct {
	superlatives *ahocorasick.Matcher
	contrasts    *ahocorasick.Matcher
	rules        []textRule
}

func newRuleSet() *ruleSet {
	rs := &ruleSet{
		superlatives: newMatcher(superlativeTerms()),
		contrasts:    newMatcher(contrastTerms()),
	}
	rs.rules = []textRule{
		{name: "excessive_positivity", apply: rs.excessivePositivity},
		{name: "generic_short", apply: rs.genericShort},
		{name: "specific_detail", apply: rs.specificDetail},
		{name: "balanced_sentiment", apply: rs.balancedSentiment},
		{name: "rating_text_mismatch", apply: rs.ratingTextMismatch},
	}
	return rs
}

func newMatcher(terms []string) *ahocorasick.Matcher {
	patterns := make([][]byte, len(terms))
	for i, term := range terms {
		patterns[i] = []byte(strings.ToLower(term))
	}
	return ahocorasick.NewMatcher(patterns)
}

func (rs *ruleSet) matches(m *ahocorasick.Matcher, lower string) bool {
	// Match mutates matcher state; MatchThreadSafe keeps the shared
	// matchers usable from concurrent analyses.
	return len(m.MatchThreadSafe([]byte(lower))) > 0
}

// score runs the full rule pipeline over a review's text and rating.
func (rs *ruleSet) score(text string, rating int) TextAssessment {
	ev := &textEval{
		text:          text,
		lower:         strings.ToLower(text),
		rating:        rating,
		textScore:     baselineTextScore,
		behaviorScore: baselineBehaviorScore,
		triggered:     make(map[string]bool),
	}

	for _, rule := range rs.rules {
		rule.apply(ev)
	}

	ev.textScore = clamp(ev.textScore, minTextScore, maxTextScore)
	ev.behaviorScore = clamp(ev.behaviorScore, minBehaviorScore, maxBehaviorScore)

	if len(ev.explanations) == 0 {
		ev.explain("Review appears to follow normal patterns")
	}

	triggered := make([]string, 0, len(ev.triggered))
	for _, rule := range rs.rules {
		if ev.triggered[rule.name] {
			triggered = append(triggered, rule.name)
		}
	}

	return TextAssessment{
		TextScore:     ev.textScore,
		BehaviorScore: ev.behaviorScore,
		Triggered:     triggered,
		Explanations:  ev.explanations,
		candidates:    ev.candidates,
	}
}

// excessivePositivity: superlative language with no concrete usage detail
// reads as templated praise.
func (rs *ruleSet) excessivePositivity(ev *textEval) {
	if !rs.matches(rs.superlatives, ev.lower) || detailPattern.MatchString(ev.text) {
		return
	}
	ev.fire("excessive_positivity")
	ev.textScore -= 30
	ev.candidates = append(ev.candidates, templateCandidates()...)
	ev.explain("Review contains multiple superlatives without supporting details")
	ev.explain("Language pattern matches common fake review templates")
}

// genericShort compounds the positivity penalty for very short reviews.
func (rs *ruleSet) genericShort(ev *textEval) {
	if len(ev.text) >= 100 || !ev.triggered["excessive_positivity"] {
		return
	}
	ev.fire("generic_short")
	ev.textScore -= 20
	ev.explain("Review is unusually short and lacks specific product information")
}

func (rs *ruleSet) specificDetail(ev *textEval) {
	if !detailPattern.MatchString(ev.text) {
		return
	}
	ev.fire("specific_detail")
	ev.textScore += 15
	ev.explain("Review includes specific usage timeframes, suggesting authentic experience")
}

func (rs *ruleSet) balancedSentiment(ev *textEval) {
	if !rs.matches(rs.contrasts, ev.lower) {
		return
	}
	ev.fire("balanced_sentiment")
	ev.textScore += 10
	ev.behaviorScore += 10
	ev.explain("Balanced sentiment with both pros and cons indicates genuine review")
}

// ratingTextMismatch reads the score already adjusted by the rules above.
// It contributes an explanation only, no delta.
func (rs *ruleSet) ratingTextMismatch(ev *textEval) {
	if ev.rating != 5 || ev.textScore >= 50 {
		return
	}
	ev.fire("rating_text_mismatch")
	ev.explain(fmt.Sprintf("%d-star rating combined with suspicious text patterns", ev.rating))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
