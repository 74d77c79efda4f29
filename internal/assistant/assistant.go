// Package assistant answers methodology questions with canned responses
// selected by keyword. It is a presentation collaborator, not part of the
// scoring core.
package assistant

import "strings"

// Greeting opens every new conversation.
const Greeting = "Hello! I'm the AuthentiView assistant. I can help you understand how our fake review detection works, explain analysis results, or answer questions about our methodology. What would you like to know?"

// QuickQuestions are suggested starting points for a conversation.
func QuickQuestions() []string {
	return []string{
		"How accurate is the detection?",
		"What makes a review suspicious?",
		"How does rating analysis work?",
	}
}

type response struct {
	keywords []string
	answer   string
}

// Assistant routes messages to canned methodology answers.
type Assistant struct {
	responses []response
	fallback  string
}

func New() *Assistant {
	return &Assistant{
		responses: []response{
			{
				keywords: []string{"accurate", "accuracy"},
				answer:   "The system combines multiple analysis layers: heuristic text analysis, behavioral pattern detection, rating time-series analysis, and a placeholder for graph-based collusion detection. Each layer contributes to a weighted final score, and every result includes the explanations behind it.",
			},
			{
				keywords: []string{"suspicious", "fake"},
				answer:   "Reviews are flagged as suspicious based on several factors: templated language (generic phrases copied across reviews), extreme sentiment without specific details, timing patterns such as coordinated bursts, and reviewer history showing unusual behavior. Each factor is explained in the analysis results.",
			},
			{
				keywords: []string{"rating"},
				answer:   "Rating analysis examines the distribution and timing of ratings for a product: spike detection for unusual surges over short periods, distribution analysis for unnatural shapes, and a stability score for consistency over time. Manipulated products often show sudden rating changes that don't correlate with normal market events.",
			},
			{
				keywords: []string{"collusion", "ring"},
				answer:   "Collusion detection models a network of reviewers and the products they review, then looks for communities with unusual overlap suggesting coordinated behavior. This deployment uses a fixed placeholder estimate rather than a real graph computation.",
			},
			{
				keywords: []string{"data", "privacy"},
				answer:   "Only publicly available review data is analyzed. Nothing is stored: every analysis is computed per request and discarded after rendering.",
			},
		},
		fallback: "The system uses a multi-layered approach combining text heuristics, behavioral analysis, and rating time-series checks. Each analysis includes explanations so you can understand why decisions were made. Is there a specific aspect you'd like to know more about?",
	}
}

// Respond returns the canned answer whose keywords match the message, or
// the fallback.
func (a *Assistant) Respond(message string) string {
	lower := strings.ToLower(message)
	for _, r := range a.responses {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.answer
			}
		}
	}
	return a.fallback
}
