package engine

import (
	"sort"
	"strings"

	"github.com/authentiview/trustengine/internal/models"
)

// ExtractHighlights annotates text with the candidate phrases that actually
// occur in it. The returned spans partition the text exactly, ordered by
// position and non-overlapping; each flagged span carries one reason. The
// highlights slice is the flagged subset.
func ExtractHighlights(text string, candidates []phraseCandidate) ([]models.TextSpan, []models.Highlight) {
	// Byte offsets must line up with the original text, so matching is
	// case-insensitive only while lowercasing preserves byte length.
	// Otherwise both sides keep their original case.
	haystack := strings.ToLower(text)
	folded := len(haystack) == len(text)
	if !folded {
		haystack = text
	}
	needle := func(phrase string) string {
		if folded {
			return strings.ToLower(phrase)
		}
		return phrase
	}

	// Order candidates by first occurrence; drop the ones not present.
	type located struct {
		phraseCandidate
		first int
	}
	found := make([]located, 0, len(candidates))
	for _, c := range candidates {
		idx := strings.Index(haystack, needle(c.phrase))
		if idx == -1 {
			continue
		}
		found = append(found, located{phraseCandidate: c, first: idx})
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].first < found[j].first })

	var spans []models.TextSpan
	var highlights []models.Highlight
	cursor := 0

	for _, c := range found {
		n := needle(c.phrase)
		idx := strings.Index(haystack[cursor:], n)
		if idx == -1 {
			continue
		}
		start := cursor + idx
		end := start + len(n)
		if start > cursor {
			spans = append(spans, models.TextSpan{
				Text:  text[cursor:start],
				Start: cursor,
				End:   start,
			})
		}
		spans = append(spans, models.TextSpan{
			Text:    text[start:end],
			Flagged: true,
			Reason:  c.reason,
			Start:   start,
			End:     end,
		})
		highlights = append(highlights, models.Highlight{
			Phrase: text[start:end],
			Reason: c.reason,
			Start:  start,
			End:    end,
		})
		cursor = end
	}

	if cursor < len(text) || len(spans) == 0 {
		spans = append(spans, models.TextSpan{
			Text:  text[cursor:],
			Start: cursor,
			End:   len(text),
		})
	}

	return spans, highlights
}
