package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHighlightsPartition(t *testing.T) {
	text := "This product is absolutely amazing! Best purchase ever! I love it so much! Perfect in every way!"
	spans, highlights := ExtractHighlights(text, templateCandidates())

	// Spans reassemble the original text exactly.
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	assert.Equal(t, text, b.String())

	// Ordered, non-overlapping, offsets consistent.
	prevEnd := 0
	for _, s := range spans {
		assert.Equal(t, prevEnd, s.Start)
		assert.Equal(t, s.Text, text[s.Start:s.End])
		prevEnd = s.End
	}
	assert.Equal(t, len(text), prevEnd)

	require.Len(t, highlights, 3)
	assert.Equal(t, "absolutely amazing", highlights[0].Phrase)
	assert.Equal(t, "Excessive positivity without specifics", highlights[0].Reason)
	assert.Equal(t, "Best purchase ever", highlights[1].Phrase)
	assert.Equal(t, "Perfect in every way", highlights[2].Phrase)
}

func TestExtractHighlightsCaseInsensitive(t *testing.T) {
	text := "BEST PURCHASE EVER, would buy again"
	spans, highlights := ExtractHighlights(text, templateCandidates())

	require.Len(t, highlights, 1)
	// The highlight carries the text's own casing.
	assert.Equal(t, "BEST PURCHASE EVER", highlights[0].Phrase)
	assert.Equal(t, 0, highlights[0].Start)

	assert.True(t, spans[0].Flagged)
	assert.False(t, spans[1].Flagged)
}

// Lowercasing U+0130 grows the text by a byte, so matching falls back to
// the original casing. Exact-case phrases still highlight and the spans
// still partition the text.
func TestExtractHighlightsLengthChangingFold(t *testing.T) {
	text := "İnanılmaz! Best purchase ever, tavsiye ederim."
	require.NotEqual(t, len(text), len(strings.ToLower(text)))

	spans, highlights := ExtractHighlights(text, templateCandidates())

	require.Len(t, highlights, 1)
	assert.Equal(t, "Best purchase ever", highlights[0].Phrase)
	assert.Equal(t, text[highlights[0].Start:highlights[0].End], highlights[0].Phrase)

	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	assert.Equal(t, text, b.String())
}

func TestExtractHighlightsDropsAbsentPhrases(t *testing.T) {
	text := "It was absolutely amazing for the price."
	_, highlights := ExtractHighlights(text, templateCandidates())

	require.Len(t, highlights, 1)
	assert.Equal(t, "absolutely amazing", highlights[0].Phrase)
}

func TestExtractHighlightsNoMatches(t *testing.T) {
	text := "A perfectly ordinary review with nothing flagged."
	spans, highlights := ExtractHighlights(text, templateCandidates())

	assert.Empty(t, highlights)
	require.Len(t, spans, 1)
	assert.Equal(t, text, spans[0].Text)
	assert.False(t, spans[0].Flagged)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, len(text), spans[0].End)
}

func TestExtractHighlightsNoCandidates(t *testing.T) {
	text := "Nothing to see here."
	spans, highlights := ExtractHighlights(text, nil)

	assert.Empty(t, highlights)
	require.Len(t, spans, 1)
	assert.Equal(t, text, spans[0].Text)
}
