package export

import (
	"strings"
	"testing"

	"yt-study/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDocumentSectionOrder(t *testing.T) {
	aids := models.StudyAids{
		Takeaways:     []string{"Cats are mammals"},
		OpenQuestions: []string{`Q1: Explain in your own words: "Cats are mammals"`},
		Blanks:        []models.Blank{{Masked: "The quick brown fox ____ over the lazy dog", Answer: "jumps"}},
	}

	doc := BuildDocument("A summary.", aids, "Full transcript text.")

	// Exactly five sections, in fixed order.
	last := -1
	for _, header := range SectionHeaders {
		idx := strings.Index(doc, header+":")
		require.GreaterOrEqual(t, idx, 0, "missing section %q", header)
		assert.Greater(t, idx, last, "section %q out of order", header)
		last = idx
	}

	assert.Contains(t, doc, "A summary.")
	assert.Contains(t, doc, "1. Cats are mammals")
	assert.Contains(t, doc, "- Q1: Explain in your own words:")
	assert.Contains(t, doc, "Answer: jumps")
	assert.Contains(t, doc, "Full transcript text.")
}

func TestBuildDocumentEmptyInputsKeepHeaders(t *testing.T) {
	doc := BuildDocument("", models.StudyAids{}, "")

	for _, header := range SectionHeaders {
		assert.Contains(t, doc, header+":", "empty section %q must still have its header", header)
	}
}

func TestBuildDocumentDeterministic(t *testing.T) {
	aids := models.StudyAids{Takeaways: []string{"one", "two"}}
	assert.Equal(t,
		BuildDocument("s", aids, "t"),
		BuildDocument("s", aids, "t"),
	)
}
