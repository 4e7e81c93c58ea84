// Package studyaids derives self-test artifacts from a summary. All
// derivations are pure functions of the input text; empty input produces
// empty output. The selection heuristics are intentionally simple pattern
// rules, not semantic analysis.
package studyaids

import (
	"fmt"
	"strings"

	"yt-study/models"
)

const (
	maxTakeaways      = 8
	maxQuestions      = 6
	maxBlanks         = 6
	minSentenceLength = 10
	minBlankWords     = 5
	minAnswerLength   = 4

	// BlankMarker replaces the masked word in fill-in-the-blank items.
	BlankMarker = "____"
)

const punctuation = ",.;:!?\"'()"

// Generate derives all three study aids from the summary text.
func Generate(summary string) models.StudyAids {
	return models.StudyAids{
		Takeaways:     Takeaways(summary),
		OpenQuestions: OpenQuestions(summary),
		Blanks:        Blanks(summary),
	}
}

// Takeaways keeps sentences above a minimal length, capped at a fixed count.
func Takeaways(summary string) []string {
	takeaways := []string{}
	for _, s := range Sentences(summary) {
		if len(takeaways) >= maxTakeaways {
			break
		}
		if len(s) < minSentenceLength {
			continue
		}
		takeaways = append(takeaways, s)
	}
	return takeaways
}

// OpenQuestions rephrases selected sentences through a fixed template. No
// semantic understanding is attempted.
func OpenQuestions(summary string) []string {
	questions := []string{}
	for i, s := range Sentences(summary) {
		if i >= maxQuestions {
			break
		}
		questions = append(questions, fmt.Sprintf("Q%d: Explain in your own words: %q", i+1, s))
	}
	return questions
}

// Blanks masks the middle word of each selected sentence. Punctuation glued
// to the word stays in the masked text so that substituting the answer back
// reconstructs the sentence exactly.
func Blanks(summary string) []models.Blank {
	blanks := []models.Blank{}
	for _, s := range Sentences(summary) {
		if len(blanks) >= maxBlanks {
			break
		}

		words := strings.Fields(s)
		if len(words) < minBlankWords {
			continue
		}

		idx := len(words) / 2
		answer := strings.Trim(words[idx], punctuation)
		if len(answer) < minAnswerLength {
			continue
		}

		masked := make([]string, len(words))
		copy(masked, words)
		masked[idx] = strings.Replace(words[idx], answer, BlankMarker, 1)

		blanks = append(blanks, models.Blank{
			Masked: strings.Join(masked, " "),
			Answer: answer,
		})
	}
	return blanks
}

// Sentences segments text on terminators, returning trimmed sentences
// without the terminator.
func Sentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		s = strings.Trim(s, " •-")
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return sentences
}
