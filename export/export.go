// Package export renders a completed run into the downloadable study-notes
// document. Building is pure and deterministic; missing inputs render as
// empty sections under their headers.
package export

import (
	"fmt"
	"strings"

	"yt-study/models"
)

const title = "YouTube AI Summary + Study Notes"

// Section headers, in their fixed output order.
var SectionHeaders = []string{
	"Summary",
	"Key Takeaways",
	"Open Questions",
	"Fill in the Blanks",
	"Full Transcript",
}

// BuildDocument assembles the export text. The five sections always appear,
// in order, even when a section body is empty.
func BuildDocument(summary string, aids models.StudyAids, transcript string) string {
	var b strings.Builder

	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	writeSection(&b, "Summary", summary)

	var takeaways strings.Builder
	for i, t := range aids.Takeaways {
		fmt.Fprintf(&takeaways, "%d. %s\n", i+1, t)
	}
	writeSection(&b, "Key Takeaways", takeaways.String())

	var questions strings.Builder
	for _, q := range aids.OpenQuestions {
		fmt.Fprintf(&questions, "- %s\n", q)
	}
	writeSection(&b, "Open Questions", questions.String())

	var blanks strings.Builder
	for i, blank := range aids.Blanks {
		fmt.Fprintf(&blanks, "%d. %s\n   Answer: %s\n", i+1, blank.Masked, blank.Answer)
	}
	writeSection(&b, "Fill in the Blanks", blanks.String())

	writeSection(&b, "Full Transcript", transcript)

	return b.String()
}

func writeSection(b *strings.Builder, header, body string) {
	b.WriteString(header + ":\n\n")
	body = strings.TrimRight(body, "\n")
	if body != "" {
		b.WriteString(body + "\n")
	}
	b.WriteString("\n")
}
