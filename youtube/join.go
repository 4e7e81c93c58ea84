package youtube

import (
	"strings"

	"yt-study/models"
)

// FlattenSegments concatenates segment texts in source order into a single
// whitespace-normalized block. An empty transcript joins to "".
func FlattenSegments(segments []models.TranscriptSegment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		text := strings.Join(strings.Fields(seg.Text), " ")
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
