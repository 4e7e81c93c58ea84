package youtube

import (
	"regexp"

	"yt-study/errors"
)

// Recognized URL shapes. Video IDs are exactly 11 chars of [A-Za-z0-9_-].
var videoIDPatterns = []*regexp.Regexp{
	// Standard watch URL (including mobile)
	regexp.MustCompile(`(?:m\.)?youtube\.com/watch\?(?:[^#]*&)?v=([a-zA-Z0-9_-]{11})`),
	// Short URL
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	// Embed and legacy URLs
	regexp.MustCompile(`youtube\.com/(?:embed|v)/([a-zA-Z0-9_-]{11})`),
	// Shorts
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	// Live streams
	regexp.MustCompile(`youtube\.com/live/([a-zA-Z0-9_-]{11})`),
}

var bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractVideoID pulls the video ID from any recognized YouTube URL shape.
// A bare 11-character ID is returned unchanged.
func ExtractVideoID(rawURL string) (string, error) {
	const op = "youtube.ExtractVideoID"

	for _, pattern := range videoIDPatterns {
		if matches := pattern.FindStringSubmatch(rawURL); len(matches) > 1 {
			return matches[1], nil
		}
	}

	if bareVideoID.MatchString(rawURL) {
		return rawURL, nil
	}

	return "", errors.InvalidInput(op, nil, "Could not find a video ID in the URL")
}
