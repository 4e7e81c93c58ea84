package validation

import (
	"net/url"
	"strings"

	"yt-study/errors"
)

// ValidateURL checks that the given string is a plausible YouTube URL before
// any identifier extraction is attempted. Bare video IDs are also accepted.
func ValidateURL(rawURL string) error {
	const op = "validation.ValidateURL"

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return errors.InvalidInput(op, nil, "URL is required")
	}

	// Bare 11-char video IDs skip URL parsing entirely.
	if isVideoID(rawURL) {
		return nil
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return errors.InvalidInput(op, err, "Invalid URL format")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.InvalidInput(op, nil, "URL must use HTTP or HTTPS")
	}

	host := parsedURL.Hostname()
	if !strings.Contains(host, "youtube.com") && !strings.Contains(host, "youtu.be") {
		return errors.InvalidInput(op, nil, "Only YouTube URLs are supported")
	}

	return nil
}

// ValidateMode checks the summary length mode selector.
func ValidateMode(mode string) error {
	const op = "validation.ValidateMode"

	switch mode {
	case "", "short", "normal", "detailed":
		return nil
	default:
		return errors.InvalidInput(op, nil, "Mode must be one of short, normal, detailed")
	}
}

func isVideoID(s string) bool {
	if len(s) != 11 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
