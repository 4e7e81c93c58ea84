package youtube

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"yt-study/errors"
	"yt-study/models"

	"github.com/asticode/go-astisub"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Markers yt-dlp prints when a video cannot be fetched at all.
var unavailableMarkers = []string{
	"Video unavailable",
	"Private video",
	"This video is not available",
	"members-only",
}

var cueTagRe = regexp.MustCompile(`<[^>]+>`)

type Config struct {
	YtDlpPath        string
	Timeout          time.Duration
	Languages        string
	TempDir          string
	FetchesPerMinute int
}

// Fetcher retrieves caption tracks through yt-dlp and parses them into
// ordered transcript segments.
type Fetcher struct {
	config  Config
	limiter *rate.Limiter

	// runYtDlp is swapped out in tests to avoid the external binary.
	runYtDlp func(ctx context.Context, videoID string) ([]byte, error)
}

func NewFetcher(cfg Config) (*Fetcher, error) {
	if cfg.YtDlpPath == "" {
		cfg.YtDlpPath = "yt-dlp"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.Languages == "" {
		cfg.Languages = "en,en-US,en-GB"
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.FetchesPerMinute <= 0 {
		cfg.FetchesPerMinute = 30
	}

	f := &Fetcher{
		config:  cfg,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.FetchesPerMinute)), 1),
	}
	f.runYtDlp = f.execYtDlp
	return f, nil
}

// Fetch retrieves the caption track for videoID as ordered timed segments.
// Videos without captions fail with a not-found error.
func (f *Fetcher) Fetch(ctx context.Context, videoID string) ([]models.TranscriptSegment, error) {
	const op = "Fetcher.Fetch"

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, errors.Internal(op, err, "Fetch cancelled")
	}

	output, err := f.fetchWithRetry(ctx, videoID)
	if err != nil {
		if isUnavailable(err, output) {
			return nil, errors.NotFound(op, err, "Transcript not available for this video")
		}
		return nil, errors.Internal(op, err, "Failed to fetch transcript")
	}

	path, err := f.findSubtitleFile(videoID)
	if err != nil {
		// yt-dlp exits zero when a video exists but has no caption track.
		return nil, errors.NotFound(op, err, "Transcript not available for this video")
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			logrus.WithError(err).WithField("path", path).Warn("Failed to remove subtitle file")
		}
	}()

	segments, err := parseVTTFile(path)
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to parse caption track")
	}
	if len(segments) == 0 {
		return nil, errors.NotFound(op, nil, "Transcript is empty for this video")
	}

	logrus.WithFields(logrus.Fields{
		"video_id": videoID,
		"segments": len(segments),
	}).Info("Transcript fetched")

	return segments, nil
}

func (f *Fetcher) fetchWithRetry(ctx context.Context, videoID string) ([]byte, error) {
	const (
		maxRetries     = 3
		initialBackoff = 2 * time.Second
		maxBackoff     = 30 * time.Second
		backoffFactor  = 2.0
	)

	var (
		output []byte
		err    error
	)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		output, err = f.runYtDlp(ctx, videoID)
		if err == nil {
			return output, nil
		}

		// A missing or private video will not appear on retry.
		if isUnavailable(err, output) {
			return output, err
		}

		logrus.WithFields(logrus.Fields{
			"attempt":    attempt,
			"maxRetries": maxRetries,
			"video_id":   videoID,
			"error":      err,
		}).Warn("Caption fetch failed")

		backoff := time.Duration(float64(initialBackoff) * math.Pow(backoffFactor, float64(attempt-1)))
		if backoff > maxBackoff {
			backoff = maxBackoff
		}

		select {
		case <-time.After(backoff + time.Duration(rand.Int63n(int64(backoff/2)))):
		case <-ctx.Done():
			return output, ctx.Err()
		}
	}

	return output, fmt.Errorf("caption fetch failed after %d attempts: %w", maxRetries, err)
}

func (f *Fetcher) execYtDlp(ctx context.Context, videoID string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	args := []string{
		"--skip-download",
		"--write-sub",
		"--write-auto-sub",
		"--sub-lang", f.config.Languages,
		"--convert-subs", "vtt",
		"--output", filepath.Join(f.config.TempDir, "yt-study-%(id)s"),
		"https://www.youtube.com/watch?v=" + videoID,
	}

	cmd := exec.CommandContext(ctx, f.config.YtDlpPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("yt-dlp: %w, output: %s", err, output)
	}
	return output, nil
}

func (f *Fetcher) findSubtitleFile(videoID string) (string, error) {
	for _, lang := range strings.Split(f.config.Languages, ",") {
		path := filepath.Join(f.config.TempDir, fmt.Sprintf("yt-study-%s.%s.vtt", videoID, strings.TrimSpace(lang)))
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no subtitle file found for video %s", videoID)
}

func parseVTTFile(path string) ([]models.TranscriptSegment, error) {
	subs, err := astisub.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return segmentsFromSubtitles(subs), nil
}

func segmentsFromSubtitles(subs *astisub.Subtitles) []models.TranscriptSegment {
	var segments []models.TranscriptSegment
	var lastText string

	for _, item := range subs.Items {
		var parts []string
		for _, line := range item.Lines {
			text := strings.TrimSpace(cueTagRe.ReplaceAllString(line.String(), ""))
			if text != "" {
				parts = append(parts, text)
			}
		}
		text := strings.Join(parts, " ")
		if text == "" {
			continue
		}

		// Auto-generated tracks repeat the previous cue while it scrolls.
		if text == lastText {
			continue
		}
		lastText = text

		segments = append(segments, models.TranscriptSegment{
			Text:     text,
			Start:    item.StartAt.Seconds(),
			Duration: (item.EndAt - item.StartAt).Seconds(),
		})
	}

	return segments
}

func isUnavailable(err error, output []byte) bool {
	if err == nil {
		return false
	}
	combined := err.Error() + string(output)
	for _, marker := range unavailableMarkers {
		if strings.Contains(combined, marker) {
			return true
		}
	}
	return false
}
