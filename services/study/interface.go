package study

import (
	"context"
	"time"

	"yt-study/models"
	"yt-study/summarize"
)

// Service runs the whole pipeline for one user action and exposes the
// current result for re-rendering and export.
type Service interface {
	// Run validates the request, records a new processing run, and starts
	// transcript fetch, summarization, and study-aid generation in the
	// background. Callers poll Get for progress and the final result.
	Run(ctx context.Context, url, mode string) (*models.Run, error)

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*models.Run, error)

	// Export renders a completed run into the downloadable document.
	Export(ctx context.Context, id string) (string, error)

	// PruneExpired removes runs older than the configured TTL.
	PruneExpired(ctx context.Context) (int64, error)
}

// TranscriptFetcher is the external transcript source.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) ([]models.TranscriptSegment, error)
}

// Summarizer is the chunking summarization capability.
type Summarizer interface {
	ChunkCount(text string) int
	Summarize(ctx context.Context, text string, mode summarize.Mode, progress summarize.Progress) (string, error)
}

type Config struct {
	// PipelineTimeout bounds one whole run.
	PipelineTimeout time.Duration

	// RunTTL is how long finished runs stay retrievable.
	RunTTL time.Duration
}
