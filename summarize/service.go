package summarize

import (
	"context"
	"strings"

	"yt-study/errors"

	"github.com/sirupsen/logrus"
)

// TooShortMessage is returned in place of a model summary when the
// transcript has too little text to be worth a model call.
const TooShortMessage = "The transcript is too short to summarize properly."

const minSummarizableLength = 200

// Progress is invoked after each chunk completes.
type Progress func(done, total int)

type Config struct {
	ChunkSize int
}

// Service splits long text into bounded chunks, summarizes each through the
// model, and concatenates the chunk summaries in input order.
type Service struct {
	model  Model
	config Config
}

func NewService(model Model, cfg Config) *Service {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 2000
	}
	return &Service{model: model, config: cfg}
}

// ChunkCount reports how many model calls a text of this length will take.
func (s *Service) ChunkCount(text string) int {
	text = strings.TrimSpace(text)
	if len(text) < minSummarizableLength {
		return 0
	}
	return len(SplitChunks(text, s.config.ChunkSize))
}

// Summarize produces a summary of text under the given mode. A failed model
// call aborts the whole run; no partial summary is returned.
func (s *Service) Summarize(ctx context.Context, text string, mode Mode, progress Progress) (string, error) {
	const op = "SummarizeService.Summarize"

	text = strings.TrimSpace(text)
	if len(text) < minSummarizableLength {
		return TooShortMessage, nil
	}

	params := mode.Params()
	chunks := SplitChunks(text, s.config.ChunkSize)

	logrus.WithFields(logrus.Fields{
		"mode":   string(mode),
		"chunks": len(chunks),
		"length": len(text),
	}).Info("Starting summarization")

	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		summary, err := s.model.Summarize(ctx, strings.TrimSpace(chunk), params)
		if err != nil {
			logrus.WithError(err).WithField("chunk", i).Error("Model call failed")
			return "", errors.Internal(op, err, "Summarization failed")
		}
		summaries = append(summaries, strings.TrimSpace(summary))

		if progress != nil {
			progress(i+1, len(chunks))
		}
	}

	return strings.Join(summaries, " "), nil
}
