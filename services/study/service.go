package study

import (
	"context"
	"time"

	"yt-study/errors"
	"yt-study/export"
	"yt-study/models"
	"yt-study/repository"
	"yt-study/studyaids"
	"yt-study/summarize"
	"yt-study/validation"
	"yt-study/youtube"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type service struct {
	repo       repository.RunRepository
	fetcher    TranscriptFetcher
	summarizer Summarizer
	config     Config
}

func NewService(
	repo repository.RunRepository,
	fetcher TranscriptFetcher,
	summarizer Summarizer,
	cfg Config,
) Service {
	if cfg.PipelineTimeout <= 0 {
		cfg.PipelineTimeout = 5 * time.Minute
	}
	if cfg.RunTTL <= 0 {
		cfg.RunTTL = time.Hour
	}
	return &service{
		repo:       repo,
		fetcher:    fetcher,
		summarizer: summarizer,
		config:     cfg,
	}
}

func (s *service) Run(ctx context.Context, url, mode string) (*models.Run, error) {
	if err := validation.ValidateURL(url); err != nil {
		return nil, err
	}
	summaryMode, err := summarize.ParseMode(mode)
	if err != nil {
		return nil, err
	}

	videoID, err := youtube.ExtractVideoID(url)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	run := &models.Run{
		ID:        uuid.New().String(),
		URL:       url,
		VideoID:   videoID,
		Mode:      string(summaryMode),
		Status:    models.StatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, run); err != nil {
		return nil, err
	}

	// Fetch and summarize in the background; callers poll Get for progress.
	// The goroutine works on its own copy so the returned run stays stable.
	job := *run
	go s.processRun(&job, summaryMode)

	return run, nil
}

func (s *service) processRun(run *models.Run, mode summarize.Mode) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.PipelineTimeout)
	defer cancel()

	logger := logrus.WithFields(logrus.Fields{
		"run_id":   run.ID,
		"video_id": run.VideoID,
		"mode":     run.Mode,
	})
	logger.Info("Pipeline run started")

	if err := s.process(ctx, run, mode); err != nil {
		run.Status = models.StatusFailed
		run.Error = err.Error()
		run.UpdatedAt = time.Now()
		if saveErr := s.repo.Save(context.WithoutCancel(ctx), run); saveErr != nil {
			logger.WithError(saveErr).Error("Failed to save failed run")
		}
		logger.WithError(err).Warn("Pipeline run failed")
		return
	}

	run.Status = models.StatusCompleted
	run.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, run); err != nil {
		logger.WithError(err).Error("Failed to save completed run")
		return
	}

	logger.WithFields(logrus.Fields{
		"transcript_length": len(run.Transcript),
		"summary_length":    len(run.Summary),
		"chunks":            run.ChunkCount,
	}).Info("Pipeline run completed")
}

// process mutates run through the fetch, join, summarize, and study-aid
// stages. A failing stage aborts the rest of the pipeline.
func (s *service) process(ctx context.Context, run *models.Run, mode summarize.Mode) error {
	segments, err := s.fetcher.Fetch(ctx, run.VideoID)
	if err != nil {
		return err
	}

	run.Transcript = youtube.FlattenSegments(segments)
	run.ChunkCount = s.summarizer.ChunkCount(run.Transcript)
	run.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, run); err != nil {
		return err
	}

	progress := func(done, total int) {
		run.ChunksDone = done
		run.ChunkCount = total
		run.UpdatedAt = time.Now()
		if err := s.repo.Save(ctx, run); err != nil {
			logrus.WithError(err).WithField("run_id", run.ID).Warn("Failed to save chunk progress")
		}
	}

	summary, err := s.summarizer.Summarize(ctx, run.Transcript, mode, progress)
	if err != nil {
		return err
	}

	run.Summary = summary
	run.StudyAids = studyaids.Generate(summary)
	return nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Run, error) {
	const op = "StudyService.Get"

	if id == "" {
		return nil, errors.InvalidInput(op, nil, "Run ID is required")
	}
	return s.repo.Find(ctx, id)
}

func (s *service) Export(ctx context.Context, id string) (string, error) {
	const op = "StudyService.Export"

	run, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if !run.IsCompleted() {
		return "", errors.InvalidInput(op, nil, "Run has not completed; nothing to export")
	}

	return export.BuildDocument(run.Summary, run.StudyAids, run.Transcript), nil
}

func (s *service) PruneExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, time.Now().Add(-s.config.RunTTL))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logrus.WithField("runs", n).Info("Pruned expired runs")
	}
	return n, nil
}
