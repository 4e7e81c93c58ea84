package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"yt-study/errors"
	"yt-study/models"
	"yt-study/repository"
)

type runRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) (repository.RunRepository, error) {
	const op = "sqlite.NewRepository"

	if db == nil {
		return nil, errors.Internal(op, nil, "database handle is nil")
	}
	return &runRepository{db: db}, nil
}

func (r *runRepository) Save(ctx context.Context, run *models.Run) error {
	const op = "RunRepository.Save"

	aids, err := json.Marshal(run.StudyAids)
	if err != nil {
		return errors.Internal(op, err, "failed to encode study aids")
	}

	query := `
		INSERT INTO runs (
			id, url, video_id, mode, status, transcript, summary, study_aids,
			chunks_done, chunk_count, error, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			url = excluded.url,
			video_id = excluded.video_id,
			mode = excluded.mode,
			status = excluded.status,
			transcript = excluded.transcript,
			summary = excluded.summary,
			study_aids = excluded.study_aids,
			chunks_done = excluded.chunks_done,
			chunk_count = excluded.chunk_count,
			error = excluded.error,
			updated_at = excluded.updated_at`

	_, err = r.db.ExecContext(ctx, query,
		run.ID, run.URL, run.VideoID, run.Mode, string(run.Status),
		run.Transcript, run.Summary, string(aids),
		run.ChunksDone, run.ChunkCount, run.Error,
		run.CreatedAt.UTC(), run.UpdatedAt.UTC(),
	)
	if err != nil {
		return errors.Internal(op, err, "failed to save run")
	}

	return nil
}

func (r *runRepository) Find(ctx context.Context, id string) (*models.Run, error) {
	const op = "RunRepository.Find"

	query := `
		SELECT id, url, video_id, mode, status, transcript, summary, study_aids,
		       chunks_done, chunk_count, error, created_at, updated_at
		FROM runs WHERE id = ?`

	var (
		run        models.Run
		status     string
		transcript sql.NullString
		summary    sql.NullString
		aids       sql.NullString
		runErr     sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&run.ID, &run.URL, &run.VideoID, &run.Mode, &status,
		&transcript, &summary, &aids,
		&run.ChunksDone, &run.ChunkCount, &runErr,
		&run.CreatedAt, &run.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound(op, err, "Run not found")
	}
	if err != nil {
		return nil, errors.Internal(op, err, "failed to query run")
	}

	run.Status = models.Status(status)
	run.Transcript = transcript.String
	run.Summary = summary.String
	run.Error = runErr.String

	if aids.Valid && aids.String != "" {
		if err := json.Unmarshal([]byte(aids.String), &run.StudyAids); err != nil {
			return nil, errors.Internal(op, err, "failed to decode study aids")
		}
	}

	return &run, nil
}

func (r *runRepository) DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	const op = "RunRepository.DeleteExpired"

	res, err := r.db.ExecContext(ctx, "DELETE FROM runs WHERE created_at < ?", olderThan.UTC())
	if err != nil {
		return 0, errors.Internal(op, err, "failed to delete expired runs")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Internal(op, err, "failed to count deleted runs")
	}
	return n, nil
}
