package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"yt-study/errors"
	"yt-study/models"
	"yt-study/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) repository.RunRepository {
	t.Helper()

	db, err := InitDB(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewRepository(db)
	require.NoError(t, err)
	return repo
}

func newTestRun() *models.Run {
	now := time.Now()
	return &models.Run{
		ID:        uuid.New().String(),
		URL:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		VideoID:   "dQw4w9WgXcQ",
		Mode:      "normal",
		Status:    models.StatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSaveAndFind(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	run := newTestRun()
	run.Status = models.StatusCompleted
	run.Transcript = "Cats are mammals."
	run.Summary = "About cats."
	run.StudyAids = models.StudyAids{
		Takeaways:     []string{"Cats are mammals"},
		OpenQuestions: []string{`Q1: Explain in your own words: "Cats are mammals"`},
		Blanks:        []models.Blank{{Masked: "Cats are ____ animals today", Answer: "cute"}},
	}
	run.ChunksDone = 2
	run.ChunkCount = 2

	require.NoError(t, repo.Save(ctx, run))

	found, err := repo.Find(ctx, run.ID)
	require.NoError(t, err)

	assert.Equal(t, run.ID, found.ID)
	assert.Equal(t, run.VideoID, found.VideoID)
	assert.Equal(t, models.StatusCompleted, found.Status)
	assert.Equal(t, run.Transcript, found.Transcript)
	assert.Equal(t, run.Summary, found.Summary)
	assert.Equal(t, run.StudyAids, found.StudyAids)
	assert.Equal(t, 2, found.ChunksDone)
}

func TestSaveUpserts(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	run := newTestRun()
	require.NoError(t, repo.Save(ctx, run))

	run.Status = models.StatusFailed
	run.Error = "Transcript not available for this video"
	run.UpdatedAt = time.Now()
	require.NoError(t, repo.Save(ctx, run))

	found, err := repo.Find(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, found.Status)
	assert.Equal(t, run.Error, found.Error)
}

func TestFindMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Find(context.Background(), "no-such-run")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestDeleteExpired(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	old := newTestRun()
	old.CreatedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, repo.Save(ctx, old))

	fresh := newTestRun()
	require.NoError(t, repo.Save(ctx, fresh))

	n, err := repo.DeleteExpired(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.Find(ctx, old.ID)
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.Find(ctx, fresh.ID)
	assert.NoError(t, err)
}
