package repository

import (
	"context"
	"time"

	"yt-study/models"
)

// RunRepository holds pipeline runs just long enough for the current result
// to be re-rendered or exported; expired runs are pruned.
type RunRepository interface {
	Save(ctx context.Context, run *models.Run) error
	Find(ctx context.Context, id string) (*models.Run, error)
	DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error)
}
