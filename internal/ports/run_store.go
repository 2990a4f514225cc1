package ports

import (
	"context"
	"time"

	"bus-arrival-service/internal/domain"
)

// TrainingRun records one completed execution of the training pipeline.
type TrainingRun struct {
	Seed          int64
	Records       int
	TrainFraction float64
	TrainMetrics  domain.Metrics
	TestMetrics   domain.Metrics
	ArtifactPath  string
	CreatedAt     time.Time
}

// Port: a boundary for recording training runs and the synthetic datasets
// they were fit on. Prediction traffic is never written here; only the
// offline pipeline touches this store.
type TrainingRunStore interface {
	// Replace the stored dataset with the rows used for this run.
	SaveDataset(ctx context.Context, rows []domain.DatasetRow) error
	// Append one training run record.
	SaveRun(ctx context.Context, run TrainingRun) error
}
