package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"bus-arrival-service/internal/dataset"
	"bus-arrival-service/internal/domain"
	"bus-arrival-service/internal/encoding"
	"bus-arrival-service/internal/model"
	"bus-arrival-service/internal/ports"
)

// TrainParams configures one execution of the offline training pipeline.
type TrainParams struct {
	Records       int
	Seed          int64
	TrainFraction float64
	Dataset       dataset.Params
	ArtifactPath  string
}

// TrainReport summarizes a completed training run.
type TrainReport struct {
	Artifact     model.Artifact
	TrainMetrics domain.Metrics
	TestMetrics  domain.Metrics
	TrainRows    int
	TestRows     int
}

// Train runs the full pipeline: synthesize the dataset, fit the encoders,
// split, fit the regression, evaluate both splits, persist the artifact,
// and record the run. It is a single-run batch process; the serving
// process consumes the artifact it leaves behind.
//
// runs may be nil, in which case the dataset and run record are not kept.
func Train(
	ctx context.Context,
	p TrainParams,
	artifacts ports.ArtifactStore,
	runs ports.TrainingRunStore,
) (TrainReport, error) {
	rows, err := dataset.Generate(p.Records, p.Seed, p.Dataset)
	if err != nil {
		return TrainReport{}, fmt.Errorf("train: %w", err)
	}
	log.Printf("dataset generated records=%d seed=%d", len(rows), p.Seed)

	// Fit encoders on the full dataset so both splits share one table.
	table := encoding.Fit(rows)

	trainRows, testRows, err := model.Split(rows, p.TrainFraction, p.Seed)
	if err != nil {
		return TrainReport{}, fmt.Errorf("train: %w", err)
	}
	log.Printf("dataset split train=%d test=%d fraction=%v", len(trainRows), len(testRows), p.TrainFraction)

	trainX, trainY, err := encoding.Transform(trainRows, table)
	if err != nil {
		return TrainReport{}, fmt.Errorf("train: transform train split: %w", err)
	}
	testX, testY, err := encoding.Transform(testRows, table)
	if err != nil {
		return TrainReport{}, fmt.Errorf("train: transform test split: %w", err)
	}

	fitted, err := model.Fit(trainX, trainY)
	if err != nil {
		return TrainReport{}, fmt.Errorf("train: %w", err)
	}

	trainMetrics, err := model.Evaluate(fitted, trainX, trainY)
	if err != nil {
		return TrainReport{}, fmt.Errorf("train: evaluate train split: %w", err)
	}
	testMetrics, err := model.Evaluate(fitted, testX, testY)
	if err != nil {
		return TrainReport{}, fmt.Errorf("train: evaluate test split: %w", err)
	}
	log.Printf(
		"train metrics mse=%.4f rmse=%.4f mae=%.4f r2=%.4f",
		trainMetrics.MSE, trainMetrics.RMSE, trainMetrics.MAE, trainMetrics.R2,
	)
	log.Printf(
		"test metrics mse=%.4f rmse=%.4f mae=%.4f r2=%.4f",
		testMetrics.MSE, testMetrics.RMSE, testMetrics.MAE, testMetrics.R2,
	)

	artifact := model.NewArtifact(fitted, table, trainMetrics, testMetrics)
	if err := artifacts.Save(artifact); err != nil {
		return TrainReport{}, fmt.Errorf("train: %w", err)
	}
	log.Printf("artifact saved path=%s features=%d", p.ArtifactPath, len(artifact.FeatureOrder))

	if runs != nil {
		if err := runs.SaveDataset(ctx, rows); err != nil {
			return TrainReport{}, fmt.Errorf("train: %w", err)
		}

		run := ports.TrainingRun{
			Seed:          p.Seed,
			Records:       p.Records,
			TrainFraction: p.TrainFraction,
			TrainMetrics:  trainMetrics,
			TestMetrics:   testMetrics,
			ArtifactPath:  p.ArtifactPath,
			CreatedAt:     time.Now().UTC(),
		}
		if err := runs.SaveRun(ctx, run); err != nil {
			return TrainReport{}, fmt.Errorf("train: %w", err)
		}
	}

	return TrainReport{
		Artifact:     artifact,
		TrainMetrics: trainMetrics,
		TestMetrics:  testMetrics,
		TrainRows:    len(trainRows),
		TestRows:     len(testRows),
	}, nil
}
