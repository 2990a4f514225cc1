package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bus-arrival-service/internal/domain"
	"bus-arrival-service/internal/platform/obs"
	"bus-arrival-service/internal/ports"
)

// Postgres-backed implementation of the TrainingRunStore port.
// Same behavior as the SQLite variant with Postgres placeholders and types.
type PostgresRunRepository struct{ DB *sql.DB }

func NewPostgresRunRepository(db *sql.DB) *PostgresRunRepository {
	return &PostgresRunRepository{DB: db}
}

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDatasetQuery := `
	CREATE TABLE IF NOT EXISTS dataset_rows (
		row_id BIGSERIAL PRIMARY KEY,
		route TEXT NOT NULL,
		stop TEXT NOT NULL,
		distance_km DOUBLE PRECISION NOT NULL,
		traffic_level TEXT NOT NULL,
		weather TEXT NOT NULL,
		average_speed_kmh DOUBLE PRECISION NOT NULL,
		arrival_time_minutes DOUBLE PRECISION NOT NULL
	);
	`

	createRunsQuery := `
	CREATE TABLE IF NOT EXISTS training_runs (
		run_id BIGSERIAL PRIMARY KEY,
		seed BIGINT NOT NULL,
		records INTEGER NOT NULL,
		train_fraction DOUBLE PRECISION NOT NULL,
		train_mse DOUBLE PRECISION NOT NULL,
		train_rmse DOUBLE PRECISION NOT NULL,
		train_mae DOUBLE PRECISION NOT NULL,
		train_r2 DOUBLE PRECISION NOT NULL,
		test_mse DOUBLE PRECISION NOT NULL,
		test_rmse DOUBLE PRECISION NOT NULL,
		test_mae DOUBLE PRECISION NOT NULL,
		test_r2 DOUBLE PRECISION NOT NULL,
		artifact_path TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`

	statements := []string{createDatasetQuery, createRunsQuery}
	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the stored dataset with the rows used for the current run.
func (s *PostgresRunRepository) SaveDataset(ctx context.Context, rows []domain.DatasetRow) (err error) {
	defer obs.Time(ctx, "runs.postgres.SaveDataset")(&err)

	if s.DB == nil {
		return errors.New("postgres run repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save dataset: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dataset_rows;`); err != nil {
		return fmt.Errorf("save dataset: clear previous rows: %w", err)
	}

	query := `
	INSERT INTO dataset_rows (
		route,
		stop,
		distance_km,
		traffic_level,
		weather,
		average_speed_kmh,
		arrival_time_minutes
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("save dataset: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		_, err := stmt.ExecContext(
			ctx,
			r.Route, r.Stop, r.DistanceKM,
			string(r.Traffic), string(r.Weather),
			r.AverageSpeedKMH, r.ArrivalTimeMinutes,
		)
		if err != nil {
			return fmt.Errorf("save dataset: insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save dataset: commit tx: %w", err)
	}

	return nil
}

// Append one training run record.
func (s *PostgresRunRepository) SaveRun(ctx context.Context, run ports.TrainingRun) (err error) {
	defer obs.Time(ctx, "runs.postgres.SaveRun")(&err)

	if s.DB == nil {
		return errors.New("postgres run repository: DB is nil")
	}

	query := `
	INSERT INTO training_runs (
		seed, records, train_fraction,
		train_mse, train_rmse, train_mae, train_r2,
		test_mse, test_rmse, test_mae, test_r2,
		artifact_path, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = s.DB.ExecContext(
		ctx, query,
		run.Seed, run.Records, run.TrainFraction,
		run.TrainMetrics.MSE, run.TrainMetrics.RMSE, run.TrainMetrics.MAE, run.TrainMetrics.R2,
		run.TestMetrics.MSE, run.TestMetrics.RMSE, run.TestMetrics.MAE, run.TestMetrics.R2,
		run.ArtifactPath, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save run: insert training run: %w", err)
	}

	return nil
}
