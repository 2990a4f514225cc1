package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"bus-arrival-service/internal/adapters/artifactstore"
	"bus-arrival-service/internal/adapters/repositories"
	"bus-arrival-service/internal/config"
	"bus-arrival-service/internal/dataset"
	"bus-arrival-service/internal/platform/db"
	"bus-arrival-service/internal/ports"
	"bus-arrival-service/internal/services"
)

// main is the training composition root. It runs the pipeline once and
// exits: synthesize, encode, split, fit, evaluate, persist. The run and
// its dataset are recorded in Postgres when DATABASE_URL is set,
// otherwise in a local SQLite file.
func main() {
	cfgPath := flag.String("config", "config.yml", "path to config.yml")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	conn, runs, err := openRunStore()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	store := artifactstore.NewFileStore(cfg.Artifact.Path)

	params := services.TrainParams{
		Records:       cfg.Training.Records,
		Seed:          cfg.Training.Seed,
		TrainFraction: cfg.Training.TrainFraction,
		Dataset: dataset.Params{
			Routes:     cfg.Catalogs.Routes,
			Stops:      cfg.Catalogs.Stops,
			NoiseSigma: cfg.Training.NoiseSigma,
		},
		ArtifactPath: cfg.Artifact.Path,
	}

	report, err := services.Train(context.Background(), params, store, runs)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf(
		"training complete train_rows=%d test_rows=%d test_r2=%.4f artifact=%s",
		report.TrainRows, report.TestRows, report.TestMetrics.R2, cfg.Artifact.Path,
	)
}

func openRunStore() (*sql.DB, ports.TrainingRunStore, error) {
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitPostgresSchema(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return conn, repositories.NewPostgresRunRepository(conn), nil
	}

	path := getEnv("DB_PATH", "data/training.db")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	conn, err := db.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSqliteSchema(conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, repositories.NewSqliteRunRepository(conn), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
