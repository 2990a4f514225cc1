package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"bus-arrival-service/internal/adapters/artifactstore"
	"bus-arrival-service/internal/api"
	"bus-arrival-service/internal/config"
	"bus-arrival-service/internal/services"
)

// main is the serving composition root. It loads the trained artifact
// exactly once and refuses to start without a valid one; serving a stale
// or default model is never an option.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfgPath := getEnv("CONFIG_PATH", "config.yml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	artifactPath := getEnv("ARTIFACT_PATH", cfg.Artifact.Path)
	port := getEnv("PORT", strconv.Itoa(cfg.Server.Port))

	store := artifactstore.NewFileStore(artifactPath)
	artifact, err := store.Load()
	if err != nil {
		log.Fatalf("cannot start without a usable model artifact: %v (run trainctl first)", err)
	}
	log.Printf(
		"artifact loaded path=%s trained_at=%s test_r2=%.4f",
		artifactPath, artifact.CreatedAt.Format(time.RFC3339), artifact.TestMetrics.R2,
	)

	predictor := services.NewPredictor(artifact)
	router := api.NewRouter(predictor)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
