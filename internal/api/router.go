package api

import (
	"net/http"

	"bus-arrival-service/internal/api/handlers"
	"bus-arrival-service/internal/services"
)

// NewRouter wires HTTP handlers around the predictor and returns an
// http.Handler. This is the API composition root; handlers never touch
// anything beyond the injected service.
func NewRouter(predictor *services.Predictor) http.Handler {
	mux := http.NewServeMux()

	predictHandler := &handlers.PredictHandler{Svc: predictor}
	infoHandler := &handlers.InfoHandler{Svc: predictor}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/predict", predictHandler.Predict)
	mux.HandleFunc("/api/info", infoHandler.Info)

	return loggingMiddleware(mux)
}
