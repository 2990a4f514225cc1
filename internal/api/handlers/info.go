package handlers

import (
	"net/http"

	"bus-arrival-service/internal/api/dto"
	"bus-arrival-service/internal/services"
)

type InfoHandler struct {
	Svc *services.Predictor
}

// Info reports model metadata for the loaded artifact.
func (h *InfoHandler) Info(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	artifact := h.Svc.Artifact()
	res := dto.InfoResponse{
		System:       "Smart Bus Arrival Time Prediction System",
		Model:        "Linear Regression",
		Version:      "1.0.0",
		FeatureOrder: artifact.FeatureOrder,
		TrainedAt:    artifact.CreatedAt,
		TestR2:       artifact.TestMetrics.R2,
	}

	writeJSON(w, r, http.StatusOK, res)
}
