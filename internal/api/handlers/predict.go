package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"

	"bus-arrival-service/internal/api/dto"
	"bus-arrival-service/internal/services"
)

type PredictHandler struct {
	Svc *services.Predictor
}

// Predict serves one arrival time prediction. Validation failures become
// structured 400 responses with the contract messages; anything
// unexpected during inference is logged and surfaced as a generic 500
// without leaking internals.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PredictRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	var distance float64
	if req.Distance != nil {
		distance = *req.Distance
	}

	svcReq := services.PredictionRequest{
		DistanceKM:   distance,
		TrafficLevel: req.TrafficLevel,
		Weather:      req.Weather,
	}

	if verr := h.Svc.Validate(svcReq); verr != nil {
		writeError(w, r, http.StatusBadRequest, verr.Message)
		return
	}

	minutes, err := h.Svc.Predict(svcReq)
	if err != nil {
		log.Printf("predict failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// Round for display only; no plausibility clamp is applied.
	rounded := math.Round(minutes*100) / 100

	res := dto.PredictResponse{
		Success:              true,
		PredictedArrivalTime: rounded,
		Unit:                 "minutes",
		Distance:             distance,
		TrafficLevel:         req.TrafficLevel,
		Weather:              req.Weather,
		Message:              fmt.Sprintf("Bus will arrive in approximately %.2f minutes", rounded),
	}

	writeJSON(w, r, http.StatusOK, res)
}
