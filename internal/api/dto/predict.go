package dto

import "time"

// Distance is a pointer so a missing field is distinguishable from zero;
// both fail range validation with the same message.
type PredictRequest struct {
	Distance     *float64 `json:"distance"`
	TrafficLevel string   `json:"traffic_level"`
	Weather      string   `json:"weather"`
}

type PredictResponse struct {
	Success              bool    `json:"success"`
	PredictedArrivalTime float64 `json:"predicted_arrival_time"`
	Unit                 string  `json:"unit"`
	Distance             float64 `json:"distance"`
	TrafficLevel         string  `json:"traffic_level"`
	Weather              string  `json:"weather"`
	Message              string  `json:"message"`
}

type InfoResponse struct {
	System       string    `json:"system"`
	Model        string    `json:"model"`
	Version      string    `json:"version"`
	FeatureOrder []string  `json:"feature_order"`
	TrainedAt    time.Time `json:"trained_at"`
	TestR2       float64   `json:"test_r2"`
}
