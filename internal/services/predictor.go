package services

import (
	"fmt"

	"bus-arrival-service/internal/domain"
	"bus-arrival-service/internal/encoding"
	"bus-arrival-service/internal/model"
)

// Validation messages are part of the external contract; callers pattern
// match on them, so the wording is fixed.
const (
	msgInvalidDistance = "Invalid distance. Please enter distance between 0 and 100 km"
	msgInvalidTraffic  = "Invalid traffic level. Choose: Low, Medium, or High"
	msgInvalidWeather  = "Invalid weather. Choose: Sunny, Rainy, or Cloudy"
)

// PredictionRequest is the validated feature subset consumed at serving time.
type PredictionRequest struct {
	DistanceKM   float64
	TrafficLevel string
	Weather      string
}

// ValidationError is a recoverable request error carrying the exact
// user-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Predictor serves arrival time predictions from a single model artifact
// loaded at construction. The artifact is never mutated afterwards, so a
// Predictor is safe for concurrent use without locking and holds no
// per-request state.
type Predictor struct {
	artifact model.Artifact
	linear   model.LinearModel
}

// NewPredictor wraps a loaded artifact. The caller is expected to have
// verified the artifact (store Load does), so construction cannot fail.
func NewPredictor(artifact model.Artifact) *Predictor {
	return &Predictor{artifact: artifact, linear: artifact.Model()}
}

// Artifact returns the read-only artifact backing this predictor.
func (p *Predictor) Artifact() model.Artifact { return p.artifact }

// Validate checks the request fields in contract order: distance first,
// then traffic level, then weather. The first failing check wins.
func (p *Predictor) Validate(req PredictionRequest) *ValidationError {
	if req.DistanceKM <= 0 || req.DistanceKM > 100 {
		return &ValidationError{Message: msgInvalidDistance}
	}
	if !domain.ValidTrafficLevel(req.TrafficLevel) {
		return &ValidationError{Message: msgInvalidTraffic}
	}
	if !domain.ValidWeather(req.Weather) {
		return &ValidationError{Message: msgInvalidWeather}
	}

	return nil
}

// Predict encodes the categorical fields through the artifact's table and
// evaluates the linear model. Inference is deterministic: the same request
// against the same artifact always returns the same value.
//
// An unknown category here cannot be reached through Validate, which
// restricts inputs to the enums seen at training; the encoder still
// rejects it rather than defaulting if the artifact and enums ever drift.
func (p *Predictor) Predict(req PredictionRequest) (float64, error) {
	vector := make([]float64, 0, len(p.artifact.FeatureOrder))
	for _, feature := range p.artifact.FeatureOrder {
		switch feature {
		case "distance_km":
			vector = append(vector, req.DistanceKM)
		case encoding.FieldTraffic:
			code, err := p.artifact.Encodings.Encode(encoding.FieldTraffic, req.TrafficLevel)
			if err != nil {
				return 0, fmt.Errorf("predict: %w", err)
			}
			vector = append(vector, float64(code))
		case encoding.FieldWeather:
			code, err := p.artifact.Encodings.Encode(encoding.FieldWeather, req.Weather)
			if err != nil {
				return 0, fmt.Errorf("predict: %w", err)
			}
			vector = append(vector, float64(code))
		default:
			return 0, fmt.Errorf("predict: artifact names unsupported feature %q", feature)
		}
	}

	minutes, err := p.linear.Predict(vector)
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}

	return minutes, nil
}
