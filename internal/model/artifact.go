package model

import (
	"fmt"
	"time"

	"bus-arrival-service/internal/domain"
	"bus-arrival-service/internal/encoding"
)

// ArtifactSchemaVersion identifies the serialized artifact layout.
// A loaded artifact with any other version is rejected as corrupt.
const ArtifactSchemaVersion = 1

// Artifact is the persisted bundle of a trained model: coefficients,
// intercept, the encoding table fixed at training time, and the feature
// order the coefficients correspond to. It is created once by training,
// read-only afterwards, and replaced wholesale by re-training.
type Artifact struct {
	SchemaVersion int            `json:"schema_version"`
	CreatedAt     time.Time      `json:"created_at"`
	FeatureOrder  []string       `json:"feature_order"`
	Coefficients  []float64      `json:"coefficients"`
	Intercept     float64        `json:"intercept"`
	Encodings     encoding.Table `json:"encodings"`
	TrainMetrics  domain.Metrics `json:"train_metrics"`
	TestMetrics   domain.Metrics `json:"test_metrics"`
}

// NewArtifact assembles an artifact from a fitted model and its encoders.
func NewArtifact(m LinearModel, table encoding.Table, trainMetrics, testMetrics domain.Metrics) Artifact {
	return Artifact{
		SchemaVersion: ArtifactSchemaVersion,
		CreatedAt:     time.Now().UTC(),
		FeatureOrder:  encoding.FeatureOrder(),
		Coefficients:  m.Coefficients,
		Intercept:     m.Intercept,
		Encodings:     table,
		TrainMetrics:  trainMetrics,
		TestMetrics:   testMetrics,
	}
}

// Model reconstructs the fitted regression held by the artifact.
func (a Artifact) Model() LinearModel {
	return LinearModel{Coefficients: a.Coefficients, Intercept: a.Intercept}
}

// Validate checks that the artifact is internally consistent. It is the
// self-description check run after deserialization, so a truncated or
// mismatched file is detected before the service starts taking requests.
func (a Artifact) Validate() error {
	if a.SchemaVersion != ArtifactSchemaVersion {
		return fmt.Errorf("artifact: schema version %d, want %d", a.SchemaVersion, ArtifactSchemaVersion)
	}
	if len(a.FeatureOrder) == 0 {
		return fmt.Errorf("artifact: empty feature order")
	}
	if len(a.Coefficients) != len(a.FeatureOrder) {
		return fmt.Errorf(
			"artifact: %d coefficients for %d features",
			len(a.Coefficients), len(a.FeatureOrder),
		)
	}

	for _, field := range []string{encoding.FieldTraffic, encoding.FieldWeather} {
		if len(a.Encodings.Fields[field]) == 0 {
			return fmt.Errorf("artifact: encoding table missing field %q", field)
		}
	}

	return nil
}
