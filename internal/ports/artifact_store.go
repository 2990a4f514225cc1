package ports

import (
	"errors"

	"bus-arrival-service/internal/model"
)

// ErrArtifactMissing is returned by Load when no artifact has been
// persisted yet. The serving process treats it as fatal at startup.
var ErrArtifactMissing = errors.New("model artifact missing")

// ErrArtifactCorrupt is returned by Load when the persisted artifact
// exists but cannot be decoded or fails its self-description checks.
var ErrArtifactCorrupt = errors.New("model artifact corrupt")

// Port: a boundary for persisting and retrieving the trained model bundle.
type ArtifactStore interface {
	// Persist the artifact atomically; a crash never leaves a partial write.
	Save(artifact model.Artifact) error
	// Load the persisted artifact, verifying its self-description.
	Load() (model.Artifact, error)
}
