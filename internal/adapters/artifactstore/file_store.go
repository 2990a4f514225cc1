// Package artifactstore persists trained model artifacts as JSON files.
package artifactstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"bus-arrival-service/internal/model"
	"bus-arrival-service/internal/ports"
)

// FileStore is a JSON-file implementation of the ArtifactStore port.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Save writes the artifact to a temp file in the target directory and
// renames it into place, so a crash mid-write never leaves a half-written
// artifact at the published path.
func (s *FileStore) Save(artifact model.Artifact) error {
	if err := artifact.Validate(); err != nil {
		return fmt.Errorf("save artifact: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save artifact: create directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save artifact: create temp file: %w", err)
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(artifact); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save artifact: encode: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save artifact: close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save artifact: rename into place: %w", err)
	}

	return nil
}

// Load reads and verifies the persisted artifact. A missing file maps to
// ErrArtifactMissing; an undecodable or inconsistent file maps to
// ErrArtifactCorrupt. The caller decides whether either is fatal.
func (s *FileStore) Load() (model.Artifact, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Artifact{}, fmt.Errorf("load artifact %q: %w", s.Path, ports.ErrArtifactMissing)
	}
	if err != nil {
		return model.Artifact{}, fmt.Errorf("load artifact %q: %w", s.Path, err)
	}

	var artifact model.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return model.Artifact{}, fmt.Errorf("load artifact %q: decode: %v: %w", s.Path, err, ports.ErrArtifactCorrupt)
	}

	if err := artifact.Validate(); err != nil {
		return model.Artifact{}, fmt.Errorf("load artifact %q: %v: %w", s.Path, err, ports.ErrArtifactCorrupt)
	}

	return artifact, nil
}
