package artifactstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bus-arrival-service/internal/domain"
	"bus-arrival-service/internal/encoding"
	"bus-arrival-service/internal/model"
	"bus-arrival-service/internal/ports"
)

func testArtifact() model.Artifact {
	table := encoding.Table{Fields: map[string]map[string]int{
		encoding.FieldRoute:   {"BUS001": 0, "BUS002": 1},
		encoding.FieldStop:    {"Colachel": 0, "Nagercoil": 1},
		encoding.FieldTraffic: {"High": 0, "Low": 1, "Medium": 2},
		encoding.FieldWeather: {"Cloudy": 0, "Rainy": 1, "Sunny": 2},
	}}

	m := model.LinearModel{Coefficients: []float64{1.1, 2.2, 3.3}, Intercept: 4.4}
	return model.NewArtifact(m, table, domain.Metrics{R2: 0.9}, domain.Metrics{R2: 0.85})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models", "bus_model.json")
	store := NewFileStore(path)

	saved := testArtifact()
	if err := store.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Intercept != saved.Intercept {
		t.Errorf("intercept = %v, want %v", loaded.Intercept, saved.Intercept)
	}
	for i := range saved.Coefficients {
		if loaded.Coefficients[i] != saved.Coefficients[i] {
			t.Errorf("coefficient %d = %v, want %v", i, loaded.Coefficients[i], saved.Coefficients[i])
		}
	}
	for field, codes := range saved.Encodings.Fields {
		for value, code := range codes {
			if loaded.Encodings.Fields[field][value] != code {
				t.Errorf("encoding %s %q = %d, want %d", field, value, loaded.Encodings.Fields[field][value], code)
			}
		}
	}
	if loaded.TestMetrics.R2 != saved.TestMetrics.R2 {
		t.Errorf("test R2 = %v, want %v", loaded.TestMetrics.R2, saved.TestMetrics.R2)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "model.json"))

	if err := store.Save(testArtifact()); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file %q left behind", e.Name())
		}
	}
}

func TestLoadMissingArtifact(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	_, err := store.Load()
	if !errors.Is(err, ports.ErrArtifactMissing) {
		t.Fatalf("got %v, want ErrArtifactMissing", err)
	}
}

func TestLoadCorruptArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := NewFileStore(path).Load()
	if !errors.Is(err, ports.ErrArtifactCorrupt) {
		t.Fatalf("got %v, want ErrArtifactCorrupt", err)
	}
}

func TestLoadRejectsSchemaVersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	store := NewFileStore(path)

	bad := testArtifact()
	bad.SchemaVersion = 99

	// Save refuses to write it, so write the raw file another way.
	if err := store.Save(bad); err == nil {
		t.Fatal("save should reject wrong schema version")
	}

	good := testArtifact()
	if err := store.Save(good); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	tampered := strings.Replace(string(data), `"schema_version": 1`, `"schema_version": 99`, 1)
	if tampered == string(data) {
		t.Fatal("fixture did not contain expected schema_version field")
	}
	if err := os.WriteFile(path, []byte(tampered), 0o644); err != nil {
		t.Fatalf("write tampered: %v", err)
	}

	_, err = store.Load()
	if !errors.Is(err, ports.ErrArtifactCorrupt) {
		t.Fatalf("got %v, want ErrArtifactCorrupt", err)
	}
}

func TestLoadRejectsCoefficientMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	store := NewFileStore(path)

	if err := store.Save(testArtifact()); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	tampered := strings.Replace(string(data), "1.1,", "", 1)
	if tampered == string(data) {
		t.Fatal("fixture did not contain expected coefficient")
	}
	if err := os.WriteFile(path, []byte(tampered), 0o644); err != nil {
		t.Fatalf("write tampered: %v", err)
	}

	_, err = store.Load()
	if !errors.Is(err, ports.ErrArtifactCorrupt) {
		t.Fatalf("got %v, want ErrArtifactCorrupt", err)
	}
}
