// Package config loads serving and training parameters from a YAML file
// and validates them with struct tags. Missing files fall back to the
// built-in defaults so local runs work without any setup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0,lte=65535"`
}

type TrainingConfig struct {
	Records       int     `yaml:"records" validate:"gt=0"`
	Seed          int64   `yaml:"seed"`
	TrainFraction float64 `yaml:"train_fraction" validate:"gt=0,lt=1"`
	NoiseSigma    float64 `yaml:"noise_sigma" validate:"gte=0"`
}

type ArtifactConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// Catalogs fix the categorical value spaces used during synthesis.
type Catalogs struct {
	Routes []string `yaml:"routes" validate:"min=1,dive,required"`
	Stops  []string `yaml:"stops" validate:"min=1,dive,required"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Training TrainingConfig `yaml:"training"`
	Artifact ArtifactConfig `yaml:"artifact"`
	Catalogs Catalogs       `yaml:"catalogs"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Training: TrainingConfig{
			Records:       250,
			Seed:          42,
			TrainFraction: 0.8,
			NoiseSigma:    4.0,
		},
		Artifact: ArtifactConfig{Path: "models/bus_model.json"},
		Catalogs: Catalogs{
			Routes: []string{
				"BUS001", "BUS002", "BUS003", "BUS004",
				"BUS005", "BUS006", "BUS007", "BUS008",
			},
			Stops: []string{
				"Nagercoil", "Kanyakumari", "Marthandam", "Colachel",
				"Thuckalay", "Kulasekaram", "Padmanabhapuram", "Suchindram",
			},
		},
	}
}

// Load reads the config file at path, layered over the defaults, and
// validates the result. A missing file is not an error; a present but
// invalid file is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %q: parse yaml: %w", path, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("load config %q: validate: %w", path, err)
	}

	return cfg, nil
}
