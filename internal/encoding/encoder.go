// Package encoding maps categorical trip fields to the dense integer
// codes consumed by the linear model. The same table is used at training
// and at inference time, so encode/decode stay consistent across the
// artifact boundary.
package encoding

import (
	"errors"
	"fmt"
	"sort"

	"bus-arrival-service/internal/domain"
)

// Categorical field names, also used as JSON keys inside the artifact.
const (
	FieldRoute   = "route"
	FieldStop    = "stop"
	FieldTraffic = "traffic_level"
	FieldWeather = "weather"
)

// ErrUnknownCategory is returned when a value was never seen at fit time.
// It must surface as a validation-style error, never a silent default code.
var ErrUnknownCategory = errors.New("unknown category")

// FeatureOrder returns the fixed sequence in which encoded inputs are
// assembled into the vector consumed by the model. Coefficient order in a
// trained artifact matches this sequence exactly.
func FeatureOrder() []string {
	return []string{"distance_km", FieldTraffic, FieldWeather}
}

// Table is an immutable mapping from each categorical domain to dense
// integer codes, fixed at training time. Codes are assigned in sorted
// value order, the only assignment that is reproducible in Go given
// randomized map iteration.
type Table struct {
	Fields map[string]map[string]int `json:"fields"`
}

// Fit builds an encoding table covering every categorical field of the
// dataset. All four domains are encoded, including route and stop, even
// though the served model only consumes traffic and weather codes.
func Fit(rows []domain.DatasetRow) Table {
	distinct := map[string]map[string]struct{}{
		FieldRoute:   {},
		FieldStop:    {},
		FieldTraffic: {},
		FieldWeather: {},
	}

	for _, r := range rows {
		distinct[FieldRoute][r.Route] = struct{}{}
		distinct[FieldStop][r.Stop] = struct{}{}
		distinct[FieldTraffic][string(r.Traffic)] = struct{}{}
		distinct[FieldWeather][string(r.Weather)] = struct{}{}
	}

	t := Table{Fields: make(map[string]map[string]int, len(distinct))}
	for field, values := range distinct {
		ordered := make([]string, 0, len(values))
		for v := range values {
			ordered = append(ordered, v)
		}
		sort.Strings(ordered)

		codes := make(map[string]int, len(ordered))
		for code, v := range ordered {
			codes[v] = code
		}
		t.Fields[field] = codes
	}

	return t
}

// Encode returns the integer code assigned to value within field.
func (t Table) Encode(field, value string) (int, error) {
	codes, ok := t.Fields[field]
	if !ok {
		return 0, fmt.Errorf("encode: field %q: %w", field, ErrUnknownCategory)
	}

	code, ok := codes[value]
	if !ok {
		return 0, fmt.Errorf("encode: field %q value %q: %w", field, value, ErrUnknownCategory)
	}

	return code, nil
}

// Decode returns the categorical value assigned to code within field.
func (t Table) Decode(field string, code int) (string, error) {
	codes, ok := t.Fields[field]
	if !ok {
		return "", fmt.Errorf("decode: field %q: %w", field, ErrUnknownCategory)
	}

	for v, c := range codes {
		if c == code {
			return v, nil
		}
	}

	return "", fmt.Errorf("decode: field %q code %d: %w", field, code, ErrUnknownCategory)
}

// Transform applies the table to every row, producing the feature matrix
// fed to the trainer and the target vector. Columns follow FeatureOrder:
// raw distance first, then the traffic and weather codes.
func Transform(rows []domain.DatasetRow, t Table) ([][]float64, []float64, error) {
	features := make([][]float64, 0, len(rows))
	targets := make([]float64, 0, len(rows))

	for i, r := range rows {
		traffic, err := t.Encode(FieldTraffic, string(r.Traffic))
		if err != nil {
			return nil, nil, fmt.Errorf("transform: row %d: %w", i, err)
		}

		weather, err := t.Encode(FieldWeather, string(r.Weather))
		if err != nil {
			return nil, nil, fmt.Errorf("transform: row %d: %w", i, err)
		}

		features = append(features, []float64{r.DistanceKM, float64(traffic), float64(weather)})
		targets = append(targets, r.ArrivalTimeMinutes)
	}

	return features, targets, nil
}
