package model

import (
	"math"
	"testing"
)

func TestFitRecoversExactLinearRelationship(t *testing.T) {
	// y = 2*x1 + 3*x2 + 5, no noise.
	features := [][]float64{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 3},
		{5, 5},
		{6, 8},
		{7, 2},
	}
	targets := make([]float64, len(features))
	for i, row := range features {
		targets[i] = 2*row[0] + 3*row[1] + 5
	}

	m, err := Fit(features, targets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const tol = 1e-8
	if math.Abs(m.Coefficients[0]-2) > tol {
		t.Errorf("coefficient[0] = %v, want 2", m.Coefficients[0])
	}
	if math.Abs(m.Coefficients[1]-3) > tol {
		t.Errorf("coefficient[1] = %v, want 3", m.Coefficients[1])
	}
	if math.Abs(m.Intercept-5) > tol {
		t.Errorf("intercept = %v, want 5", m.Intercept)
	}
}

func TestFitRejectsBadShapes(t *testing.T) {
	if _, err := Fit(nil, nil); err == nil {
		t.Error("empty input should fail")
	}
	if _, err := Fit([][]float64{{1}}, []float64{1, 2}); err == nil {
		t.Error("mismatched lengths should fail")
	}
	if _, err := Fit([][]float64{{1, 2}, {3, 4}}, []float64{1, 2}); err == nil {
		t.Error("underdetermined system should fail")
	}
	if _, err := Fit([][]float64{{1, 2}, {3}, {4, 5}, {6, 7}}, []float64{1, 2, 3, 4}); err == nil {
		t.Error("ragged rows should fail")
	}
}

func TestPredictDeterministic(t *testing.T) {
	m := LinearModel{Coefficients: []float64{1.5, -0.25}, Intercept: 10}

	first, err := m.Predict([]float64{4, 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 14 {
		t.Fatalf("prediction = %v, want 14", first)
	}

	for i := 0; i < 10; i++ {
		again, err := m.Predict([]float64{4, 8})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("repeat %d: prediction %v != %v", i, again, first)
		}
	}
}

func TestPredictVectorLengthMismatch(t *testing.T) {
	m := LinearModel{Coefficients: []float64{1, 2}, Intercept: 0}
	if _, err := m.Predict([]float64{1}); err == nil {
		t.Error("short vector should fail")
	}
}
