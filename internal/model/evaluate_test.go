package model

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluateKnownValues(t *testing.T) {
	m := LinearModel{Coefficients: []float64{1}, Intercept: 0}
	features := [][]float64{{1}, {2}, {3}, {4}}
	targets := []float64{1, 2, 3, 5}

	metrics, err := Evaluate(m, features, targets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const tol = 1e-12
	if math.Abs(metrics.MSE-0.25) > tol {
		t.Errorf("MSE = %v, want 0.25", metrics.MSE)
	}
	if math.Abs(metrics.RMSE-0.5) > tol {
		t.Errorf("RMSE = %v, want 0.5", metrics.RMSE)
	}
	if math.Abs(metrics.MAE-0.25) > tol {
		t.Errorf("MAE = %v, want 0.25", metrics.MAE)
	}

	// SStot = 8.75, SSres = 1.
	wantR2 := 1 - 1/8.75
	if math.Abs(metrics.R2-wantR2) > tol {
		t.Errorf("R2 = %v, want %v", metrics.R2, wantR2)
	}
}

func TestEvaluatePerfectFit(t *testing.T) {
	m := LinearModel{Coefficients: []float64{2}, Intercept: 1}
	features := [][]float64{{1}, {2}, {3}}
	targets := []float64{3, 5, 7}

	metrics, err := Evaluate(m, features, targets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if metrics.MSE != 0 || metrics.RMSE != 0 || metrics.MAE != 0 {
		t.Errorf("errors not zero on perfect fit: %+v", metrics)
	}
	if metrics.R2 != 1 {
		t.Errorf("R2 = %v, want 1", metrics.R2)
	}
}

func TestEvaluateDegenerateTarget(t *testing.T) {
	m := LinearModel{Coefficients: []float64{1}, Intercept: 0}
	features := [][]float64{{1}, {2}, {3}}
	targets := []float64{4, 4, 4}

	_, err := Evaluate(m, features, targets)
	if !errors.Is(err, ErrDegenerateTarget) {
		t.Fatalf("got %v, want ErrDegenerateTarget", err)
	}
}

func TestEvaluateEmptyInput(t *testing.T) {
	m := LinearModel{Coefficients: []float64{1}, Intercept: 0}
	if _, err := Evaluate(m, nil, nil); err == nil {
		t.Error("empty input should fail")
	}
}
