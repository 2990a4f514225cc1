// Package model fits and evaluates the linear regression mapping encoded
// trip features to arrival time minutes.
package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LinearModel is a fitted ordinary-least-squares regression.
// Coefficients are ordered to match the feature columns they were fit on.
type LinearModel struct {
	Coefficients []float64
	Intercept    float64
}

// Predict computes dot(coefficients, features) + intercept.
// No plausibility clamp is applied; the raw model output is returned.
func (m LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf(
			"predict: feature vector has %d values, model expects %d",
			len(features), len(m.Coefficients),
		)
	}

	return floats.Dot(m.Coefficients, features) + m.Intercept, nil
}

// Fit solves the ordinary least squares problem via QR decomposition of
// the design matrix (an intercept column of ones followed by the feature
// columns). It needs more observations than unknowns.
func Fit(features [][]float64, targets []float64) (LinearModel, error) {
	n := len(features)
	if n == 0 {
		return LinearModel{}, errors.New("fit: no training observations")
	}
	if n != len(targets) {
		return LinearModel{}, fmt.Errorf("fit: %d feature rows but %d targets", n, len(targets))
	}

	p := len(features[0])
	if p == 0 {
		return LinearModel{}, errors.New("fit: feature rows are empty")
	}
	if n <= p {
		return LinearModel{}, fmt.Errorf("fit: %d observations cannot determine %d coefficients plus intercept", n, p)
	}

	x := mat.NewDense(n, p+1, nil)
	y := mat.NewDense(n, 1, nil)
	for i, row := range features {
		if len(row) != p {
			return LinearModel{}, fmt.Errorf("fit: row %d has %d values, want %d", i, len(row), p)
		}

		x.Set(i, 0, 1)
		for j, v := range row {
			x.Set(i, j+1, v)
		}
		y.Set(i, 0, targets[i])
	}

	var qr mat.QR
	qr.Factorize(x)

	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, y); err != nil {
		return LinearModel{}, fmt.Errorf("fit: solve least squares: %w", err)
	}

	coeffs := make([]float64, p)
	for j := range coeffs {
		coeffs[j] = beta.At(j+1, 0)
	}

	return LinearModel{Coefficients: coeffs, Intercept: beta.At(0, 0)}, nil
}
