package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"bus-arrival-service/internal/domain"
)

// ErrDegenerateTarget is returned when every target value is identical,
// which leaves R2 undefined (zero total sum of squares).
var ErrDegenerateTarget = errors.New("degenerate target: all values identical")

// Evaluate computes standard regression metrics of m over one split.
//
//	MSE  = mean((pred - actual)^2)
//	RMSE = sqrt(MSE)
//	MAE  = mean(|pred - actual|)
//	R2   = 1 - SSres/SStot
func Evaluate(m LinearModel, features [][]float64, targets []float64) (domain.Metrics, error) {
	n := len(features)
	if n == 0 {
		return domain.Metrics{}, errors.New("evaluate: no observations")
	}
	if n != len(targets) {
		return domain.Metrics{}, fmt.Errorf("evaluate: %d feature rows but %d targets", n, len(targets))
	}

	mean := stat.Mean(targets, nil)

	var ssRes, ssTot, absSum float64
	for i, row := range features {
		pred, err := m.Predict(row)
		if err != nil {
			return domain.Metrics{}, fmt.Errorf("evaluate: row %d: %w", i, err)
		}

		diff := pred - targets[i]
		ssRes += diff * diff
		absSum += math.Abs(diff)

		dev := targets[i] - mean
		ssTot += dev * dev
	}

	if ssTot == 0 {
		return domain.Metrics{}, ErrDegenerateTarget
	}

	mse := ssRes / float64(n)
	return domain.Metrics{
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		MAE:  absSum / float64(n),
		R2:   1 - ssRes/ssTot,
	}, nil
}
