package model

import (
	"fmt"
	"math"
	"math/rand"

	"bus-arrival-service/internal/domain"
)

// DefaultTrainFraction is the share of rows assigned to the training set.
const DefaultTrainFraction = 0.8

// Split deterministically partitions rows into disjoint train and test
// sets using a seeded shuffle. The train size is floor(n * fraction); the
// remainder becomes the test set, so sizes always sum to len(rows).
func Split(rows []domain.DatasetRow, trainFraction float64, seed int64) (train, test []domain.DatasetRow, err error) {
	if trainFraction <= 0 || trainFraction >= 1 {
		return nil, nil, fmt.Errorf("split: train fraction %v outside (0, 1)", trainFraction)
	}

	n := len(rows)
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	trainN := int(math.Floor(float64(n) * trainFraction))

	train = make([]domain.DatasetRow, 0, trainN)
	test = make([]domain.DatasetRow, 0, n-trainN)
	for i, idx := range perm {
		if i < trainN {
			train = append(train, rows[idx])
		} else {
			test = append(test, rows[idx])
		}
	}

	return train, test, nil
}
