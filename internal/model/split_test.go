package model

import (
	"fmt"
	"testing"

	"bus-arrival-service/internal/domain"
)

func numberedRows(n int) []domain.DatasetRow {
	rows := make([]domain.DatasetRow, n)
	for i := range rows {
		rows[i] = domain.DatasetRow{
			Route:              fmt.Sprintf("BUS%03d", i),
			Stop:               "Nagercoil",
			DistanceKM:         float64(i + 1),
			Traffic:            domain.TrafficLow,
			Weather:            domain.WeatherSunny,
			AverageSpeedKMH:    40,
			ArrivalTimeMinutes: float64(i + 2),
		}
	}
	return rows
}

func TestSplitSizesAndDisjointness(t *testing.T) {
	rows := numberedRows(10)

	train, test, err := Split(rows, 0.8, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(train) != 8 {
		t.Errorf("train size = %d, want 8", len(train))
	}
	if len(test) != 2 {
		t.Errorf("test size = %d, want 2", len(test))
	}
	if len(train)+len(test) != len(rows) {
		t.Errorf("sizes sum to %d, want %d", len(train)+len(test), len(rows))
	}

	seen := map[string]int{}
	for _, r := range train {
		seen[r.Route]++
	}
	for _, r := range test {
		seen[r.Route]++
	}
	for route, count := range seen {
		if count != 1 {
			t.Errorf("row %q appears %d times across splits", route, count)
		}
	}
	if len(seen) != len(rows) {
		t.Errorf("splits cover %d distinct rows, want %d", len(seen), len(rows))
	}
}

func TestSplitDeterministic(t *testing.T) {
	rows := numberedRows(30)

	train1, test1, err := Split(rows, 0.8, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	train2, test2, err := Split(rows, 0.8, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range train1 {
		if train1[i] != train2[i] {
			t.Fatalf("train row %d differs between identical splits", i)
		}
	}
	for i := range test1 {
		if test1[i] != test2[i] {
			t.Fatalf("test row %d differs between identical splits", i)
		}
	}
}

func TestSplitRejectsBadFraction(t *testing.T) {
	rows := numberedRows(10)
	for _, frac := range []float64{0, 1, -0.5, 1.5} {
		if _, _, err := Split(rows, frac, 42); err == nil {
			t.Errorf("fraction %v should fail", frac)
		}
	}
}
