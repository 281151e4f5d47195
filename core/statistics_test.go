package core

import (
	"errors"
	"math"
	"slices"
	"testing"

	ex "github.com/Live2Bloom/predictive-risk-engine/extensions"
)

func TestMeanMatchesArithmeticAverage(t *testing.T) {
	values := []float64{0.01, -0.02, 0.015, 0.005}
	expected := ex.Sum(values) / float64(len(values))

	if math.Abs(Mean(values)-expected) > 1e-12 {
		t.Errorf("expected mean %v, got %v", expected, Mean(values))
	}
}

func TestMeanIsOrderInvariant(t *testing.T) {
	values := []float64{0.01, -0.02, 0.015, 0.005, -0.001, 0.03}
	shuffled := slices.Clone(values)
	slices.Reverse(shuffled)

	if math.Abs(Mean(values)-Mean(shuffled)) > 1e-12 {
		t.Errorf("mean changed under reordering: %v vs %v", Mean(values), Mean(shuffled))
	}
}

func TestMeanOfEmptySeriesIsZero(t *testing.T) {
	ex.AssertAreEqual(t, "mean of empty series", 0.0, Mean(nil))
}

func TestStdDevOfIdenticalValuesIsZero(t *testing.T) {
	sdev, err := StdDev([]float64{0.01, 0.01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ex.AssertAreEqual(t, "deviation of identical pair", 0.0, sdev)
}

func TestStdDevUsesSampleDenominator(t *testing.T) {
	// hand-computed: deviations 1, -1 around mean 1, variance 2/(2-1) = 2
	sdev, err := StdDev([]float64{0, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(sdev-math.Sqrt2) > 1e-12 {
		t.Errorf("expected %v, got %v", math.Sqrt2, sdev)
	}
}

func TestStdDevRequiresTwoObservations(t *testing.T) {
	for _, values := range [][]float64{nil, {0.01}} {
		if _, err := StdDev(values); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("expected ErrInsufficientData for %d observations, got %v", len(values), err)
		}
	}
}
